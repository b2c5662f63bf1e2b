package cssgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/tokencss/internal/token"
)

// ignoredValues never count as hardcoded tokens
var ignoredValues = map[string]bool{
	"0":            true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"auto":         true,
	"none":         true,
	"normal":       true,
	"currentcolor": true,
	"transparent":  true,
}

// tokenIndex answers "which token has this value" per token type
type tokenIndex struct {
	declared map[string]bool
	byValue  map[token.Type]map[string]string // type -> normalized value -> first property name
}

func buildTokenIndex(tokens *Stylesheet) *tokenIndex {
	idx := &tokenIndex{
		declared: make(map[string]bool),
		byValue:  make(map[token.Type]map[string]string),
	}

	for _, d := range tokens.CustomProperties() {
		idx.declared[d.Property] = true

		if len(d.Refs) > 0 {
			continue
		}
		typ := token.Classify(token.Normalize(d.Property))
		value := normalizeValue(d.Value)
		if typ == token.TypeUnknown || ignoredValues[value] {
			continue
		}
		if idx.byValue[typ] == nil {
			idx.byValue[typ] = make(map[string]string)
		}
		if _, exists := idx.byValue[typ][value]; !exists {
			idx.byValue[typ][value] = d.Property
		}
	}
	return idx
}

// normalizeValue makes equivalent spellings compare equal: "#005EA2" and
// "#005ea2", "rgba(0,0,0,.1)" and "rgba(0, 0, 0, .1)".
func normalizeValue(v string) string {
	v = strings.ToLower(strings.Join(strings.Fields(v), " "))
	return strings.ReplaceAll(v, ", ", ",")
}

// Analyze checks files against the custom properties declared in tokens.
// References to undeclared tokens are errors; hardcoded values equal to a
// token's value are warnings.
func Analyze(tokens *Stylesheet, files []SourceFile, opts LintOptions) *LintResult {
	idx := buildTokenIndex(tokens)
	result := &LintResult{
		TotalTokens:  len(idx.declared),
		FilesScanned: len(files),
	}

	referenced := make(map[string]bool)
	hardcoded := make(map[string]bool)
	frequency := make(map[string]int)
	suggestions := make(map[string]string)

	for _, file := range files {
		sheet := ParseStylesheet(file.Content)
		lines := strings.Split(file.Content, "\n")

		for _, d := range sheet.Declarations {
			for _, ref := range d.Refs {
				result.VarReferences++
				if idx.declared[ref.Name] {
					referenced[ref.Name] = true
					continue
				}
				// properties declared by the file itself are not design tokens
				if _, local := sheet.CustomProperty(ref.Name); local {
					continue
				}
				result.Issues = append(result.Issues, newIssue(file.Path, lines, ref.Pos, SeverityError,
					fmt.Sprintf(IssueUnknownToken, ref.Name), nil))
				result.ErrorCount++
			}

			if d.IsCustom() || len(d.Refs) > 0 {
				continue
			}
			typ := categorizeProperty(d.Property)
			if typ == token.TypeUnknown {
				continue
			}
			value := normalizeValue(d.Value)
			if ignoredValues[value] {
				continue
			}
			name, ok := idx.byValue[typ][value]
			if !ok {
				continue
			}

			suggestion := "var(" + name + ")"
			result.HardcodedValues++
			hardcoded[name] = true
			frequency[value]++
			suggestions[value] = suggestion
			result.Issues = append(result.Issues, newIssue(file.Path, lines, d.ValuePos, SeverityWarning,
				fmt.Sprintf(IssueHardcodedValue, d.Value, name),
				&Replacement{NewText: suggestion, InlineLength: len(d.Value)}))
		}
	}

	result.TokensReferenced = len(referenced)
	for name := range hardcoded {
		if !referenced[name] {
			result.HardcodedMatches++
		}
	}
	result.CompletelyUnused = result.TotalTokens - result.TokensReferenced - result.HardcodedMatches
	if result.TotalTokens > 0 {
		result.UsagePercentage = float64(result.TokensReferenced) / float64(result.TotalTokens) * 100
	}

	sortIssues(result.Issues)
	result.QuickWins = sortByFrequency(frequency, suggestions)
	result.Suggestions = generateSuggestions(result)
	result.Warnings = generateWarnings(tokens, result)

	if opts.MaxIssuesPerLinter > 0 || opts.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, opts)
	}

	return result
}

func newIssue(filename string, lines []string, pos Position, severity, text string, fix *Replacement) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: filename,
			Line:     pos.Line,
			Column:   pos.Column,
		},
		Replacement: fix,
	}
	if pos.Line >= 1 && pos.Line <= len(lines) {
		issue.SourceLines = []string{strings.TrimRight(lines[pos.Line-1], "\r")}
	}
	return issue
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// sortByFrequency converts frequency map to sorted QuickWin slice
func sortByFrequency(freq map[string]int, suggestions map[string]string) []QuickWin {
	var wins []QuickWin

	for value, count := range freq {
		if suggestion, ok := suggestions[value]; ok {
			wins = append(wins, QuickWin{
				Value:       value,
				Occurrences: count,
				Suggestion:  suggestion,
			})
		}
	}

	// Sort by occurrences (descending), value for stable output
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Value < wins[j].Value
	})

	// Limit to top 10
	if len(wins) > 10 {
		wins = wins[:10]
	}

	return wins
}

// generateSuggestions creates actionable recommendations
func generateSuggestions(result *LintResult) []string {
	var suggestions []string

	if result.ErrorCount > 0 {
		suggestions = append(suggestions, "Fix unknown token references: regenerate the token stylesheet or correct the var() names")
	}

	if result.HardcodedValues > 0 {
		suggestions = append(suggestions, "Replace hardcoded values with var() references (see Quick Wins below)")
	}

	if result.TotalTokens > 0 && result.CompletelyUnused > result.TotalTokens/2 {
		suggestions = append(suggestions, "Most tokens are unused; consider pruning the token set")
	}

	if result.TotalTokens > 0 && result.UsagePercentage < 20 {
		suggestions = append(suggestions, "Low adoption detected - start with Quick Wins for maximum impact")
	}

	return suggestions
}

func generateWarnings(tokens *Stylesheet, result *LintResult) []string {
	var warnings []string
	if result.TotalTokens == 0 {
		warnings = append(warnings, "token stylesheet declares no custom properties")
	}
	if result.FilesScanned == 0 {
		warnings = append(warnings, "no stylesheets matched the lint paths")
	}
	for _, d := range tokens.CustomProperties() {
		if d.Value == "" {
			warnings = append(warnings, fmt.Sprintf("token %s has an empty value", d.Property))
		}
	}
	return warnings
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, opts LintOptions) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if opts.MaxIssuesPerLinter > 0 && len(issues) > opts.MaxIssuesPerLinter {
		issues = issues[:opts.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if opts.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, opts.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
