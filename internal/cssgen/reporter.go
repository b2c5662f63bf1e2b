package cssgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints lint issues in golangci-lint format:
//
//	web/styles/app.css:12:10: hardcoded value "#005ea2" should use var(--color-primary) (tokenlint)
//		  color: #005ea2;
//		         ^
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts),
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors reports whether output should be styled. An explicit
// option or FORCE_COLOR wins, NO_COLOR disables, GitHub Actions and
// terminals enable.
func ShouldUseColors(opts ReportOptions) bool {
	switch {
	case opts.UseColors, os.Getenv("FORCE_COLOR") != "":
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	case os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}

	fileInfo, err := os.Stdout.Stat()
	return err == nil && fileInfo.Mode()&os.ModeCharDevice != 0
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues prints issues ordered by file, line and column
func (r *Reporter) PrintIssues(issues []Issue) {
	sortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	var suffix string
	if r.printLinterName {
		suffix = " (" + issue.FromLinter + ")"
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, suffix, r.useColors))

	if !r.printLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
	caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
}

// buildCaretIndicator returns padding plus "^" under the 1-based column.
// Tabs before the column are kept as tabs so the caret lines up.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 1 {
		return "^"
	}
	prefix := sourceLine[:min(column-1, len(sourceLine))]
	padding := strings.Map(func(ch rune) rune {
		if ch == '\t' {
			return '\t'
		}
		return ' '
	}, prefix)
	return padding + "^"
}

// PrintSummary prints the issue count line, a per-linter breakdown and a
// hint pointing at the full report.
func (r *Reporter) PrintSummary(result LintResult) {
	total := len(result.Issues)
	errors, warnings := severityCounts(result.Issues)

	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details, pluralizeCount(errors, "error", "errors")+", "+
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		details = append(details, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}

	header := pluralizeCount(total, "issue", "issues")
	if len(details) > 0 {
		header += " (" + strings.Join(details, "; ") + ")"
	}
	fmt.Fprintf(r.w, "\n%s:\n", header)

	perLinter := make(map[string]int)
	for _, issue := range result.Issues {
		perLinter[issue.FromLinter]++
	}
	linters := make([]string, 0, len(perLinter))
	for linter := range perLinter {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, perLinter[linter])
	}

	if total > 0 {
		fmt.Fprintf(r.w, "\n%s\n", RenderStyle(StyleGray,
			"Hint: Run with --output-format full to see token statistics and Quick Wins", r.useColors))
	}
}

func severityCounts(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
