package cssgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains adoption and usage statistics
type JSONStats struct {
	TotalTokens            int     `json:"total_tokens"`
	TokensReferenced       int     `json:"tokens_referenced"`
	MigrationOpportunities int     `json:"migration_opportunities"`
	CompletelyUnused       int     `json:"completely_unused"`
	UsagePercentage        float64 `json:"usage_percentage"`
	HardcodedValues        int     `json:"hardcoded_values"`
	VarReferences          int     `json:"var_references"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`      // Optional source line
	Replacement string `json:"replacement,omitempty"` // Optional fix
}

// JSONQuickWin represents a high-impact refactoring opportunity
type JSONQuickWin struct {
	Value       string `json:"value"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// countSeverities returns error and warning counts
func countSeverities(issues []Issue) (errors, warnings int) {
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

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	errors, warnings := countSeverities(result.Issues)

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	quickWins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		quickWins[i] = JSONQuickWin{
			Value:       win.Value,
			Occurrences: win.Occurrences,
			Suggestion:  win.Suggestion,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TotalTokens:            result.TotalTokens,
			TokensReferenced:       result.TokensReferenced,
			MigrationOpportunities: result.HardcodedMatches,
			CompletelyUnused:       result.CompletelyUnused,
			UsagePercentage:        result.UsagePercentage,
			HardcodedValues:        result.HardcodedValues,
			VarReferences:          result.VarReferences,
		},
		Issues:    jsonIssues,
		QuickWins: quickWins,
	}
}
