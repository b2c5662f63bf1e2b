package cssgen

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{
			name:       "explicit quiet flag",
			formatFlag: "",
			quiet:      true,
			expected:   OutputIssues,
		},
		{
			name:       "explicit issues format",
			formatFlag: "issues",
			expected:   OutputIssues,
		},
		{
			name:       "explicit summary format",
			formatFlag: "summary",
			expected:   OutputSummary,
		},
		{
			name:       "explicit full format",
			formatFlag: "full",
			expected:   OutputFull,
		},
		{
			name:       "explicit json format",
			formatFlag: "json",
			expected:   OutputJSON,
		},
		{
			name:       "explicit markdown format",
			formatFlag: "markdown",
			expected:   OutputMarkdown,
		},
		{
			name:       "markdown shorthand (md)",
			formatFlag: "md",
			expected:   OutputMarkdown,
		},
		{
			name:       "default format is issues",
			formatFlag: "",
			expected:   OutputIssues,
		},
		{
			name:       "quiet overrides format flag",
			formatFlag: "full",
			quiet:      true,
			expected:   OutputIssues,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetermineOutputFormat(tt.formatFlag, tt.quiet)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func sampleResult() *LintResult {
	return &LintResult{
		TotalTokens:      100,
		TokensReferenced: 20,
		HardcodedMatches: 30,
		CompletelyUnused: 50,
		UsagePercentage:  20.0,
		FilesScanned:     10,
		HardcodedValues:  45,
		VarReferences:    120,
		ErrorCount:       1,
		TruncatedCount:   2,
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `unknown design token "--color-primry" referenced in var()`,
				Severity:    SeverityError,
				SourceLines: []string{"  color: var(--color-primry);"},
				Pos:         IssuePos{Filename: "app.css", Line: 10, Column: 14},
			},
			{
				FromLinter:  LinterName,
				Text:        `hardcoded value "#005ea2" should use var(--color-primary)`,
				Severity:    SeverityWarning,
				SourceLines: []string{"  color: #005ea2;"},
				Pos:         IssuePos{Filename: "app.css", Line: 20, Column: 10},
				Replacement: &Replacement{NewText: "var(--color-primary)", InlineLength: 7},
			},
		},
		QuickWins: []QuickWin{
			{Value: "#005ea2", Occurrences: 28, Suggestion: "var(--color-primary)"},
			{Value: "1rem", Occurrences: 6, Suggestion: "var(--spacing-4)"},
		},
		Suggestions: []string{
			"Fix unknown token references: regenerate the token stylesheet or correct the var() names",
			"Replace hardcoded values with var() references (see Quick Wins below)",
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, sampleResult())
	require.NoError(t, err)

	// Parse JSON to verify structure
	var output JSONOutput
	err = json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err)

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)

	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.Errors)
	assert.Equal(t, 1, output.Summary.Warnings)
	assert.Equal(t, 2, output.Summary.Truncated)
	assert.Equal(t, 10, output.Summary.FilesScanned)

	assert.Equal(t, 100, output.Stats.TotalTokens)
	assert.Equal(t, 20, output.Stats.TokensReferenced)
	assert.Equal(t, 30, output.Stats.MigrationOpportunities)
	assert.Equal(t, 50, output.Stats.CompletelyUnused)
	assert.InDelta(t, 20.0, output.Stats.UsagePercentage, 0.01)
	assert.Equal(t, 45, output.Stats.HardcodedValues)
	assert.Equal(t, 120, output.Stats.VarReferences)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, "app.css", output.Issues[0].File)
	assert.Equal(t, 10, output.Issues[0].Line)
	assert.Equal(t, 14, output.Issues[0].Column)
	assert.Equal(t, "error", output.Issues[0].Severity)
	assert.Equal(t, LinterName, output.Issues[0].Linter)
	assert.Contains(t, output.Issues[0].Source, "--color-primry")
	assert.Empty(t, output.Issues[0].Replacement)
	assert.Equal(t, "var(--color-primary)", output.Issues[1].Replacement)

	require.Len(t, output.QuickWins, 2)
	assert.Equal(t, JSONQuickWin{Value: "#005ea2", Occurrences: 28, Suggestion: "var(--color-primary)"}, output.QuickWins[0])
}

func TestBuildJSONOutputTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	output := buildJSONOutput(&LintResult{}, now)

	assert.Equal(t, "2026-03-01T12:00:00Z", output.Timestamp)
	assert.NotNil(t, output.Issues)
	assert.NotNil(t, output.QuickWins)
}

func TestWriteMarkdown(t *testing.T) {
	result := sampleResult()
	result.Issues[0].Text = "bad | pipe"

	var buf bytes.Buffer
	err := WriteMarkdown(&buf, result)
	require.NoError(t, err)

	markdown := buf.String()

	assert.Contains(t, markdown, "# Design Token Lint Report")
	assert.Contains(t, markdown, "## Executive Summary")
	assert.Contains(t, markdown, "## ❌ Errors")
	assert.Contains(t, markdown, "## 🎯 Quick Wins")
	assert.Contains(t, markdown, "## 📊 Detailed Statistics")
	assert.Contains(t, markdown, "## ✅ Recommendations")

	assert.Contains(t, markdown, "**Total Issues** | 2 (1 errors, 1 warnings)")
	assert.Contains(t, markdown, "**Files Scanned** | 10")
	assert.Contains(t, markdown, "**Adoption Rate** | 20.0%")
	assert.Contains(t, markdown, "**Tokens Referenced** | 20 / 100")

	assert.Contains(t, markdown, "| `app.css:10:14` | bad \\| pipe |")
	assert.Contains(t, markdown, "| `#005ea2` | 28 | `var(--color-primary)` |")
	assert.Contains(t, markdown, "| `1rem` | 6 | `var(--spacing-4)` |")
	assert.Contains(t, markdown, "- Replace hardcoded values with var() references (see Quick Wins below)")

	assert.Contains(t, markdown, "*Generated by tokencss lint v1.0*")
}

func TestWriteMarkdownNoErrors(t *testing.T) {
	result := &LintResult{
		TotalTokens:      10,
		TokensReferenced: 9,
		UsagePercentage:  90,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, result))

	markdown := buf.String()
	assert.NotContains(t, markdown, "## ❌ Errors")
	assert.NotContains(t, markdown, "## 🎯 Quick Wins")
	assert.NotContains(t, markdown, "## ✅ Recommendations")
}

func TestMarkdownStatusBadges(t *testing.T) {
	tests := []struct {
		name            string
		errorCount      int
		usagePercentage float64
		expectedStatus  string
	}{
		{
			name:            "excellent (no errors, 80%+)",
			usagePercentage: 85.0,
			expectedStatus:  "🟢 Excellent",
		},
		{
			name:            "good progress (no errors, 50-79%)",
			usagePercentage: 65.0,
			expectedStatus:  "🟡 Good Progress",
		},
		{
			name:            "needs attention (errors present)",
			errorCount:      5,
			usagePercentage: 90.0,
			expectedStatus:  "🔴 Needs Attention",
		},
		{
			name:            "needs attention (low adoption)",
			usagePercentage: 20.0,
			expectedStatus:  "🔴 Needs Attention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &LintResult{
				ErrorCount:      tt.errorCount,
				UsagePercentage: tt.usagePercentage,
			}
			assert.Equal(t, tt.expectedStatus, statusBadge(result))
		})
	}
}

func TestWriteOutput_AllFormats(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	opts := ReportOptions{
		PrintIssuedLines: true,
		PrintLinterName:  true,
	}

	tests := []struct {
		name           string
		format         OutputFormat
		expectedInside []string
	}{
		{
			name:   "issues format",
			format: OutputIssues,
			expectedInside: []string{
				"app.css:10:14:",
				"referenced in var()",
				"2 issues",
			},
		},
		{
			name:   "summary format",
			format: OutputSummary,
			expectedInside: []string{
				"Design Token Statistics",
				"Total Tokens:",
				"Quick Wins",
				"Adoption Progress",
			},
		},
		{
			name:   "full format",
			format: OutputFull,
			expectedInside: []string{
				"app.css:20:10:",
				"2 issues",
				"Design Token Statistics",
				"Recommendations",
			},
		},
		{
			name:   "json format",
			format: OutputJSON,
			expectedInside: []string{
				`"version"`,
				`"summary"`,
				`"stats"`,
				`"quick_wins"`,
			},
		},
		{
			name:   "markdown format",
			format: OutputMarkdown,
			expectedInside: []string{
				"# Design Token Lint Report",
				"## Executive Summary",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteOutput(&buf, sampleResult(), tt.format, opts)
			require.NoError(t, err)

			output := buf.String()
			for _, expected := range tt.expectedInside {
				assert.Contains(t, output, expected)
			}
		})
	}
}
