package cssgen

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a shareable Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var b strings.Builder
	errors, warnings := countSeverities(result.Issues)

	b.WriteString("# Design Token Lint Report\n\n")

	b.WriteString("## Executive Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| **Status** | %s |\n", statusBadge(result))
	fmt.Fprintf(&b, "| **Total Issues** | %d (%d errors, %d warnings) |\n", len(result.Issues), errors, warnings)
	fmt.Fprintf(&b, "| **Files Scanned** | %d |\n", result.FilesScanned)
	fmt.Fprintf(&b, "| **Adoption Rate** | %.1f%% |\n", result.UsagePercentage)
	fmt.Fprintf(&b, "| **Tokens Referenced** | %d / %d |\n", result.TokensReferenced, result.TotalTokens)
	b.WriteString("\n")

	if errors > 0 {
		b.WriteString("## ❌ Errors\n\n")
		b.WriteString("| Location | Message |\n")
		b.WriteString("|----------|---------|\n")
		for _, issue := range result.Issues {
			if issue.Severity != SeverityError {
				continue
			}
			fmt.Fprintf(&b, "| `%s:%d:%d` | %s |\n",
				escapeMarkdown(issue.Pos.Filename), issue.Pos.Line, issue.Pos.Column, escapeMarkdown(issue.Text))
		}
		b.WriteString("\n")
	}

	if len(result.QuickWins) > 0 {
		b.WriteString("## 🎯 Quick Wins\n\n")
		b.WriteString("| Value | Occurrences | Use |\n")
		b.WriteString("|-------|-------------|-----|\n")
		for _, win := range result.QuickWins {
			fmt.Fprintf(&b, "| `%s` | %d | `%s` |\n",
				escapeMarkdown(win.Value), win.Occurrences, escapeMarkdown(win.Suggestion))
		}
		b.WriteString("\n")
	}

	b.WriteString("## 📊 Detailed Statistics\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Total Tokens | %d |\n", result.TotalTokens)
	fmt.Fprintf(&b, "| Referenced | %d |\n", result.TokensReferenced)
	fmt.Fprintf(&b, "| Migration Opportunities | %d |\n", result.HardcodedMatches)
	fmt.Fprintf(&b, "| Completely Unused | %d |\n", result.CompletelyUnused)
	fmt.Fprintf(&b, "| Hardcoded Values | %d |\n", result.HardcodedValues)
	fmt.Fprintf(&b, "| var() References | %d |\n", result.VarReferences)
	b.WriteString("\n")

	if len(result.Suggestions) > 0 {
		b.WriteString("## ✅ Recommendations\n\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*Generated by tokencss lint v1.0*\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// statusBadge summarizes health: errors or low adoption need attention
func statusBadge(result *LintResult) string {
	switch {
	case result.ErrorCount > 0 || result.UsagePercentage < 50:
		return "🔴 Needs Attention"
	case result.UsagePercentage < 80:
		return "🟡 Good Progress"
	default:
		return "🟢 Excellent"
	}
}

// escapeMarkdown escapes characters that break table cells
func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
