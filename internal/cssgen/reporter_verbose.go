package cssgen

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Design Token Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	fmt.Fprintf(r.w, "Total Tokens:            %d\n", result.TotalTokens)
	fmt.Fprintf(r.w, "Referenced:              %d (%.1f%%)\n", result.TokensReferenced, result.UsagePercentage)
	fmt.Fprintf(r.w, "Migration Opportunities: %d\n", result.HardcodedMatches)
	fmt.Fprintf(r.w, "Completely Unused:       %d\n", result.CompletelyUnused)
	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Hardcoded Values:        %d\n", result.HardcodedValues)
	fmt.Fprintf(r.w, "var() References:        %d\n", result.VarReferences)
}

// PrintAdoptionProgress shows visual progress bar
func (r *VerboseReporter) PrintAdoptionProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Adoption Progress", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	printProgressBar(r.w, result.UsagePercentage)
}

// PrintQuickWins shows the most frequently hardcoded token values
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, win := range result.QuickWins {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. \"%s\" - %s → Use %s\n",
			i+1, win.Value, pluralizeCount(win.Occurrences, "occurrence", "occurrences"), win.Suggestion)
	}
}

// PrintSuggestions shows recommendations
func (r *VerboseReporter) PrintSuggestions(result LintResult) {
	if len(result.Suggestions) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Recommendations", r.useColors))
	fmt.Fprintln(r.w, "----------------")

	for _, s := range result.Suggestions {
		fmt.Fprintf(r.w, "• %s\n", s)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled),
		strings.Repeat("░", barWidth-filled),
		percentage)
}
