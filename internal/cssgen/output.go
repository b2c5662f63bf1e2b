package cssgen

import (
	"io"

	"gitlab.com/tozd/go/errors"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		// Following golangci-lint's UX: issues only by default
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, opts ReportOptions) error {
	switch format {
	case OutputSummary:
		// Statistics and Quick Wins only (no individual issues)
		printVerbose(NewVerboseReporter(w, ShouldUseColors(opts)), result)

	case OutputFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		printVerbose(NewVerboseReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return errors.Errorf("write json: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return errors.Errorf("write markdown: %w", err)
		}

	default:
		// Issues only (golangci-lint format)
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}

func printVerbose(r *VerboseReporter, result *LintResult) {
	r.PrintStatistics(*result)
	r.PrintAdoptionProgress(*result)
	r.PrintQuickWins(*result)
	r.PrintSuggestions(*result)
	r.PrintWarnings(*result)
}
