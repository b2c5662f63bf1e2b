package tokencss

import (
	"io"

	"github.com/yacobolo/tokencss/internal/cssgen"
)

// LintResult contains linting analysis results
type LintResult = cssgen.LintResult

// ReportOptions controls how issues are printed
type ReportOptions = cssgen.ReportOptions

// OutputFormat represents the linter output format
type OutputFormat = cssgen.OutputFormat

// Output formats, golangci-lint style
const (
	OutputIssues   = cssgen.OutputIssues
	OutputSummary  = cssgen.OutputSummary
	OutputFull     = cssgen.OutputFull
	OutputJSON     = cssgen.OutputJSON
	OutputMarkdown = cssgen.OutputMarkdown
)

// DetermineOutputFormat selects the output format from the --output-format
// value. Quiet always yields OutputIssues; callers suppress it.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	return cssgen.DetermineOutputFormat(formatFlag, quiet)
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, opts ReportOptions) error {
	return cssgen.WriteOutput(w, result, format, opts)
}
