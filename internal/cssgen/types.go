package cssgen

// SourceFile is a stylesheet handed to the linter
type SourceFile struct {
	Path    string // "web/styles/components/card.css"
	Content string
}

// LintOptions controls issue limiting, golangci-lint style
type LintOptions struct {
	MaxIssuesPerLinter int // 0 = unlimited (default)
	MaxSameIssues      int // 0 = unlimited (default)
}

// ReportOptions controls how issues are printed
type ReportOptions struct {
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (tokenlint) suffix (default: true)
	UseColors        bool // Force color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	TotalTokens      int     // custom properties declared by the token stylesheet
	TokensReferenced int     // tokens used through var() at least once
	HardcodedMatches int     // tokens whose value appears hardcoded somewhere
	CompletelyUnused int     // neither referenced nor hardcoded
	UsagePercentage  float64 // TokensReferenced / TotalTokens

	// Issues in golangci-lint format
	Issues []Issue

	FilesScanned    int
	VarReferences   int // total var(--token) references found
	HardcodedValues int // total hardcoded token values found
	ErrorCount      int // unknown token references
	TruncatedCount  int // Issues removed due to limits

	// Summary
	Warnings    []string
	Suggestions []string
	QuickWins   []QuickWin // Most frequently hardcoded values
}

// QuickWin represents a high-impact refactoring opportunity
type QuickWin struct {
	Value       string // "#005ea2"
	Occurrences int    // 45
	Suggestion  string // "var(--color-primary)"
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Quick Wins only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + Quick Wins (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
