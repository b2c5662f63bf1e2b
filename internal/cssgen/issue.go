package cssgen

// LinterName is reported in the FromLinter field of every issue
const LinterName = "tokenlint"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "tokenlint"
	Text        string       `json:"Text"`        // "unknown design token \"--color-primry\" referenced in var()"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/components/card.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based)
}

// Replacement provides an automated fix suggestion
type Replacement struct {
	NewText      string // "var(--color-primary)"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue messages
const (
	IssueUnknownToken   = "unknown design token %q referenced in var()"
	IssueHardcodedValue = "hardcoded value %q should use var(%s)"
)
