package tokencss

import "github.com/yacobolo/tokencss/internal/cssgen"

// Issue represents a single linting violation in golangci-lint format
type Issue = cssgen.Issue

// IssuePos specifies the exact location of an issue
type IssuePos = cssgen.IssuePos

// Replacement provides an automated fix suggestion
type Replacement = cssgen.Replacement

// IssueSeverity constants
const (
	SeverityError   = cssgen.SeverityError
	SeverityWarning = cssgen.SeverityWarning
	SeverityInfo    = cssgen.SeverityInfo
)
