package tokencss

import (
	"github.com/spf13/afero"

	"github.com/yacobolo/tokencss/internal/cssgen"
	"github.com/yacobolo/tokencss/internal/token"
)

// DefaultLayer names the layer holding tokens that sit under no theme layer key
const DefaultLayer = "default"

// MergedOutput is the stylesheet written in merge mode
const MergedOutput = "tokens.css"

// DefaultIncludes are the token-file globs used when none are configured
var DefaultIncludes = []string{"**/*.json", "**/*.yaml", "**/*.yml", "**/*.toml"}

// Config holds generation configuration
type Config struct {
	SourceDir  string   // "design/tokens"
	OutputDir  string   // "web/styles/tokens"
	Includes   []string // globs relative to SourceDir
	Layers     []string // top-level keys read as theme layers, highest precedence first
	Namespaces []string // prefixes stripped from paths, default "usa"

	Merge       bool          // one tokens.css for all files instead of one stylesheet per file
	Prefix      string        // custom property prefix
	Format      cssgen.Format // utility rule layout
	NoUtilities bool
	Jobs        int // parallel file builds, 0 = GOMAXPROCS

	Fs afero.Fs // nil = OS filesystem
}

// GenerateResult contains generation statistics
type GenerateResult struct {
	FilesScanned int
	Outputs      []string // written stylesheets, relative to OutputDir
	Tokens       int
	Fallbacks    int
	Cycles       int
	Unresolved   int
	Malformed    int
	Warnings     []string
}

func (r *GenerateResult) addStats(s token.Stats) {
	r.Tokens += s.Total
	r.Fallbacks += s.Fallbacks
	r.Cycles += s.Cycles
	r.Unresolved += s.Unresolved
	r.Malformed += s.Malformed
}

// LintConfig holds linting configuration
type LintConfig struct {
	Stylesheets []string // token stylesheets or globs declaring the custom properties, "web/styles/tokens/*.css"
	ScanPaths   []string // globs of stylesheets to check, "web/styles/**/*.css"
	Strict      bool     // fail on any issue
	Threshold   float64  // minimum adoption percentage, 0 = off

	MaxIssuesPerLinter int // 0 = unlimited
	MaxSameIssues      int // 0 = unlimited

	Fs afero.Fs // nil = OS filesystem
}

func filesystem(fsys afero.Fs) afero.Fs {
	if fsys == nil {
		return afero.NewOsFs()
	}
	return fsys
}

func (c Config) includes() []string {
	if len(c.Includes) == 0 {
		return DefaultIncludes
	}
	return c.Includes
}

func (c Config) namespaces() []string {
	if len(c.Namespaces) == 0 {
		return token.DefaultNamespaces
	}
	return c.Namespaces
}
