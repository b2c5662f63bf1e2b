package tokencss

import (
	"context"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"

	"github.com/yacobolo/tokencss/internal/cssgen"
)

// ErrLintFailed is returned by CheckGate when a lint run should fail the build
var ErrLintFailed = errors.New("lint failed")

// Lint checks stylesheets matched by config.ScanPaths against the custom
// properties declared in config.Stylesheets. Generated stylesheets and the
// token stylesheets themselves are not scanned.
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	log := zerolog.Ctx(ctx)
	fsys := filesystem(config.Fs)

	// Step 1: Parse the token stylesheets
	sheets, err := tokenStylesheets(fsys, config.Stylesheets)
	if err != nil {
		return nil, err
	}
	self := make(map[string]bool, len(sheets))
	var declared strings.Builder
	for _, sheet := range sheets {
		data, err := afero.ReadFile(fsys, sheet)
		if err != nil {
			return nil, errors.Errorf("failed to read token stylesheet: %w", err)
		}
		self[sheet] = true
		declared.Write(data)
		declared.WriteString("\n")
	}
	tokens := cssgen.ParseStylesheet(declared.String())
	log.Debug().Strs("stylesheets", sheets).Msg("loaded token stylesheets")

	// Step 2: Expand scan patterns
	paths, stats, err := expandGlobPatterns(fsys, config.ScanPaths)
	if err != nil {
		return nil, errors.Errorf("failed to scan files: %w", err)
	}

	// Step 3: Read stylesheets
	files := make([]cssgen.SourceFile, 0, len(paths))
	for _, p := range paths {
		if self[p] {
			stats.FilesSkipped++
			continue
		}
		content, err := afero.ReadFile(fsys, p)
		if err != nil {
			log.Warn().Err(err).Str("file", p).Msg("skipping unreadable stylesheet")
			stats.FilesSkipped++
			continue
		}
		if isGenerated(string(content)) {
			stats.FilesSkipped++
			continue
		}
		files = append(files, cssgen.SourceFile{Path: p, Content: string(content)})
	}
	log.Debug().
		Int("files", len(files)).
		Int("skipped", stats.FilesSkipped).
		Msg("scanned stylesheets")

	// Step 4: Analyze
	return cssgen.Analyze(tokens, files, cssgen.LintOptions{
		MaxIssuesPerLinter: config.MaxIssuesPerLinter,
		MaxSameIssues:      config.MaxSameIssues,
	}), nil
}

// tokenStylesheets expands the configured token stylesheets. Literal paths
// are kept even when missing so the read error names them; globs must match
// at least one file across all patterns.
func tokenStylesheets(fsys afero.Fs, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no token stylesheet configured")
	}

	var sheets []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = path.Clean(p)
		if !seen[p] {
			seen[p] = true
			sheets = append(sheets, p)
		}
	}

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}

		base, rel := doublestar.SplitPattern(pattern)
		root := fsys
		if base != "." {
			root = afero.NewBasePathFs(fsys, base)
		}
		matches, err := doublestar.Glob(afero.NewIOFS(root), rel, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("glob pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(path.Join(base, m))
		}
	}

	if len(sheets) == 0 {
		return nil, errors.Errorf("no token stylesheet matches %s", strings.Join(patterns, ", "))
	}
	return sheets, nil
}

// CheckGate applies the exit policy to a lint result. By default only errors
// fail ("soft gate"); strict mode fails on any issue and, when a threshold is
// set, on adoption below it.
func CheckGate(result *LintResult, config LintConfig) error {
	if !config.Strict {
		if result.ErrorCount > 0 {
			return errors.Errorf("%w: %d unknown token references", ErrLintFailed, result.ErrorCount)
		}
		return nil
	}

	if n := len(result.Issues) + result.TruncatedCount; n > 0 {
		return errors.Errorf("%w: strict mode: %d issues", ErrLintFailed, n)
	}
	if config.Threshold > 0 && result.UsagePercentage < config.Threshold {
		return errors.Errorf("%w: strict mode: usage percentage %.1f%% is below threshold %.1f%%",
			ErrLintFailed, result.UsagePercentage, config.Threshold)
	}
	return nil
}
