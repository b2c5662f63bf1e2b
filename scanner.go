package tokencss

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesSkipped    int // Files skipped (generated or gitignored)
	FilesScanned    int // Files actually scanned
}

// generatedMarker opens the header of every stylesheet Generate writes
const generatedMarker = "Code generated by tokencss. DO NOT EDIT."

// isGenerated checks if a stylesheet was written by Generate
func isGenerated(content string) bool {
	return strings.HasPrefix(content, "/* "+generatedMarker) ||
		strings.HasPrefix(content, "/*\n * "+generatedMarker)
}

// loadGitIgnore compiles the .gitignore at the filesystem root.
// A missing .gitignore is fine and yields nil.
func loadGitIgnore(fsys afero.Fs) *ignore.GitIgnore {
	data, err := afero.ReadFile(fsys, ".gitignore")
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}

// expandGlobPatterns expands glob patterns to file paths in pattern order,
// skipping duplicates and gitignored files. Patterns may be absolute; the
// fixed leading directories of a pattern become the glob root.
func expandGlobPatterns(fsys afero.Fs, patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}
	gi := loadGitIgnore(fsys)

	for _, pattern := range patterns {
		base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
		root := fsys
		if base != "." {
			root = afero.NewBasePathFs(fsys, base)
		}

		matches, err := doublestar.Glob(afero.NewIOFS(root), rel, doublestar.WithFilesOnly())
		if err != nil {
			return nil, stats, errors.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, m := range matches {
			match := path.Join(base, m)
			if seen[match] {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			// Only apply gitignore to paths inside the project
			if gi != nil && !path.IsAbs(match) && gi.MatchesPath(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}
