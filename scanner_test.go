package tokencss

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS builds an in-memory filesystem from path/content pairs
func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{
			name:     "single line header",
			content:  "/* Code generated by tokencss. DO NOT EDIT. */\n\n:root {\n}\n",
			expected: true,
		},
		{
			name:     "multi line header",
			content:  "/*\n * Code generated by tokencss. DO NOT EDIT.\n * Source: tokens/base.json\n */\n",
			expected: true,
		},
		{
			name:     "hand written stylesheet",
			content:  ".btn { color: red; }",
			expected: false,
		},
		{
			name:     "marker not at the top",
			content:  ".btn {}\n/* Code generated by tokencss. DO NOT EDIT. */",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, isGenerated(tt.content))
		})
	}
}

func TestExpandGlobPatterns(t *testing.T) {
	fsys := memFS(t, map[string]string{
		".gitignore":                      "*.min.css\n",
		"web/styles/app.css":              "",
		"web/styles/app.min.css":          "",
		"web/styles/components/card.css":  "",
		"web/styles/components/README.md": "",
		"other/extra.css":                 "",
	})

	files, stats, err := expandGlobPatterns(fsys, []string{
		"web/styles/**/*.css",
		"web/styles/app.css", // duplicate
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"web/styles/app.css", "web/styles/components/card.css"}, files)
	assert.Equal(t, ScanStats{FilesDiscovered: 3, FilesSkipped: 1, FilesScanned: 2}, stats)
}

func TestExpandGlobPatternsWithoutGitignore(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"a.css":     "",
		"b.min.css": "",
	})

	files, stats, err := expandGlobPatterns(fsys, []string{"*.css"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a.css", "b.min.css"}, files)
	assert.Zero(t, stats.FilesSkipped)
}

func TestExpandGlobPatternsNoMatches(t *testing.T) {
	fsys := memFS(t, map[string]string{"a.css": ""})

	files, _, err := expandGlobPatterns(fsys, []string{"missing/**/*.css"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandGlobPatternsInvalidPattern(t *testing.T) {
	fsys := memFS(t, map[string]string{"a.css": ""})

	_, _, err := expandGlobPatterns(fsys, []string{"[a-.css"})
	assert.Error(t, err)
}
