package cssgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tokencss/internal/token"
)

func TestEmitSingleColor(t *testing.T) {
	css := Emit([]token.Resolved{
		{Name: "color-primary", Type: token.TypeColor, Value: "#005ea2"},
	}, EmitOptions{})

	assert.Contains(t, css, "--color-primary: #005ea2;")
	assert.Contains(t, css, ".color-primary { color: var(--color-primary); }")
	assert.Contains(t, css, ".bg-primary { background-color: var(--color-primary); }")
}

func TestEmitGroupsAndOrder(t *testing.T) {
	tokens := []token.Resolved{
		{Name: "spacing-4", Type: token.TypeSpacing, Value: "1rem"},
		{Name: "color-primary", Type: token.TypeColor, Value: "#005ea2"},
		{Name: "radius", Type: token.TypeUnknown, Value: "4px"},
		{Name: "font-weight-bold", Type: token.TypeFontWeight, Value: "700"},
		{Name: "font-size-reading-sm", Type: token.TypeFontSize, Value: "1.125rem"},
		{Name: "color-secondary", Type: token.TypeColor, Value: "#ffbe2e"},
	}

	expected := `:root {
  /* Colors */
  --color-primary: #005ea2;
  --color-secondary: #ffbe2e;

  /* Font Sizes */
  --font-size-reading-sm: 1.125rem;

  /* Font Weights */
  --font-weight-bold: 700;

  /* Spacing */
  --spacing-4: 1rem;

  /* Other */
  --radius: 4px;
}

/* Color utilities */
.color-primary { color: var(--color-primary); }
.bg-primary { background-color: var(--color-primary); }
.color-secondary { color: var(--color-secondary); }
.bg-secondary { background-color: var(--color-secondary); }

/* Font size utilities */
.font-size-reading-sm { font-size: var(--font-size-reading-sm); }

/* Font weight utilities */
.font-weight-bold { font-weight: var(--font-weight-bold); }

/* Spacing utilities */
.margin-4 { margin: var(--spacing-4); }
.padding-4 { padding: var(--spacing-4); }
`

	assert.Equal(t, expected, Emit(tokens, EmitOptions{}))
}

func TestEmitDeterministic(t *testing.T) {
	tokens := []token.Resolved{
		{Name: "color-a", Type: token.TypeColor, Value: "#000"},
		{Name: "spacing-b", Type: token.TypeSpacing, Value: "1rem"},
		{Name: "font-family-sans", Type: token.TypeFontFamily, Value: "sans-serif"},
	}

	first := Emit(tokens, EmitOptions{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Emit(tokens, EmitOptions{}))
	}
	assert.Contains(t, first, ".font-family-sans { font-family: var(--font-family-sans); }")
}

func TestEmitOptions(t *testing.T) {
	tokens := []token.Resolved{
		{Name: "color-primary", Type: token.TypeColor, Value: "#005ea2"},
	}

	t.Run("prefix", func(t *testing.T) {
		css := Emit(tokens, EmitOptions{Prefix: "ds"})
		assert.Contains(t, css, "--ds-color-primary: #005ea2;")
		assert.Contains(t, css, ".color-primary { color: var(--ds-color-primary); }")
	})

	t.Run("expanded format", func(t *testing.T) {
		css := Emit(tokens, EmitOptions{Format: FormatExpanded})
		assert.Contains(t, css, ".color-primary {\n  color: var(--color-primary);\n}\n")
	})

	t.Run("no utilities", func(t *testing.T) {
		css := Emit(tokens, EmitOptions{NoUtilities: true})
		assert.Equal(t, ":root {\n  /* Colors */\n  --color-primary: #005ea2;\n}\n", css)
	})

	t.Run("single line header", func(t *testing.T) {
		css := Emit(tokens, EmitOptions{Header: "Generated by tokencss"})
		assert.True(t, strings.HasPrefix(css, "/* Generated by tokencss */\n\n:root {"))
	})

	t.Run("multi line header", func(t *testing.T) {
		css := Emit(tokens, EmitOptions{Header: "Generated by tokencss\n\nDo not edit */ by hand"})
		assert.True(t, strings.HasPrefix(css, "/*\n * Generated by tokencss\n *\n * Do not edit * / by hand\n */\n\n:root {"))
	})
}

func TestEmitEmpty(t *testing.T) {
	assert.Equal(t, ":root {\n}\n", Emit(nil, EmitOptions{}))
}

func TestEmitUtilityClassCollisions(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []token.Resolved
		expected []string
	}{
		{
			name: "shared suffix falls back to full name",
			tokens: []token.Resolved{
				{Name: "color-primary", Type: token.TypeColor, Value: "#005ea2"},
				{Name: "colors-primary", Type: token.TypeColor, Value: "#1a4480"},
			},
			expected: []string{
				".color-primary { color: var(--color-primary); }",
				".bg-primary { background-color: var(--color-primary); }",
				".color-colors-primary { color: var(--colors-primary); }",
				".bg-colors-primary { background-color: var(--colors-primary); }",
			},
		},
		{
			name: "full name taken gets numeric tail",
			tokens: []token.Resolved{
				{Name: "color-x", Type: token.TypeColor, Value: "#000"},
				{Name: "color-color-x", Type: token.TypeColor, Value: "#111"},
				{Name: "colors-x", Type: token.TypeColor, Value: "#222"},
			},
			expected: []string{
				".color-x { color: var(--color-x); }",
				".color-color-x { color: var(--color-color-x); }",
				".color-colors-x { color: var(--colors-x); }",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css := Emit(tt.tokens, EmitOptions{})
			for _, rule := range tt.expected {
				assert.Contains(t, css, rule)
			}
			for _, tok := range tt.tokens {
				assert.Contains(t, css, "var(--"+tok.Name+")", "token %s has no utility", tok.Name)
			}
		})
	}
}

func TestUtilityClassNumericTail(t *testing.T) {
	seen := map[string]bool{"color-x": true, "color-colors-x": true}

	assert.Equal(t, "color-colors-x-2", utilityClass(seen, "color-", "x", "colors-x"))
	assert.Equal(t, "color-colors-x-3", utilityClass(seen, "color-", "x", "colors-x"))
	assert.Equal(t, "color-y", utilityClass(seen, "color-", "y", "colors-y"))
}

func TestEmitRoundTrip(t *testing.T) {
	tokens := []token.Resolved{
		{Name: "color-primary", Type: token.TypeColor, Value: "#005ea2"},
		{Name: "font-family-mono", Type: token.TypeFontFamily, Value: `"Roboto Mono", monospace`},
		{Name: "spacing-4", Type: token.TypeSpacing, Value: "1rem"},
	}

	sheet := ParseStylesheet(Emit(tokens, EmitOptions{}))

	for _, tok := range tokens {
		decl, ok := sheet.CustomProperty("--" + tok.Name)
		require.True(t, ok, tok.Name)
		assert.Equal(t, tok.Value, decl.Value)
	}

	// two color utilities, one font family, two spacing
	assert.Len(t, sheet.References(), 5)
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "--color-primary", PropertyName("", "color-primary"))
	assert.Equal(t, "--ds-color-primary", PropertyName("ds", "color-primary"))
	assert.Equal(t, "--my-ds-color-primary", PropertyName("--My DS", "color-primary"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		ok       bool
	}{
		{"", FormatCompact, true},
		{"compact", FormatCompact, true},
		{"Expanded", FormatExpanded, true},
		{"pretty", FormatCompact, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUtilitySuffix(t *testing.T) {
	tests := []struct {
		typ      token.Type
		name     string
		expected string
	}{
		{token.TypeColor, "color-primary", "primary"},
		{token.TypeColor, "brand-main", "brand-main"},
		{token.TypeFontSize, "font-size-reading-sm", "reading-sm"},
		{token.TypeFontSize, "reading-md", "reading-md"},
		{token.TypeFontWeight, "weight-a", "a"},
		{token.TypeSpacing, "spacing-4", "4"},
		{token.TypeSpacing, "spacing-", "spacing-"},
		{token.TypeFontFamily, "font-family-mono", "mono"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utilitySuffix(tt.typ, tt.name))
		})
	}
}

func TestCategorizeProperty(t *testing.T) {
	assert.Equal(t, token.TypeColor, categorizeProperty("color"))
	assert.Equal(t, token.TypeColor, categorizeProperty("Background-Color"))
	assert.Equal(t, token.TypeColor, categorizeProperty("-webkit-fill"))
	assert.Equal(t, token.TypeSpacing, categorizeProperty("padding-inline-start"))
	assert.Equal(t, token.TypeFontWeight, categorizeProperty("font-weight"))
	assert.Equal(t, token.TypeUnknown, categorizeProperty("width"))
	assert.Equal(t, token.TypeUnknown, categorizeProperty("--color-primary"))
}
