package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontWeight(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"bold", "700"},
		{"Bold", "700"},
		{"SemiBold", "600"},
		{"semi-bold", "600"},
		{"extra-bold", "800"},
		{"thin", "100"},
		{"regular", "400"},
		{"black", "900"},
		{"600", "600"},
		{"350", "350"},
		{"unknown", NeutralFontWeight},
		{"", NeutralFontWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FontWeight(tt.name))
		})
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		family   string
		step     string
		expected string
	}{
		{"reading", "sm", "1.125rem"},
		{"reading", "4", "1.125rem"},
		{"reading", "3xs", "0.75rem"},
		{"display", "3xl", "6rem"},
		{"display", "md", "3.5rem"},
		{"mono", "4", "1rem"},
		{"proto", "7", "2rem"},
		{"heading", "lg", "4rem"},
		{"unknown", "md", "1.25rem"},
		{"reading", "huge", NeutralFontSize},
		{"", "", NeutralFontSize},
	}

	for _, tt := range tests {
		t.Run(tt.family+"/"+tt.step, func(t *testing.T) {
			assert.Equal(t, tt.expected, FontSize(tt.family, tt.step))
		})
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		family   string
		variant  string
		expected string
	}{
		{"primary", "vivid", "#0066CC"},
		{"primary", "60v", "#0066CC"},
		{"primary", "darker", "#0D3875"},
		{"gray", "50", "#757575"},
		{"gray", "", "#757575"},
		{"base", "", "#757575"},
		{"blue-warm", "50v", "#0066CC"},
		{"indigo-warm", "50v", "#6B4DE0"},
		{"black-transparent", "20", "rgba(0, 0, 0, 0.2)"},
		{"white", "", "#FFFFFF"},
		{"info", "60v", NeutralColor},
		{"nope", "5", NeutralColor},
		{"Gray", "5", "#F0F0F0"},
	}

	for _, tt := range tests {
		t.Run(tt.family+"/"+tt.variant, func(t *testing.T) {
			assert.Equal(t, tt.expected, Color(tt.family, tt.variant))
		})
	}
}

func TestSpacing(t *testing.T) {
	assert.Equal(t, "0", Spacing("0"))
	assert.Equal(t, "2rem", Spacing("8"))
	assert.Equal(t, "6rem", Spacing("16"))
	assert.Equal(t, "1.5rem", Spacing("md"))
	assert.Equal(t, "4rem", Spacing("desktop"))
	assert.Equal(t, NeutralSpacing, Spacing("huge"))
}

func TestFontFamily(t *testing.T) {
	assert.Contains(t, FontFamily("mono"), "monospace")
	assert.Contains(t, FontFamily("heading"), "serif")
	assert.Equal(t, NeutralFontFamily, FontFamily("display"))
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		hint     string
		expected string
	}{
		{"color path", TypeColor, "usa.color.blue-warm.50v", "#0066CC"},
		{"color semantic", TypeColor, "color.primary.dark", "#1A4B8C"},
		{"color hyphenated", TypeColor, "color-gray-30", "#A6A6A6"},
		{"color family only", TypeColor, "color.gray", "#757575"},
		{"color unknown", TypeColor, "color.brand", NeutralColor},
		{"font size dotted", TypeFontSize, "font-size.display.lg", "4rem"},
		{"font size hyphenated", TypeFontSize, "font-size-reading-2xs", "0.875rem"},
		{"font size bare", TypeFontSize, "mono.5", "1.125rem"},
		{"font weight named", TypeFontWeight, "font.weight.bold", "700"},
		{"font weight hyphenated", TypeFontWeight, "font-weight-semi-bold", "600"},
		{"font weight numeric", TypeFontWeight, "font.weight.300", "300"},
		{"font weight unknown", TypeFontWeight, "weight-a", NeutralFontWeight},
		{"spacing numeric", TypeSpacing, "usa.spacing.4", "1rem"},
		{"spacing hyphenated", TypeSpacing, "spacing-12", "4rem"},
		{"spacing named", TypeSpacing, "spacing.desktop", "4rem"},
		{"font family", TypeFontFamily, "font-family.mono", FontFamily("mono")},
		{"unknown", TypeUnknown, "x", NeutralUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fallback(tt.typ, tt.hint))
		})
	}
}

func TestFallbackNeverEmpty(t *testing.T) {
	types := []Type{TypeUnknown, TypeColor, TypeFontFamily, TypeFontSize, TypeFontWeight, TypeSpacing}
	hints := []string{"", "zzz", "color.zzz.zzz", "{broken", "--", "font-size.reading.99"}

	for _, typ := range types {
		for _, hint := range hints {
			assert.NotEmpty(t, Fallback(typ, hint), "type %s hint %q", typ, hint)
		}
		assert.Equal(t, Neutral(typ), Fallback(typ, "zzz"), "type %s", typ)
	}
}

func TestFinalize(t *testing.T) {
	assert.Equal(t, "700", Finalize(TypeFontWeight, "bold"))
	assert.Equal(t, "600", Finalize(TypeFontWeight, "Semi Bold"))
	assert.Equal(t, "650", Finalize(TypeFontWeight, "650"))
	assert.Equal(t, "var(--x)", Finalize(TypeFontWeight, "var(--x)"))
	assert.Equal(t, "bold", Finalize(TypeColor, "bold"))
}
