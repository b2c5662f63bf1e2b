package cssgen

import (
	"strings"

	"github.com/yacobolo/tokencss/internal/token"
)

// utilityRule describes one utility class generated for a token type
type utilityRule struct {
	classPrefix string // ".bg-"
	property    string // "background-color"
}

// utilityRules lists the classes generated per token type, in emission order
var utilityRules = map[token.Type][]utilityRule{
	token.TypeColor: {
		{classPrefix: "color-", property: "color"},
		{classPrefix: "bg-", property: "background-color"},
	},
	token.TypeFontSize: {
		{classPrefix: "font-size-", property: "font-size"},
	},
	token.TypeFontWeight: {
		{classPrefix: "font-weight-", property: "font-weight"},
	},
	token.TypeSpacing: {
		{classPrefix: "margin-", property: "margin"},
		{classPrefix: "padding-", property: "padding"},
	},
	token.TypeFontFamily: {
		{classPrefix: "font-family-", property: "font-family"},
	},
}

// categoryPrefixes are stripped from canonical names to form the utility
// suffix: "color-primary" -> "primary"
var categoryPrefixes = map[token.Type][]string{
	token.TypeColor:      {"color-", "colors-", "colour-"},
	token.TypeFontSize:   {"font-size-", "font-sizes-", "type-scale-", "size-"},
	token.TypeFontWeight: {"font-weight-", "font-weights-", "weight-"},
	token.TypeSpacing:    {"spacing-", "space-"},
	token.TypeFontFamily: {"font-family-", "font-families-", "family-"},
}

// utilitySuffix strips the first matching category prefix from name
func utilitySuffix(t token.Type, name string) string {
	for _, prefix := range categoryPrefixes[t] {
		if rest := strings.TrimPrefix(name, prefix); rest != name && rest != "" {
			return rest
		}
	}
	return name
}

// propertyTypes maps CSS properties to the token type whose values they take
var propertyTypes = map[string]token.Type{
	// Color
	"color":                 token.TypeColor,
	"background":            token.TypeColor,
	"background-color":      token.TypeColor,
	"border-color":          token.TypeColor,
	"border-top-color":      token.TypeColor,
	"border-right-color":    token.TypeColor,
	"border-bottom-color":   token.TypeColor,
	"border-left-color":     token.TypeColor,
	"outline-color":         token.TypeColor,
	"text-decoration-color": token.TypeColor,
	"caret-color":           token.TypeColor,
	"accent-color":          token.TypeColor,
	"fill":                  token.TypeColor,
	"stroke":                token.TypeColor,

	// Typography
	"font-family": token.TypeFontFamily,
	"font-size":   token.TypeFontSize,
	"font-weight": token.TypeFontWeight,

	// Spacing
	"margin":                token.TypeSpacing,
	"margin-top":            token.TypeSpacing,
	"margin-right":          token.TypeSpacing,
	"margin-bottom":         token.TypeSpacing,
	"margin-left":           token.TypeSpacing,
	"margin-block":          token.TypeSpacing,
	"margin-block-start":    token.TypeSpacing,
	"margin-block-end":      token.TypeSpacing,
	"margin-inline":         token.TypeSpacing,
	"margin-inline-start":   token.TypeSpacing,
	"margin-inline-end":     token.TypeSpacing,
	"padding":               token.TypeSpacing,
	"padding-top":           token.TypeSpacing,
	"padding-right":         token.TypeSpacing,
	"padding-bottom":        token.TypeSpacing,
	"padding-left":          token.TypeSpacing,
	"padding-block":         token.TypeSpacing,
	"padding-block-start":   token.TypeSpacing,
	"padding-block-end":     token.TypeSpacing,
	"padding-inline":        token.TypeSpacing,
	"padding-inline-start":  token.TypeSpacing,
	"padding-inline-end":    token.TypeSpacing,
	"gap":                   token.TypeSpacing,
	"row-gap":               token.TypeSpacing,
	"column-gap":            token.TypeSpacing,
	"inset":                 token.TypeSpacing,
	"top":                   token.TypeSpacing,
	"right":                 token.TypeSpacing,
	"bottom":                token.TypeSpacing,
	"left":                  token.TypeSpacing,
	"scroll-margin":         token.TypeSpacing,
	"scroll-padding":        token.TypeSpacing,
	"grid-gap":              token.TypeSpacing,
	"text-indent":           token.TypeSpacing,
	"outline-offset":        token.TypeSpacing,
	"border-spacing":        token.TypeSpacing,
	"column-rule-width":     token.TypeSpacing,
	"letter-spacing":        token.TypeSpacing,
	"word-spacing":          token.TypeSpacing,
	"text-underline-offset": token.TypeSpacing,
}

// categorizeProperty returns the token type a CSS property's value should
// come from. Vendor prefixes are ignored.
func categorizeProperty(property string) token.Type {
	p := strings.ToLower(strings.TrimSpace(property))
	if strings.HasPrefix(p, "-") && !strings.HasPrefix(p, "--") {
		if i := strings.Index(p[1:], "-"); i >= 0 {
			p = p[i+2:]
		}
	}
	return propertyTypes[p]
}
