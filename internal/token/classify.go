package token

import (
	"regexp"
	"strings"
)

// classifierRule assigns a type to paths it matches
type classifierRule struct {
	name  string
	typ   Type
	match func(path string) bool
}

// word builds a pattern matching any alternative as a whole dot- or hyphen-delimited word
func word(alternatives string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[.-])(?:` + alternatives + `)(?:[.-]|$)`)
}

var (
	colorWord       = word(`colou?rs?`)
	familyWord      = word(`font[.-]famil(?:y|ies)|famil(?:y|ies)|typefaces?`)
	weightWord      = word(`font[.-]weights?|weights?`)
	namedWeightLast = regexp.MustCompile(`(?:^|\.)(?:thin|hairline|extra-?light|ultra-?light|light|normal|regular|book|medium|semi-?bold|demi-?bold|bold|extra-?bold|ultra-?bold|heavy|black)$`)
	numericWeight   = regexp.MustCompile(`(?:^|\.)[1-9]00$`)
	fontWord        = word(`font|fonts|type|typography|text`)
	sizeWord        = word(`font[.-]sizes?|sizes?|type[.-]?scale|text[.-]sizes?`)
	styleFamilySize = regexp.MustCompile(`(?:^|[.-])(?:reading|display|mono|proto)[.-](?:\d*x?s|xs|sm|md|lg|\d*x?l|xl|\d+)$`)
	spacingWord     = word(`spacings?|spaces?|margins?|paddings?|gaps?|gutters?|insets?`)
)

// classifierRules are ordered from most to least specific; first match wins
var classifierRules = []classifierRule{
	{
		name:  "color segment",
		typ:   TypeColor,
		match: colorWord.MatchString,
	},
	{
		name:  "font family segment",
		typ:   TypeFontFamily,
		match: familyWord.MatchString,
	},
	{
		name:  "font weight segment",
		typ:   TypeFontWeight,
		match: weightWord.MatchString,
	},
	{
		name: "named weight",
		typ:  TypeFontWeight,
		match: func(path string) bool {
			// "spacing.medium" or "font-size.reading.medium" name a step, not a weight
			return namedWeightLast.MatchString(path) && !sizeWord.MatchString(path) && !spacingWord.MatchString(path)
		},
	},
	{
		name: "numeric weight",
		typ:  TypeFontWeight,
		match: func(path string) bool {
			return numericWeight.MatchString(path) && fontWord.MatchString(path) && !sizeWord.MatchString(path)
		},
	},
	{
		name:  "font size segment",
		typ:   TypeFontSize,
		match: sizeWord.MatchString,
	},
	{
		name:  "style family scale step",
		typ:   TypeFontSize,
		match: styleFamilySize.MatchString,
	},
	{
		name:  "spacing segment",
		typ:   TypeSpacing,
		match: spacingWord.MatchString,
	},
}

// Classify infers a token type from a normalized path. Unknown is returned
// when no rule matches.
func Classify(path string) Type {
	p := strings.ToLower(path)
	for _, rule := range classifierRules {
		if rule.match(p) {
			return rule.typ
		}
	}
	return TypeUnknown
}

// typeOf resolves a node's type: explicit tag first, then its own path, then
// the path its alias points at.
func typeOf(n Node, namespaces []string) Type {
	if n.Tag != TypeUnknown {
		return n.Tag
	}
	if t := Classify(n.Path); t != TypeUnknown {
		return t
	}
	for _, ref := range References(n.Value) {
		if t := Classify(NormalizeWith(ref, namespaces)); t != TypeUnknown {
			return t
		}
	}
	return TypeUnknown
}
