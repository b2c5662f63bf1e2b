package token

import (
	"strconv"
	"strings"
)

// Neutral values returned when a fallback table has no entry for a hint.
const (
	NeutralColor      = "#666666"
	NeutralFontSize   = "1rem"
	NeutralSpacing    = "1rem"
	NeutralFontWeight = "400"
	NeutralFontFamily = "sans-serif"
	NeutralUnknown    = "initial"
)

// Neutral returns the fixed neutral value for a type
func Neutral(t Type) string {
	switch t {
	case TypeColor:
		return NeutralColor
	case TypeFontSize:
		return NeutralFontSize
	case TypeSpacing:
		return NeutralSpacing
	case TypeFontWeight:
		return NeutralFontWeight
	case TypeFontFamily:
		return NeutralFontFamily
	default:
		return NeutralUnknown
	}
}

// Fallback returns a table value for a token of type t whose live resolution
// failed. hint is usually the token's normalized path. The result is never empty.
func Fallback(t Type, hint string) string {
	path := Normalize(hint)
	segments := Segments(path)

	switch t {
	case TypeColor:
		family, variant := colorHint(segments)
		return Color(family, variant)
	case TypeFontSize:
		family, step := fontSizeHint(segments)
		return FontSize(family, step)
	case TypeFontWeight:
		return FontWeight(tailHint(segments, func(k string) bool {
			_, ok := fontWeights[weightKey(k)]
			return ok || isNumber(k)
		}))
	case TypeSpacing:
		return Spacing(tailHint(segments, func(k string) bool {
			_, ok := spacings[k]
			return ok
		}))
	case TypeFontFamily:
		return FontFamily(tailHint(segments, func(k string) bool {
			_, ok := fontFamilies[k]
			return ok
		}))
	default:
		return NeutralUnknown
	}
}

// Finalize normalizes a live value for its type. Only named font weights are
// rewritten ("bold" -> "700"); every other value passes through unchanged.
func Finalize(t Type, value string) string {
	if t != TypeFontWeight {
		return value
	}
	if w, ok := fontWeights[weightKey(value)]; ok {
		return w
	}
	return value
}

// fontWeights maps named weights to their numeric CSS form
var fontWeights = map[string]string{
	"thin":       "100",
	"hairline":   "100",
	"extralight": "200",
	"ultralight": "200",
	"light":      "300",
	"normal":     "400",
	"regular":    "400",
	"book":       "400",
	"medium":     "500",
	"semibold":   "600",
	"demibold":   "600",
	"bold":       "700",
	"extrabold":  "800",
	"ultrabold":  "800",
	"heavy":      "900",
	"black":      "900",
}

func weightKey(s string) string {
	k := strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(k)
}

// FontWeight maps a named weight to its numeric form. Numeric input is
// returned unchanged; anything else yields NeutralFontWeight.
func FontWeight(name string) string {
	n := strings.TrimSpace(name)
	if isNumber(n) {
		return n
	}
	if w, ok := fontWeights[weightKey(n)]; ok {
		return w
	}
	return NeutralFontWeight
}

// fontSizeSteps maps named scale steps onto the numeric USWDS scale
var fontSizeSteps = map[string]string{
	"3xs": "1",
	"2xs": "2",
	"xs":  "3",
	"sm":  "4",
	"md":  "5",
	"lg":  "6",
	"xl":  "9",
	"2xl": "12",
	"3xl": "14",
}

// fontSizes is keyed by style family then numeric step
var fontSizes = map[string]map[string]string{
	"reading": {
		"1":  "0.75rem",
		"2":  "0.875rem",
		"3":  "1rem",
		"4":  "1.125rem",
		"5":  "1.25rem",
		"6":  "1.5rem",
		"9":  "1.75rem",
		"12": "2rem",
		"14": "2.5rem",
		"15": "3rem",
	},
	"display": {
		"1":  "1.75rem",
		"2":  "2rem",
		"3":  "2.5rem",
		"4":  "3rem",
		"5":  "3.5rem",
		"6":  "4rem",
		"9":  "4.5rem",
		"12": "5rem",
		"14": "6rem",
	},
	"mono": {
		"2":  "0.75rem",
		"3":  "0.875rem",
		"4":  "1rem",
		"5":  "1.125rem",
		"6":  "1.25rem",
		"9":  "1.5rem",
		"12": "1.75rem",
		"14": "2rem",
		"15": "2.5rem",
	},
	"proto": {
		"2":  "0.75rem",
		"3":  "0.875rem",
		"4":  "1rem",
		"5":  "1.25rem",
		"6":  "1.5rem",
		"7":  "2rem",
		"12": "2.5rem",
		"14": "3rem",
		"15": "3.5rem",
	},
}

// fontSizeAliases maps alternate family names onto a scale
var fontSizeAliases = map[string]string{
	"body":    "reading",
	"sans":    "reading",
	"serif":   "reading",
	"heading": "display",
	"code":    "mono",
	"alt":     "proto",
}

// FontSize looks up a length for a style family and scale step. The step may
// be named ("sm", "2xl") or numeric ("4"). Unknown families use the reading scale.
func FontSize(family, step string) string {
	family = strings.ToLower(strings.TrimSpace(family))
	step = strings.ToLower(strings.TrimSpace(step))

	if alias, ok := fontSizeAliases[family]; ok {
		family = alias
	}
	scale, ok := fontSizes[family]
	if !ok {
		scale = fontSizes["reading"]
	}
	if n, ok := fontSizeSteps[step]; ok {
		step = n
	}
	if size, ok := scale[step]; ok {
		return size
	}
	return NeutralFontSize
}

func isStyleFamily(s string) bool {
	_, ok := fontSizes[s]
	if !ok {
		_, ok = fontSizeAliases[s]
	}
	return ok
}

// fontSizeHint finds "<family>.<step>" anywhere in a path, accepting the
// hyphenated "font-size-reading-sm" form as well.
func fontSizeHint(segments []string) (family, step string) {
	var parts []string
	for _, s := range segments {
		parts = append(parts, strings.Split(s, "-")...)
	}
	for i, p := range parts {
		if isStyleFamily(p) {
			if i+1 < len(parts) {
				return p, parts[i+1]
			}
			return p, ""
		}
	}
	return "", lastSegment(parts)
}

// colors is keyed by color family then variant. Semantic families use
// lightness names, palette families use the numeric USWDS grade with an
// optional "v" suffix for vivid grades.
var colors = map[string]map[string]string{
	"base": {
		"lightest": "#F0F0F0",
		"lighter":  "#E6E6E6",
		"light":    "#A6A6A6",
		"medium":   "#757575",
		"dark":     "#454545",
		"darker":   "#1F1F1F",
		"darkest":  "#1A1A1A",
	},
	"primary": {
		"lightest": "#E8F1FA",
		"lighter":  "#C5DCEF",
		"light":    "#4A89DA",
		"medium":   "#2E5C9F",
		"vivid":    "#0066CC",
		"dark":     "#1A4B8C",
		"darker":   "#0D3875",
		"darkest":  "#062657",
	},
	"secondary": {
		"lightest": "#FFF5E6",
		"lighter":  "#FFE4C2",
		"light":    "#FFA01C",
		"medium":   "#996B00",
		"vivid":    "#FFB300",
		"dark":     "#805700",
		"darker":   "#664400",
		"darkest":  "#4D3300",
	},
	"accent-cool": {
		"lightest": "#E7F6F8",
		"lighter":  "#B3E5EC",
		"light":    "#00BDE3",
		"medium":   "#009EC1",
		"vivid":    "#00A5DB",
		"dark":     "#0081A1",
		"darker":   "#006180",
		"darkest":  "#003D54",
	},
	"accent-warm": {
		"lightest": "#F7F5F9",
		"lighter":  "#E6E1ED",
		"light":    "#9B8DB7",
		"medium":   "#7C6B99",
		"vivid":    "#6B4DE0",
		"dark":     "#5E4F7D",
		"darker":   "#3F3361",
		"darkest":  "#251B45",
	},
	"info": {
		"lightest": "#E7F6F8",
		"lighter":  "#B3E5EC",
		"light":    "#00BDE3",
		"medium":   "#00A5DB",
		"dark":     "#0081A1",
		"darker":   "#006180",
		"darkest":  "#003D54",
	},
	"error": {
		"lightest": "#F7BABA",
		"lighter":  "#F2938C",
		"light":    "#E31C3D",
		"medium":   "#CD2026",
		"dark":     "#B31E22",
		"darker":   "#981B1E",
		"darkest":  "#7D1618",
	},
	"warning": {
		"lightest": "#FFF0E0",
		"lighter":  "#F7BCA2",
		"light":    "#FF580A",
		"medium":   "#DD580C",
		"dark":     "#B64A0A",
		"darker":   "#8C3900",
		"darkest":  "#63300F",
	},
	"success": {
		"lightest": "#ECF3EC",
		"lighter":  "#B7E1B9",
		"light":    "#21C834",
		"medium":   "#008817",
		"dark":     "#216E1F",
		"darker":   "#154C21",
		"darkest":  "#0D351E",
	},
	"disabled": {
		"lightest": "#F3F3F3",
		"lighter":  "#E6E6E6",
		"light":    "#C1C1C1",
		"medium":   "#919191",
		"dark":     "#6E6E6E",
		"darker":   "#3D3D3D",
		"darkest":  "#1B1B1B",
	},
	"gray": {
		"5":  "#F0F0F0",
		"10": "#E6E6E6",
		"20": "#C9C9C9",
		"30": "#A6A6A6",
		"40": "#919191",
		"50": "#757575",
		"60": "#454545",
		"70": "#3D3D3D",
		"80": "#1F1F1F",
		"90": "#1A1A1A",
	},
	"blue-warm": {
		"5":   "#E8F1FA",
		"10":  "#DAE9F7",
		"20":  "#C5DCEF",
		"30":  "#9BBFE3",
		"40":  "#6694D1",
		"50":  "#2E5C9F",
		"60":  "#1A4B8C",
		"70":  "#0D3875",
		"80":  "#062657",
		"90":  "#01193F",
		"5v":  "#E8F1FA",
		"10v": "#DAE9F7",
		"20v": "#C5DCEF",
		"30v": "#4A89DA",
		"40v": "#2672DE",
		"50v": "#0066CC",
		"60v": "#1A4B8C",
		"70v": "#0D3875",
		"80v": "#062657",
	},
	"indigo": {
		"5":   "#F7F5F9",
		"10":  "#E6E1ED",
		"20":  "#CFC8D9",
		"30":  "#B8B0C9",
		"40":  "#A195B9",
		"50":  "#7C6B99",
		"60":  "#5E4F7D",
		"70":  "#3F3361",
		"80":  "#251B45",
		"90":  "#14102B",
		"5v":  "#F7F5F9",
		"10v": "#E6E1ED",
		"20v": "#CFC8D9",
		"30v": "#B8B0C9",
		"40v": "#9B8DB7",
		"50v": "#6B4DE0",
		"60v": "#5E4F7D",
		"70v": "#3F3361",
		"80v": "#251B45",
	},
	"indigo-warm": {
		"50v":   "#6B4DE0",
		"vivid": "#6B4DE0",
	},
	"gold": {
		"5":   "#FFF5E6",
		"10":  "#FFE0B3",
		"30":  "#FFBE2E",
		"30v": "#FFB300",
		"50":  "#996B00",
		"60":  "#805700",
		"70":  "#664400",
		"80":  "#4D3300",
	},
	"mint": {
		"5v":  "#E0FFF2",
		"20":  "#7DDCC8",
		"30":  "#40B393",
		"30v": "#48C0A3",
		"50":  "#2E8C73",
		"60":  "#1A5751",
		"70":  "#0D2E2C",
		"80":  "#041615",
	},
	"cyan": {
		"5":   "#E6F9FF",
		"20":  "#99E1EC",
		"30v": "#40CCDF",
		"50v": "#00A5C6",
		"60v": "#0089A7",
		"70":  "#006D84",
		"80":  "#0D7EA2",
	},
	"red": {
		"10":  "#FFE6E6",
		"20":  "#FFB3B3",
		"30":  "#FF8080",
		"50v": "#FF4D4D",
		"60v": "#FF1A1A",
		"70v": "#E60000",
		"80v": "#B30000",
	},
	"red-warm": {
		"60v": "#FF4D4D",
		"80":  "#B30000",
	},
	"yellow": {
		"5":   "#FFF9E6",
		"20v": "#FFE066",
		"30v": "#FFD700",
		"50v": "#FFBE2E",
		"60":  "#B38F00",
		"70":  "#806600",
		"80":  "#4D3D00",
	},
	"green-cool": {
		"5":   "#E6FFF0",
		"20v": "#70E17B",
		"40v": "#00A91C",
		"50v": "#008817",
		"60v": "#216E1F",
		"70v": "#154C21",
		"80":  "#0D3915",
	},
	"black-transparent": {
		"10": "rgba(0, 0, 0, 0.1)",
		"20": "rgba(0, 0, 0, 0.2)",
		"40": "rgba(0, 0, 0, 0.4)",
		"50": "rgba(0, 0, 0, 0.5)",
	},
	"white-transparent": {
		"10": "rgba(255, 255, 255, 0.1)",
		"20": "rgba(255, 255, 255, 0.2)",
		"30": "rgba(255, 255, 255, 0.3)",
	},
}

// flatColors have a single value regardless of variant
var flatColors = map[string]string{
	"white": "#FFFFFF",
	"black": "#000000",
}

// Color looks up a color by family and variant. A missing vivid variant
// ("60v", "vivid") falls back to the family's "vivid" entry. An empty variant
// tries "50" then "medium".
func Color(family, variant string) string {
	family = strings.ToLower(strings.TrimSpace(family))
	variant = strings.ToLower(strings.TrimSpace(variant))

	if c, ok := flatColors[family]; ok {
		return c
	}
	table, ok := colors[family]
	if !ok {
		return NeutralColor
	}

	if variant == "" {
		for _, v := range []string{"50", "medium"} {
			if c, ok := table[v]; ok {
				return c
			}
		}
		return NeutralColor
	}
	if c, ok := table[variant]; ok {
		return c
	}
	if strings.HasSuffix(variant, "v") || variant == "vivid" {
		if c, ok := table["vivid"]; ok {
			return c
		}
	}
	return NeutralColor
}

// colorHint extracts family and variant from a color path. Paths shaped
// "color.<family>.<variant>" are read positionally after the color segment;
// hyphenated palette names ("blue-warm-50v") are split on their last hyphen.
func colorHint(segments []string) (family, variant string) {
	rest := segments
	for i, s := range segments {
		if s == "color" || s == "colors" || s == "colour" {
			rest = segments[i+1:]
			break
		}
	}

	switch len(rest) {
	case 0:
		return "", ""
	case 1:
		return splitColorName(strings.TrimPrefix(rest[0], "color-"))
	default:
		return strings.Join(rest[:len(rest)-1], "-"), rest[len(rest)-1]
	}
}

// splitColorName splits "blue-warm-50v" into ("blue-warm", "50v"); a name
// with no trailing grade is returned whole.
func splitColorName(name string) (family, variant string) {
	if _, ok := colors[name]; ok {
		return name, ""
	}
	if _, ok := flatColors[name]; ok {
		return name, ""
	}
	i := strings.LastIndex(name, "-")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

// spacings covers the numeric USWDS spacing scale and named steps
var spacings = map[string]string{
	"0":         "0",
	"1":         "0.25rem",
	"2":         "0.5rem",
	"3":         "0.75rem",
	"4":         "1rem",
	"5":         "1.25rem",
	"6":         "1.5rem",
	"7":         "1.75rem",
	"8":         "2rem",
	"9":         "2.5rem",
	"10":        "3rem",
	"11":        "3.5rem",
	"12":        "4rem",
	"13":        "4.5rem",
	"14":        "5rem",
	"15":        "5.5rem",
	"16":        "6rem",
	"2xs":       "0.5rem",
	"xs":        "0.75rem",
	"sm":        "1rem",
	"md":        "1.5rem",
	"lg":        "2rem",
	"xl":        "3rem",
	"2xl":       "4rem",
	"3xl":       "5rem",
	"desktop":   "4rem",
	"mobile":    "2rem",
	"container": "4rem",
	"card":      "1.5rem",
	"button":    "0.75rem",
}

// Spacing looks up a length for a numeric or named spacing step
func Spacing(step string) string {
	if s, ok := spacings[strings.ToLower(strings.TrimSpace(step))]; ok {
		return s
	}
	return NeutralSpacing
}

// fontFamilies maps typeface roles to font stacks
var fontFamilies = map[string]string{
	"sans":    `"Source Sans Pro", "Helvetica Neue", Helvetica, Arial, sans-serif`,
	"serif":   `Merriweather, Georgia, Cambria, "Times New Roman", Times, serif`,
	"mono":    `"Roboto Mono", "Bitstream Vera Sans Mono", Consolas, Courier, monospace`,
	"system":  `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`,
	"body":    `"Source Sans Pro", "Helvetica Neue", Helvetica, Arial, sans-serif`,
	"ui":      `"Source Sans Pro", "Helvetica Neue", Helvetica, Arial, sans-serif`,
	"heading": `Merriweather, Georgia, Cambria, "Times New Roman", Times, serif`,
	"code":    `"Roboto Mono", "Bitstream Vera Sans Mono", Consolas, Courier, monospace`,
}

// FontFamily looks up a font stack for a typeface role ("sans", "heading")
func FontFamily(role string) string {
	if f, ok := fontFamilies[strings.ToLower(strings.TrimSpace(role))]; ok {
		return f
	}
	return NeutralFontFamily
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// tailHint picks the longest hyphen-delimited suffix of the last segment that
// a table knows: "font-weight-semi-bold" -> "semi-bold", "spacing-4" -> "4".
func tailHint(segments []string, known func(string) bool) string {
	last := lastSegment(segments)
	parts := strings.Split(last, "-")
	for i := range parts {
		if candidate := strings.Join(parts[i:], "-"); known(candidate) {
			return candidate
		}
	}
	return last
}

func lastSegment(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
