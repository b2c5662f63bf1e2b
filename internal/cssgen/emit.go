// Package cssgen renders resolved design tokens as CSS and lints stylesheets
// that consume them.
package cssgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yacobolo/tokencss/internal/token"
)

// Format controls how utility rules are laid out
type Format string

const (
	// FormatCompact writes each utility rule on one line (default)
	FormatCompact Format = "compact"
	// FormatExpanded writes one declaration per line
	FormatExpanded Format = "expanded"
)

// ParseFormat maps a config value to a Format. Empty means compact.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCompact:
		return FormatCompact, true
	case FormatExpanded:
		return FormatExpanded, true
	default:
		return FormatCompact, false
	}
}

// EmitOptions configures Emit
type EmitOptions struct {
	Prefix      string // custom property prefix, "ds" -> --ds-color-primary
	Format      Format
	NoUtilities bool   // only emit the :root block
	Header      string // comment written above :root, may span lines
}

// group is one commented section of the :root block
type group struct {
	title string
	types []token.Type
}

// groups fixes the order of :root sections. Unknown tokens land in "Other".
var groups = []group{
	{title: "Colors", types: []token.Type{token.TypeColor}},
	{title: "Font Sizes", types: []token.Type{token.TypeFontSize}},
	{title: "Font Weights", types: []token.Type{token.TypeFontWeight}},
	{title: "Spacing", types: []token.Type{token.TypeSpacing}},
	{title: "Font Families", types: []token.Type{token.TypeFontFamily}},
	{title: "Other", types: []token.Type{token.TypeUnknown}},
}

// utilityTitles labels utility sections, in emission order
var utilityTitles = []struct {
	typ   token.Type
	title string
}{
	{token.TypeColor, "Color utilities"},
	{token.TypeFontSize, "Font size utilities"},
	{token.TypeFontWeight, "Font weight utilities"},
	{token.TypeSpacing, "Spacing utilities"},
	{token.TypeFontFamily, "Font family utilities"},
}

// Emit renders tokens as a :root custom property block followed by utility
// classes. Output depends only on tokens and opts.
func Emit(tokens []token.Resolved, opts EmitOptions) string {
	var b strings.Builder

	if opts.Header != "" {
		writeComment(&b, opts.Header)
		b.WriteString("\n")
	}

	byType := make(map[token.Type][]token.Resolved)
	for _, t := range tokens {
		byType[t.Type] = append(byType[t.Type], t)
	}

	b.WriteString(":root {\n")
	first := true
	for _, g := range groups {
		var members []token.Resolved
		for _, typ := range g.types {
			members = append(members, byType[typ]...)
		}
		if len(members) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		fmt.Fprintf(&b, "  /* %s */\n", g.title)
		for _, t := range members {
			fmt.Fprintf(&b, "  %s: %s;\n", PropertyName(opts.Prefix, t.Name), t.Value)
		}
	}
	b.WriteString("}\n")

	if opts.NoUtilities {
		return b.String()
	}

	seen := make(map[string]bool)
	for _, section := range utilityTitles {
		members := byType[section.typ]
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n/* %s */\n", section.title)
		for _, t := range members {
			for _, rule := range utilityRules[section.typ] {
				class := utilityClass(seen, rule.classPrefix, utilitySuffix(section.typ, t.Name), t.Name)
				writeRule(&b, opts.Format, class, rule.property, PropertyName(opts.Prefix, t.Name))
			}
		}
	}

	return b.String()
}

// utilityClass claims a class name for one token. When the short suffix is
// taken by another token the full token name is used, then a numeric tail:
// "colors-primary" -> .color-colors-primary.
func utilityClass(seen map[string]bool, prefix, suffix, name string) string {
	candidates := []string{prefix + suffix, prefix + name}
	for _, class := range candidates {
		if !seen[class] {
			seen[class] = true
			return class
		}
	}
	for i := 2; ; i++ {
		class := prefix + name + "-" + strconv.Itoa(i)
		if !seen[class] {
			seen[class] = true
			return class
		}
	}
}

// PropertyName builds the custom property name for a canonical token name
func PropertyName(prefix, name string) string {
	if p := token.Kebab(prefix); p != "" {
		return "--" + p + "-" + name
	}
	return "--" + name
}

func writeRule(b *strings.Builder, format Format, class, property, variable string) {
	if format == FormatExpanded {
		fmt.Fprintf(b, ".%s {\n  %s: var(%s);\n}\n", class, property, variable)
		return
	}
	fmt.Fprintf(b, ".%s { %s: var(%s); }\n", class, property, variable)
}

func writeComment(b *strings.Builder, text string) {
	// "*/" inside the header would end the comment early
	text = strings.ReplaceAll(text, "*/", "* /")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 1 {
		fmt.Fprintf(b, "/* %s */\n", lines[0])
		return
	}
	b.WriteString("/*\n")
	for _, line := range lines {
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		fmt.Fprintf(b, " * %s\n", line)
	}
	b.WriteString(" */\n")
}
