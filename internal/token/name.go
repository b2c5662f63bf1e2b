package token

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	kebabSeparators = regexp.MustCompile(`[\s/_.]+`)
	kebabAcronym    = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	kebabCamel      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	kebabInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	kebabHyphens    = regexp.MustCompile(`-+`)
)

// Kebab converts a display path to a CSS-safe kebab-case name.
//
//	Kebab("Font Weight/SemiBold") == "font-weight-semi-bold"
//	Kebab("color.blue-warm.50v")  == "color-blue-warm-50v"
func Kebab(s string) string {
	s = kebabSeparators.ReplaceAllString(s, "-")
	s = kebabAcronym.ReplaceAllString(s, "$1-$2")
	s = kebabCamel.ReplaceAllString(s, "$1-$2")
	s = strings.ToLower(s)
	s = kebabInvalid.ReplaceAllString(s, "")
	s = kebabHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// namer hands out unique canonical names. A name already taken gets a numeric
// suffix: "color-primary", "color-primary-2", "color-primary-3".
type namer struct {
	used map[string]int
}

func newNamer() *namer {
	return &namer{used: make(map[string]int)}
}

func (n *namer) assign(base string) string {
	if base == "" {
		base = "token"
	}
	count := n.used[base]
	n.used[base] = count + 1
	if count == 0 {
		return base
	}

	for i := count + 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, taken := n.used[candidate]; !taken {
			n.used[candidate] = 1
			return candidate
		}
	}
}
