// Package token implements design token resolution: path normalization, type
// classification, alias resolution across theme layers and fallback tables.
//
// Nothing in this package performs I/O. Trees are built once by a decoder and
// treated as immutable while a Resolver walks them.
package token

import (
	"regexp"
	"strings"
)

// Type classifies what a token's value means in CSS
type Type int

// Token types. TypeUnknown is the zero value.
const (
	TypeUnknown Type = iota
	TypeColor
	TypeFontFamily
	TypeFontSize
	TypeFontWeight
	TypeSpacing
)

var typeNames = map[Type]string{
	TypeUnknown:    "unknown",
	TypeColor:      "color",
	TypeFontFamily: "font-family",
	TypeFontSize:   "font-size",
	TypeFontWeight: "font-weight",
	TypeSpacing:    "spacing",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// typeTags maps explicit "type"/"$type" tags (lowercased, separators removed) to types
var typeTags = map[string]Type{
	"color":      TypeColor,
	"colour":     TypeColor,
	"fontfamily": TypeFontFamily,
	"family":     TypeFontFamily,
	"fontweight": TypeFontWeight,
	"weight":     TypeFontWeight,
	"fontsize":   TypeFontSize,
	"fontsizes":  TypeFontSize,
	"typography": TypeFontSize,
	"dimension":  TypeSpacing,
	"spacing":    TypeSpacing,
	"space":      TypeSpacing,
	"sizing":     TypeSpacing,
}

// ParseType maps an explicit type tag such as "fontWeight" or "font-weight".
func ParseType(tag string) (Type, bool) {
	key := strings.ToLower(tag)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	t, ok := typeTags[key]
	return t, ok
}

// Node is a single token definition inside a tree
type Node struct {
	Path      string // normalized path, "color.primary"
	Name      string // display path with original casing, "Color.Primary"
	Value     string // literal text or alias, "{color.blue.50}"
	Tag       Type   // explicit type tag, TypeUnknown when absent
	Malformed bool   // value was neither a scalar nor a list of scalars
}

// IsAlias reports whether the whole value is a single reference
func (n Node) IsAlias() bool {
	_, ok := AliasTarget(n.Value)
	return ok
}

// referencePattern matches "{path}" references embedded in values
var referencePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// AliasTarget returns the referenced path when value is exactly one "{path}" reference.
func AliasTarget(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "{") || !strings.HasSuffix(v, "}") {
		return "", false
	}
	inner := v[1 : len(v)-1]
	if inner == "" || strings.ContainsAny(inner, "{}") {
		return "", false
	}
	return inner, true
}

// References lists every referenced path inside value, in order of appearance.
func References(value string) []string {
	matches := referencePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}

// Tree is an insertion-ordered set of nodes keyed by normalized path
type Tree struct {
	namespaces []string
	order      []string
	nodes      map[string]Node
}

// NewTree creates an empty tree. Paths are normalized with the given namespaces,
// or DefaultNamespaces when none are passed.
func NewTree(namespaces ...string) *Tree {
	if len(namespaces) == 0 {
		namespaces = DefaultNamespaces
	}
	return &Tree{
		namespaces: namespaces,
		nodes:      make(map[string]Node),
	}
}

// Add stores a node under its normalized path. Re-adding a path replaces the
// value but keeps its original position.
func (t *Tree) Add(name, value string, tag Type) {
	t.put(Node{Name: name, Value: value, Tag: tag})
}

// AddMalformed stores a node whose raw value could not be read as a literal.
func (t *Tree) AddMalformed(name string, tag Type) {
	t.put(Node{Name: name, Tag: tag, Malformed: true})
}

func (t *Tree) put(n Node) {
	n.Path = NormalizeWith(n.Name, t.namespaces)
	if n.Path == "" {
		return
	}
	if _, exists := t.nodes[n.Path]; !exists {
		t.order = append(t.order, n.Path)
	}
	t.nodes[n.Path] = n
}

// Merge copies every node of other into t. Paths t already holds are
// overwritten in place; new paths are appended in other's order.
func (t *Tree) Merge(other *Tree) {
	for _, path := range other.Paths() {
		t.put(other.nodes[path])
	}
}

// Lookup finds a node by normalized path
func (t *Tree) Lookup(path string) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	n, ok := t.nodes[path]
	return n, ok
}

// Paths returns normalized paths in insertion order
func (t *Tree) Paths() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.order...)
}

// Len returns the number of nodes
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Layer is a named source of token definitions. Precedence is the order
// layers are passed to a Resolver: first wins.
type Layer struct {
	Name string
	Tree *Tree
}
