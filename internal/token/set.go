package token

import (
	"github.com/rs/zerolog"
)

// Resolved is a token ready for emission
type Resolved struct {
	Name     string // canonical kebab-case name, "color-primary"
	Path     string // normalized path, "color.primary"
	Type     Type
	Value    string
	Status   Status
	Fallback bool // Value came from a fallback table
}

// BuildOptions configures Build
type BuildOptions struct {
	Namespaces []string
	Logger     zerolog.Logger
}

// Stats counts how tokens in a set were resolved
type Stats struct {
	Total      int
	Resolved   int
	Fallbacks  int
	Cycles     int
	Unresolved int
	Malformed  int
}

// Set is the flattened, resolved result of a group of layers
type Set struct {
	tokens []Resolved
	stats  Stats
}

// Tokens returns resolved tokens in source order
func (s *Set) Tokens() []Resolved {
	return append([]Resolved(nil), s.tokens...)
}

// Stats returns resolution counts
func (s *Set) Stats() Stats {
	return s.stats
}

// Lookup finds a resolved token by normalized path
func (s *Set) Lookup(path string) (Resolved, bool) {
	for _, t := range s.tokens {
		if t.Path == path {
			return t, true
		}
	}
	return Resolved{}, false
}

// Build resolves every path defined in any layer. Paths are visited in the
// first layer's insertion order, then unseen paths of later layers. Tokens
// whose resolution fails get a fallback value, so the set is always complete.
func Build(layers []Layer, opts BuildOptions) *Set {
	namespaces := opts.Namespaces
	if len(namespaces) == 0 {
		namespaces = DefaultNamespaces
	}
	resolver := NewResolver(layers, WithLogger(opts.Logger), WithNamespaces(namespaces...))
	names := newNamer()
	set := &Set{}

	seen := make(map[string]bool)
	for _, layer := range layers {
		for _, path := range layer.Tree.Paths() {
			if seen[path] {
				continue
			}
			seen[path] = true

			// the highest layer defining the path owns its name and type
			node, _ := definingNode(layers, path)
			set.add(resolveNode(resolver, node, namespaces), names)
		}
	}
	return set
}

func definingNode(layers []Layer, path string) (Node, bool) {
	for _, layer := range layers {
		if n, ok := layer.Tree.Lookup(path); ok {
			return n, true
		}
	}
	return Node{}, false
}

func resolveNode(resolver *Resolver, node Node, namespaces []string) Resolved {
	typ := typeOf(node, namespaces)
	res := resolver.Trace(node.Path)

	out := Resolved{
		Name:   Kebab(StripPrefixes(node.Name, namespaces)),
		Path:   node.Path,
		Type:   typ,
		Status: res.Status,
	}

	switch res.Status {
	case StatusResolved:
		out.Value = Finalize(typ, res.Value)
	case StatusMalformed:
		out.Value = Neutral(typ)
		out.Fallback = true
	default:
		out.Value = Fallback(typ, node.Path)
		out.Fallback = true
	}
	return out
}

func (s *Set) add(r Resolved, names *namer) {
	r.Name = names.assign(r.Name)
	s.tokens = append(s.tokens, r)

	s.stats.Total++
	if r.Fallback {
		s.stats.Fallbacks++
	}
	switch r.Status {
	case StatusResolved:
		s.stats.Resolved++
	case StatusCycle:
		s.stats.Cycles++
	case StatusUnresolved:
		s.stats.Unresolved++
	case StatusMalformed:
		s.stats.Malformed++
	}
}
