package token

import (
	"strings"

	"github.com/rs/zerolog"
)

// Status describes how a resolution ended
type Status int

const (
	StatusResolved   Status = iota // chain ended at a literal
	StatusUnresolved               // some path in the chain is defined by no layer
	StatusCycle                    // chain revisited a path
	StatusMalformed                // chain reached a node without a usable value
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusUnresolved:
		return "unresolved"
	case StatusCycle:
		return "cycle"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Resolution is the full outcome of resolving one top-level path
type Resolution struct {
	Path   string   // normalized path that was requested
	Value  string   // final literal, empty unless Status is StatusResolved
	Status Status   // how the walk ended
	Layer  string   // layer defining Path, empty when no layer does
	Chain  []string // paths entered, in order
	At     string   // path where the walk failed
}

// Resolver follows alias chains across layers. It never mutates the layers
// and keeps no state between calls, so one Resolver may be shared by goroutines.
type Resolver struct {
	layers     []Layer
	namespaces []string
	logger     zerolog.Logger
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithLogger sets where resolution warnings go. The default discards them.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithNamespaces sets the namespace prefixes stripped from alias targets
func WithNamespaces(namespaces ...string) ResolverOption {
	return func(r *Resolver) {
		if len(namespaces) > 0 {
			r.namespaces = namespaces
		}
	}
}

// NewResolver creates a resolver over layers in precedence order: the first
// layer that defines a path wins.
func NewResolver(layers []Layer, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		layers:     layers,
		namespaces: DefaultNamespaces,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the literal at the end of path's alias chain. ok is false
// when the chain hits a cycle, an undefined path or a malformed node; the
// failure is logged as a warning.
func (r *Resolver) Resolve(path string) (value string, ok bool) {
	res := r.Trace(path)
	return res.Value, res.Status == StatusResolved
}

// Trace resolves path and reports how the chain was followed. At most one
// warning is logged per call.
func (r *Resolver) Trace(path string) Resolution {
	p := NormalizeWith(path, r.namespaces)
	w := &walk{resolver: r}

	value, ok := w.resolve(p, nil)
	res := Resolution{
		Path:  p,
		Layer: w.layer,
		Chain: w.chain,
	}
	if ok {
		res.Value = value
		res.Status = StatusResolved
		return res
	}

	res.Status = w.failure
	res.At = w.failedAt
	r.logger.Warn().
		Str("token", p).
		Str("at", w.failedAt).
		Strs("chain", w.chain).
		Msg(failureMessages[w.failure])
	return res
}

var failureMessages = map[Status]string{
	StatusUnresolved: "unresolved token reference",
	StatusCycle:      "circular token reference",
	StatusMalformed:  "malformed token",
}

// visitedSet holds the paths entered on the current branch. with always
// copies, so sibling branches never see each other's entries.
type visitedSet []string

func (v visitedSet) contains(path string) bool {
	for _, p := range v {
		if p == path {
			return true
		}
	}
	return false
}

func (v visitedSet) with(path string) visitedSet {
	return append(v[:len(v):len(v)], path)
}

// walk is the per-call state of one top-level resolution
type walk struct {
	resolver *Resolver
	chain    []string
	layer    string
	failed   bool
	failure  Status
	failedAt string
}

// fail records the first failure of the walk
func (w *walk) fail(status Status, path string) {
	if w.failed {
		return
	}
	w.failed = true
	w.failure = status
	w.failedAt = path
}

func (w *walk) resolve(path string, visited visitedSet) (string, bool) {
	if visited.contains(path) {
		w.fail(StatusCycle, path)
		return "", false
	}
	visited = visited.with(path)

	for _, layer := range w.resolver.layers {
		node, ok := layer.Tree.Lookup(path)
		if !ok {
			continue
		}
		if len(w.chain) == 0 {
			w.layer = layer.Name
		}
		w.chain = append(w.chain, path)
		if node.Malformed {
			w.fail(StatusMalformed, path)
			return "", false
		}
		// the defining layer wins even when its chain fails
		return w.value(node.Value, visited)
	}

	w.fail(StatusUnresolved, path)
	return "", false
}

// value resolves a node value: a literal, a single alias, or a literal with
// embedded references. Each embedded reference is its own branch.
func (w *walk) value(raw string, visited visitedSet) (string, bool) {
	if target, ok := AliasTarget(raw); ok {
		return w.resolve(w.normalize(target), visited)
	}

	matches := referencePattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return raw, true
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(raw[last:m[0]])
		resolved, ok := w.resolve(w.normalize(raw[m[2]:m[3]]), visited)
		if !ok {
			return "", false
		}
		b.WriteString(resolved)
		last = m[1]
	}
	b.WriteString(raw[last:])
	return b.String(), true
}

func (w *walk) normalize(ref string) string {
	return NormalizeWith(ref, w.resolver.namespaces)
}
