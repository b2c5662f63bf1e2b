package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, s *Set, path string) Resolved {
	t.Helper()
	r, ok := s.Lookup(path)
	require.True(t, ok, "token %q not in set", path)
	return r
}

func TestBuildLiteral(t *testing.T) {
	s := Build(single(tree("color.primary", "#005ea2")), BuildOptions{})

	tok := lookup(t, s, "color.primary")
	assert.Equal(t, "color-primary", tok.Name)
	assert.Equal(t, TypeColor, tok.Type)
	assert.Equal(t, "#005ea2", tok.Value)
	assert.Equal(t, StatusResolved, tok.Status)
	assert.False(t, tok.Fallback)
}

func TestBuildNamedWeightAlias(t *testing.T) {
	s := Build(single(tree("weight-a", "{weight-b}", "weight-b", "bold")), BuildOptions{})

	for _, path := range []string{"weight-a", "weight-b"} {
		tok := lookup(t, s, path)
		assert.Equal(t, TypeFontWeight, tok.Type)
		assert.Equal(t, "700", tok.Value)
		assert.False(t, tok.Fallback)
	}
}

func TestBuildCycleUsesNeutralFallback(t *testing.T) {
	var buf bytes.Buffer
	s := Build(single(tree(
		"x", "{y}",
		"y", "{x}",
		"color.x", "{color.y}",
		"color.y", "{color.x}",
	)), BuildOptions{Logger: zerolog.New(&buf)})

	for _, path := range []string{"x", "y"} {
		tok := lookup(t, s, path)
		assert.Equal(t, StatusCycle, tok.Status)
		assert.Equal(t, NeutralUnknown, tok.Value)
		assert.True(t, tok.Fallback)
	}
	for _, path := range []string{"color.x", "color.y"} {
		tok := lookup(t, s, path)
		assert.Equal(t, TypeColor, tok.Type)
		assert.Equal(t, NeutralColor, tok.Value)
	}

	// one warning per top-level token
	assert.Equal(t, 4, strings.Count(buf.String(), "circular token reference"))
	assert.Equal(t, 4, s.Stats().Cycles)
}

func TestBuildFallbackFromPath(t *testing.T) {
	s := Build(single(tree(
		"spacing.8", "{spacing.missing}",
		"color.primary.vivid", "{color.nowhere}",
	)), BuildOptions{})

	assert.Equal(t, "2rem", lookup(t, s, "spacing.8").Value)
	assert.Equal(t, "#0066CC", lookup(t, s, "color.primary.vivid").Value)
}

func TestBuildMalformedUsesNeutral(t *testing.T) {
	tr := NewTree()
	tr.AddMalformed("color.primary", TypeUnknown)
	s := Build(single(tr), BuildOptions{})

	tok := lookup(t, s, "color.primary")
	assert.Equal(t, StatusMalformed, tok.Status)
	assert.Equal(t, NeutralColor, tok.Value)
	assert.True(t, tok.Fallback)
}

func TestBuildExplicitTag(t *testing.T) {
	tr := NewTree()
	tr.Add("brand.main", "16px", TypeSpacing)
	s := Build(single(tr), BuildOptions{})

	assert.Equal(t, TypeSpacing, lookup(t, s, "brand.main").Type)
}

func TestBuildOrderAcrossLayers(t *testing.T) {
	project := tree("b", "1", "a", "2")
	defaults := tree("a", "3", "c", "4")

	s := Build([]Layer{{Name: "project", Tree: project}, {Name: "default", Tree: defaults}}, BuildOptions{})

	var paths []string
	for _, tok := range s.Tokens() {
		paths = append(paths, tok.Path)
	}
	assert.Equal(t, []string{"b", "a", "c"}, paths)
	assert.Equal(t, "2", lookup(t, s, "a").Value)
}

func TestBuildNames(t *testing.T) {
	tr := NewTree()
	tr.Add("usa.Color.Primary", "#005ea2", TypeUnknown)
	tr.Add("Font Weight/SemiBold", "600", TypeUnknown)
	tr.Add("color.primary-dark", "#1a4480", TypeUnknown)
	tr.Add("color.primary.dark", "#162e51", TypeUnknown)

	s := Build(single(tr), BuildOptions{})

	var names []string
	for _, tok := range s.Tokens() {
		names = append(names, tok.Name)
	}
	assert.Equal(t, []string{
		"color-primary",
		"font-weight-semi-bold",
		"color-primary-dark",
		"color-primary-dark-2",
	}, names)
}

func TestBuildCustomNamespaces(t *testing.T) {
	tr := NewTree("ds")
	tr.Add("ds.color.primary", "#005ea2", TypeUnknown)
	tr.Add("ds.color.link", "{ds.color.primary}", TypeUnknown)

	s := Build(single(tr), BuildOptions{Namespaces: []string{"ds"}})

	tok := lookup(t, s, "color.link")
	assert.Equal(t, "color-link", tok.Name)
	assert.Equal(t, "#005ea2", tok.Value)
}

func TestBuildStats(t *testing.T) {
	tr := tree(
		"color.primary", "#005ea2",
		"color.link", "{color.primary}",
		"color.broken", "{color.missing}",
		"x", "{x}",
	)
	tr.AddMalformed("spacing.bad", TypeUnknown)

	stats := Build(single(tr), BuildOptions{}).Stats()
	assert.Equal(t, Stats{
		Total:      5,
		Resolved:   2,
		Fallbacks:  3,
		Cycles:     1,
		Unresolved: 1,
		Malformed:  1,
	}, stats)
}
