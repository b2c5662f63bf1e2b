package tokencss

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/tokencss/internal/token"
)

// DecodeOptions configures DecodeTokens
type DecodeOptions struct {
	Layers     []string // top-level keys read as theme layers, highest precedence first
	Namespaces []string
}

// field is one key of a decoded mapping. Values are string, nil, []any or
// []field, so every input format walks the same way.
type field struct {
	key   string
	value any
}

// DecodeTokens parses a token document into layers. The format comes from
// the file extension: .json, .yaml, .yml or .toml.
//
// A mapping with a "value" (or "$value") key is a token; "type" / "$type"
// tags it. Other "$" keys are metadata. Top-level keys naming a configured
// layer become layers in configured order; everything else lands in the
// DefaultLayer, which comes last.
func DecodeTokens(filename string, data []byte, opts DecodeOptions) ([]token.Layer, error) {
	var root any
	var err error

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		root, err = decodeJSON(data)
	case ".yaml", ".yml":
		root, err = decodeYAML(data)
	case ".toml":
		root, err = decodeTOML(data)
	default:
		return nil, errors.Errorf("unsupported token file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Errorf("parse %s: %w", filename, err)
	}

	fields, ok := root.([]field)
	if root != nil && !ok {
		return nil, errors.Errorf("parse %s: token document must be a mapping", filename)
	}

	d := newDecoder(opts)
	for _, f := range fields {
		if strings.HasPrefix(f.key, "$") {
			continue
		}
		if layer, isLayer := d.layerName(f.key); isLayer {
			if children, ok := f.value.([]field); ok {
				d.walk(d.tree(layer), nil, children)
			}
			continue
		}
		d.walk(d.tree(DefaultLayer), nil, []field{f})
	}
	return d.result(), nil
}

type decoder struct {
	layers     []string
	namespaces []string
	trees      map[string]*token.Tree
}

func newDecoder(opts DecodeOptions) *decoder {
	return &decoder{
		layers:     opts.Layers,
		namespaces: opts.Namespaces,
		trees:      make(map[string]*token.Tree),
	}
}

// layerName matches a top-level key against configured layer names
func (d *decoder) layerName(key string) (string, bool) {
	for _, name := range d.layers {
		if strings.EqualFold(name, key) && !strings.EqualFold(name, DefaultLayer) {
			return name, true
		}
	}
	return "", false
}

func (d *decoder) tree(layer string) *token.Tree {
	t, ok := d.trees[layer]
	if !ok {
		t = token.NewTree(d.namespaces...)
		d.trees[layer] = t
	}
	return t
}

func (d *decoder) result() []token.Layer {
	var layers []token.Layer
	for _, name := range d.layers {
		if t, ok := d.trees[name]; ok && !strings.EqualFold(name, DefaultLayer) {
			layers = append(layers, token.Layer{Name: name, Tree: t})
		}
	}
	if t, ok := d.trees[DefaultLayer]; ok || len(layers) == 0 {
		if !ok {
			t = d.tree(DefaultLayer)
		}
		layers = append(layers, token.Layer{Name: DefaultLayer, Tree: t})
	}
	return layers
}

func (d *decoder) walk(tree *token.Tree, path []string, fields []field) {
	if raw, ok := lookup(fields, "value", "$value"); ok && len(path) > 0 {
		d.add(tree, path, raw, tagOf(fields))
		return
	}

	for _, f := range fields {
		if strings.HasPrefix(f.key, "$") {
			continue
		}
		// bare scalars outside a token mapping carry no token
		if children, ok := f.value.([]field); ok {
			d.walk(tree, append(path[:len(path):len(path)], f.key), children)
		}
	}
}

func (d *decoder) add(tree *token.Tree, path []string, raw any, tag token.Type) {
	name := strings.Join(path, ".")
	if literal, ok := literalOf(raw); ok {
		tree.Add(name, literal, tag)
		return
	}
	tree.AddMalformed(name, tag)
}

func lookup(fields []field, keys ...string) (any, bool) {
	for _, key := range keys {
		for _, f := range fields {
			if f.key == key {
				return f.value, true
			}
		}
	}
	return nil, false
}

func tagOf(fields []field) token.Type {
	raw, ok := lookup(fields, "type", "$type")
	if !ok {
		return token.TypeUnknown
	}
	s, ok := raw.(string)
	if !ok {
		return token.TypeUnknown
	}
	t, _ := token.ParseType(s)
	return t
}

// literalOf accepts a scalar or a list of scalars ("font stacks")
func literalOf(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case []any:
		if len(v) == 0 {
			return "", false
		}
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), true
	}
	return "", false
}

// decodeYAML walks the yaml.v3 node tree, keeping mapping order
func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return yamlValue(doc.Content[0]), nil
}

func yamlValue(n *yaml.Node) any {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		fields := make([]field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			fields = append(fields, field{key: n.Content[i].Value, value: yamlValue(n.Content[i+1])})
		}
		return fields
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, yamlValue(c))
		}
		return items
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil
		}
		return n.Value
	}
	return nil
}

// decodeJSON streams tokens so object keys keep document order. Only an
// empty document yields nil; a document cut short inside an object or
// array fails with io.ErrUnexpectedEOF.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	v, err := jsonValueFrom(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// nextToken reads a token that must exist
func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func jsonValue(dec *json.Decoder) (any, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return nil, err
	}
	return jsonValueFrom(dec, tok)
}

func jsonValueFrom(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			fields := []field{}
			for dec.More() {
				keyTok, err := nextToken(dec)
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, errors.Errorf("unexpected object key %v", keyTok)
				}
				value, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				fields = append(fields, field{key: key, value: value})
			}
			if _, err := nextToken(dec); err != nil {
				return nil, err
			}
			return fields, nil
		case '[':
			items := []any{}
			for dec.More() {
				item, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := nextToken(dec); err != nil {
				return nil, err
			}
			return items, nil
		}
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return nil, nil
}

// decodeTOML walks a TOML document. Values come from toml.Unmarshal; key
// order comes from a second pass over the parser's expressions, so tables
// keep the order in which their keys first appear.
func decodeTOML(data []byte) (any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return tomlValue(doc, nil, tomlKeyOrder(data)), nil
}

// tomlArrayItem stands in for the elements of an array in a key path
const tomlArrayItem = "[]"

// tomlKeyOrder maps every key path to the position it first appears at
func tomlKeyOrder(data []byte) map[string]int {
	order := make(map[string]int)

	var p unstable.Parser
	p.Reset(data)

	var table []string
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table:
			table = tomlKeyPath(nil, e.Key())
			recordTOMLPath(order, table)
		case unstable.ArrayTable:
			table = append(tomlKeyPath(nil, e.Key()), tomlArrayItem)
			recordTOMLPath(order, table)
		case unstable.KeyValue:
			recordTOMLKeyValue(order, table, e)
		}
	}
	return order
}

func tomlKeyPath(prefix []string, it unstable.Iterator) []string {
	path := append([]string(nil), prefix...)
	for it.Next() {
		path = append(path, string(it.Node().Data))
	}
	return path
}

func recordTOMLKeyValue(order map[string]int, prefix []string, kv *unstable.Node) {
	path := tomlKeyPath(prefix, kv.Key())
	recordTOMLPath(order, path)
	recordTOMLValue(order, path, kv.Value())
}

func recordTOMLValue(order map[string]int, path []string, v *unstable.Node) {
	switch v.Kind {
	case unstable.InlineTable:
		it := v.Children()
		for it.Next() {
			recordTOMLKeyValue(order, path, it.Node())
		}
	case unstable.Array:
		item := append(append([]string(nil), path...), tomlArrayItem)
		it := v.Children()
		for it.Next() {
			recordTOMLValue(order, item, it.Node())
		}
	}
}

func recordTOMLPath(order map[string]int, path []string) {
	for i := 1; i <= len(path); i++ {
		key := strings.Join(path[:i], "\x00")
		if _, ok := order[key]; !ok {
			order[key] = len(order)
		}
	}
}

// tomlValue converts decoded TOML into fields. Keys missing from order
// sort by name after the ordered ones.
func tomlValue(v any, path []string, order map[string]int) any {
	switch t := v.(type) {
	case map[string]any:
		rank := make(map[string]int, len(t))
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
			r, ok := order[strings.Join(append(path[:len(path):len(path)], k), "\x00")]
			if !ok {
				r = len(order)
			}
			rank[k] = r
		}
		sort.Slice(keys, func(i, j int) bool {
			if rank[keys[i]] != rank[keys[j]] {
				return rank[keys[i]] < rank[keys[j]]
			}
			return keys[i] < keys[j]
		})
		fields := make([]field, 0, len(keys))
		for _, k := range keys {
			child := append(path[:len(path):len(path)], k)
			fields = append(fields, field{key: k, value: tomlValue(t[k], child, order)})
		}
		return fields
	case []any:
		item := append(path[:len(path):len(path)], tomlArrayItem)
		items := make([]any, 0, len(t))
		for _, elem := range t {
			items = append(items, tomlValue(elem, item, order))
		}
		return items
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case nil:
		return nil
	default:
		return fmt.Sprint(t)
	}
}
