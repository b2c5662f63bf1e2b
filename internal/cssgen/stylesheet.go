package cssgen

import (
	"bytes"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Position is a 1-based line and column in a source file
type Position struct {
	Line   int
	Column int
}

// VarRef is a var(--name) reference
type VarRef struct {
	Name string // "--color-primary"
	Pos  Position
}

// Declaration is a "property: value" pair inside a rule block
type Declaration struct {
	Property string // lowercased, "background-color" or "--color-primary"
	Value    string // whitespace collapsed, "var(--color-primary)"
	Pos      Position
	ValuePos Position
	Refs     []VarRef
}

// IsCustom reports whether the declaration defines a custom property
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Property, "--")
}

// Stylesheet holds the declarations of one CSS file in source order
type Stylesheet struct {
	Declarations []Declaration
	custom       map[string]int // custom property name -> last declaration index
}

// CustomProperty returns the last declaration of a custom property
func (s *Stylesheet) CustomProperty(name string) (Declaration, bool) {
	i, ok := s.custom[name]
	if !ok {
		return Declaration{}, false
	}
	return s.Declarations[i], true
}

// CustomProperties returns custom property declarations in source order,
// first declaration of each name only.
func (s *Stylesheet) CustomProperties() []Declaration {
	seen := make(map[string]bool)
	var out []Declaration
	for _, d := range s.Declarations {
		if d.IsCustom() && !seen[d.Property] {
			seen[d.Property] = true
			out = append(out, d)
		}
	}
	return out
}

// References returns every var() reference in source order
func (s *Stylesheet) References() []VarRef {
	var refs []VarRef
	for _, d := range s.Declarations {
		refs = append(refs, d.Refs...)
	}
	return refs
}

// stylesheetParser tracks lexer position while walking tokens
type stylesheetParser struct {
	lexer      *css.Lexer
	line       int
	col        int
	depth      int
	stylesheet *Stylesheet
}

// ParseStylesheet extracts declarations and var() references from CSS content.
// Declarations are only read inside blocks; selectors and at-rule preludes are
// skipped. Malformed CSS never fails, unreadable parts are dropped.
func ParseStylesheet(content string) *Stylesheet {
	p := &stylesheetParser{
		lexer:      css.NewLexer(parse.NewInputString(content)),
		line:       1,
		col:        1,
		stylesheet: &Stylesheet{custom: make(map[string]int)},
	}
	p.run()
	return p.stylesheet
}

// next returns the next token and where it starts
func (p *stylesheetParser) next() (css.TokenType, []byte, Position) {
	tt, text := p.lexer.Next()
	pos := Position{Line: p.line, Column: p.col}
	p.advance(text)
	// the lexer reuses its buffer
	return tt, append([]byte(nil), text...), pos
}

func (p *stylesheetParser) advance(text []byte) {
	for _, r := range string(text) {
		if r == '\n' {
			p.line++
			p.col = 1
			continue
		}
		p.col++
	}
}

// nextSignificant skips whitespace and comments
func (p *stylesheetParser) nextSignificant() (css.TokenType, []byte, Position) {
	for {
		tt, text, pos := p.next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, text, pos
		}
	}
}

func (p *stylesheetParser) run() {
	for {
		tt, text, pos := p.next()
		switch tt {
		case css.ErrorToken:
			// ErrorToken at EOF is normal
			return
		case css.LeftBraceToken:
			p.depth++
		case css.RightBraceToken:
			if p.depth > 0 {
				p.depth--
			}
		case css.IdentToken, css.CustomPropertyNameToken:
			if p.depth > 0 {
				p.declaration(text, pos)
			}
		}
	}
}

// declaration reads "name: value" after name has been consumed. A brace in the
// value means name began a nested selector ("a:hover {"), not a declaration.
func (p *stylesheetParser) declaration(name []byte, pos Position) {
	tt, _, _ := p.nextSignificant()
	if tt != css.ColonToken {
		p.unread(tt)
		return
	}

	// custom property names are case-sensitive
	property := string(name)
	if !strings.HasPrefix(property, "--") {
		property = strings.ToLower(property)
	}
	decl := Declaration{
		Property: property,
		Pos:      pos,
	}

	var value strings.Builder
	pendingSpace := false
	started := false
	parens := 0
	inVar := false

	for {
		tt, text, tpos := p.next()
		switch tt {
		case css.ErrorToken:
			p.finish(decl, value.String())
			return
		case css.SemicolonToken:
			if parens == 0 {
				p.finish(decl, value.String())
				return
			}
		case css.RightBraceToken:
			p.finish(decl, value.String())
			if p.depth > 0 {
				p.depth--
			}
			return
		case css.LeftBraceToken:
			p.depth++
			return
		case css.WhitespaceToken, css.CommentToken:
			pendingSpace = started
			continue
		case css.FunctionToken:
			parens++
			inVar = bytes.EqualFold(text, []byte("var("))
		case css.LeftParenthesisToken:
			parens++
		case css.RightParenthesisToken:
			if parens > 0 {
				parens--
			}
		case css.IdentToken, css.CustomPropertyNameToken:
			if inVar && bytes.HasPrefix(text, []byte("--")) {
				decl.Refs = append(decl.Refs, VarRef{Name: string(text), Pos: tpos})
			}
			inVar = false
		}

		if !started {
			decl.ValuePos = tpos
			started = true
		}
		if pendingSpace {
			value.WriteByte(' ')
			pendingSpace = false
		}
		value.Write(text)
	}
}

// unread handles the token following a property name that turned out not to
// be a declaration. Only block structure matters at that point.
func (p *stylesheetParser) unread(tt css.TokenType) {
	switch tt {
	case css.LeftBraceToken:
		p.depth++
	case css.RightBraceToken:
		if p.depth > 0 {
			p.depth--
		}
	}
}

func (p *stylesheetParser) finish(decl Declaration, value string) {
	decl.Value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
	if decl.Property == "" {
		return
	}

	s := p.stylesheet
	s.Declarations = append(s.Declarations, decl)
	if decl.IsCustom() {
		s.custom[decl.Property] = len(s.Declarations) - 1
	}
}
