package gridconf

import (
	"fmt"
	"io"
	"strings"
)

// Node is an atom or a list in a parsed configuration file.
type Node interface {
	Line() int
	String() string
}

// Atom is a bare symbol, number or quoted string.
type Atom struct {
	Value  string
	Quoted bool
	line   int
}

// Line returns the line the atom starts on
func (a *Atom) Line() int { return a.line }

// String renders the atom, quoting it if it was quoted
func (a *Atom) String() string {
	if a.Quoted {
		return fmt.Sprintf("%q", a.Value)
	}
	return a.Value
}

// List is a parenthesised sequence of nodes.
type List struct {
	Items []Node
	line  int
}

// Line returns the line of the opening parenthesis
func (l *List) Line() int { return l.line }

// String renders the list as an s-expression
func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Head returns the leading symbol of the list, or "" if it has none.
func (l *List) Head() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(*Atom); ok && !a.Quoted {
		return a.Value
	}
	return ""
}

// Args returns the items after the head.
func (l *List) Args() []Node {
	if len(l.Items) == 0 {
		return nil
	}
	return l.Items[1:]
}

// parser builds nodes from a one-token lookahead
type parser struct {
	lex *lexer
	cur token
}

// Parse reads every top-level expression from r.
func Parse(r io.Reader) ([]Node, error) {
	p := &parser{lex: newLexer(r)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var nodes []Node
	for p.cur.typ != tokenEOF {
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// advance moves to the next token
func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseExpr parses an atom or a list
func (p *parser) parseExpr() (Node, error) {
	switch p.cur.typ {
	case tokenOpen:
		return p.parseList()
	case tokenAtom:
		return &Atom{Value: p.cur.value, line: p.cur.line}, nil
	case tokenString:
		return &Atom{Value: p.cur.value, Quoted: true, line: p.cur.line}, nil
	case tokenClose:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.cur.line)
	}
	return nil, fmt.Errorf("line %d: unexpected end of input", p.cur.line)
}

// parseList parses a parenthesised list
func (p *parser) parseList() (Node, error) {
	list := &List{line: p.cur.line}
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch p.cur.typ {
		case tokenClose:
			return list, nil
		case tokenEOF:
			return nil, fmt.Errorf("line %d: unclosed list", list.line)
		}
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, n)
	}
}
