package gridconf

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// tokenType classifies a token
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenOpen
	tokenClose
	tokenAtom
	tokenString
)

// token is one lexical unit with the line it started on
type token struct {
	typ   tokenType
	value string
	line  int
}

// lexer tokenizes s-expressions. Comments run from ';' to the end of the
// line; '#' is an ordinary atom character so hex colors need no quoting.
type lexer struct {
	reader *bufio.Reader
	peeked *rune
	line   int
}

// newLexer creates a lexer reading from r
func newLexer(r io.Reader) *lexer {
	return &lexer{reader: bufio.NewReader(r), line: 1}
}

// next returns the next token, skipping whitespace and comments
func (l *lexer) next() (token, error) {
	for {
		ch, err := l.peek()
		if err == io.EOF {
			return token{typ: tokenEOF, line: l.line}, nil
		}
		if err != nil {
			return token{}, err
		}
		if unicode.IsSpace(ch) {
			l.read()
			continue
		}
		if ch == ';' {
			for {
				c, err := l.read()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}
		break
	}

	ch, _ := l.peek()
	line := l.line
	switch ch {
	case '(':
		l.read()
		return token{typ: tokenOpen, value: "(", line: line}, nil
	case ')':
		l.read()
		return token{typ: tokenClose, value: ")", line: line}, nil
	case '"':
		return l.readString()
	}
	return l.readAtom()
}

// peek looks at the next rune without consuming it
func (l *lexer) peek() (rune, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	l.peeked = &ch
	return ch, nil
}

// read consumes and returns the next rune, counting lines
func (l *lexer) read() (rune, error) {
	var ch rune
	if l.peeked != nil {
		ch = *l.peeked
		l.peeked = nil
	} else {
		var err error
		ch, _, err = l.reader.ReadRune()
		if err != nil {
			return 0, err
		}
	}
	if ch == '\n' {
		l.line++
	}
	return ch, nil
}

// readString reads a quoted string
func (l *lexer) readString() (token, error) {
	line := l.line
	l.read() // opening quote

	var out []rune
	for {
		ch, err := l.read()
		if err == io.EOF {
			return token{}, fmt.Errorf("line %d: unterminated string", line)
		}
		if err != nil {
			return token{}, err
		}
		switch ch {
		case '"':
			return token{typ: tokenString, value: string(out), line: line}, nil
		case '\\':
			next, err := l.read()
			if err != nil {
				return token{}, fmt.Errorf("line %d: unterminated escape", line)
			}
			switch next {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			default:
				out = append(out, next)
			}
		default:
			out = append(out, ch)
		}
	}
}

// readAtom reads an unquoted atom (symbol, number, hex color)
func (l *lexer) readAtom() (token, error) {
	line := l.line
	var out []rune
	for {
		ch, err := l.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' || ch == ';' {
			break
		}
		l.read()
		out = append(out, ch)
	}
	return token{typ: tokenAtom, value: string(out), line: line}, nil
}
