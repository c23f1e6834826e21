// Package pattern tokenizes route patterns such as
// /users/{userId:number}/categories/:category into literal and
// parameter tokens.
package pattern

import (
	"iter"
	"strings"
)

// DefaultType is the type of a parameter that does not name one.
const DefaultType = "string"

type Kind uint8

const (
	KindLiteral Kind = iota
	KindParam
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindParam:
		return "param"
	}
	return "unknown"
}

// Notation records how a parameter was written in the pattern.
type Notation uint8

const (
	NotationNone Notation = iota
	// {name} or {name:type}
	NotationBrace
	// :name
	NotationColon
)

// Token is one compiled unit of a pattern.
type Token struct {
	Kind Kind
	// Text is the literal text, empty for params.
	Text string
	// Name and Type are only set for params.
	Name     string
	Type     string
	Notation Notation
	// Byte offsets of the token in the pattern, End is exclusive.
	Start int
	End   int
}

func (t Token) IsParam() bool {
	return t.Kind == KindParam
}

// String renders the token in brace notation.
func (t Token) String() string {
	if t.Kind == KindLiteral {
		return t.Text
	}
	return "{" + t.Name + ":" + t.Type + "}"
}

type state uint8

const (
	stateIdle state = iota
	stateLiteral
	stateBraceName
	stateBraceType
	stateColon
)

type scanner struct {
	tokens  []Token
	current Token
	name    strings.Builder
	typ     strings.Builder
	text    strings.Builder
	state   state
}

func (s *scanner) flush(end int) {
	switch s.state {
	case stateIdle:
		return
	case stateLiteral:
		s.current.Text = s.text.String()
	case stateBraceName, stateBraceType, stateColon:
		s.current.Name = s.name.String()
		s.current.Type = s.typ.String()
		if s.current.Type == "" {
			s.current.Type = DefaultType
		}
	}

	s.current.End = end
	s.tokens = append(s.tokens, s.current)
	s.name.Reset()
	s.typ.Reset()
	s.text.Reset()
	s.state = stateIdle
}

func (s *scanner) openLiteral(at int, c byte) {
	s.current = Token{Kind: KindLiteral, Start: at}
	s.text.WriteByte(c)
	s.state = stateLiteral
}

func (s *scanner) openParam(at int, c byte) {
	s.current = Token{Kind: KindParam, Start: at}
	if c == ':' {
		s.current.Notation = NotationColon
		s.state = stateColon
		return
	}
	s.current.Notation = NotationBrace
	s.state = stateBraceName
}

func isParamStart(c byte) bool {
	return c == '{' || c == ':'
}

// Prepare splits pattern into tokens with a single forward scan.
//
// Outside of a parameter characters collect into a literal token. A '{'
// opens a brace parameter whose name runs until an optional ':' followed
// by the type, closed by '}'. A ':' opens a colon parameter of type
// [DefaultType] that runs until the next '/', which starts a new literal.
// Malformed patterns produce a best effort token list, for example an
// unclosed brace parameter runs to the end of the pattern.
func Prepare(pattern string) []Token {
	s := scanner{}

	for i := range len(pattern) {
		c := pattern[i]

		switch s.state {
		case stateIdle, stateLiteral:
			if isParamStart(c) {
				s.flush(i)
				s.openParam(i, c)
			} else if s.state == stateIdle {
				s.openLiteral(i, c)
			} else {
				s.text.WriteByte(c)
			}
		case stateBraceName:
			switch c {
			case ':':
				s.state = stateBraceType
			case '}':
				s.flush(i + 1)
			default:
				s.name.WriteByte(c)
			}
		case stateBraceType:
			switch c {
			case ':':
			case '}':
				s.flush(i + 1)
			default:
				s.typ.WriteByte(c)
			}
		case stateColon:
			if c == '/' {
				s.flush(i)
				s.openLiteral(i, c)
			} else {
				s.name.WriteByte(c)
			}
		}
	}

	s.flush(len(pattern))
	return s.tokens
}

// Params returns an iterator over the parameter tokens.
func Params(tokens []Token) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, t := range tokens {
			if t.IsParam() && !yield(t) {
				return
			}
		}
	}
}

// Template renders the tokens with every parameter written as {name},
// the form used by OpenAPI and net/http path templates.
func Template(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.IsParam() {
			sb.WriteString("{" + t.Name + "}")
		} else {
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}
