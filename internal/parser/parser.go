// Package parser turns a stream of lexer tokens into Value trees, per the
// alternatives and priority order of §4.1: it is a recursive-descent reader
// layered over the teacher's channel-based lexer, structurally identical to
// liswat/parser.go's parserRead/parseNext.
package parser

import (
	"strings"

	"github.com/rashmirathi1729/liswat/internal/lexer"
	"github.com/rashmirathi1729/liswat/internal/value"
)

var (
	quoteSym            = value.Atom("quote")
	quasiquoteSym       = value.Atom("quasiquote")
	unquoteSym          = value.Atom("unquote")
	unquoteSplicingSym  = value.Atom("unquote-splicing")
)

// ReadOne parses a single expression from text. Trailing input beyond the
// first expression is not consumed or validated.
func ReadOne(text string) (value.Value, *value.SchemeError) {
	c := lexer.Lex("read", text)
	t, ok := <-c
	if !ok || t.Type == lexer.TokenEOF {
		return nil, value.NewParserError("unexpected end of input")
	}
	return readExpr(t, c)
}

// ReadAll parses every whitespace-separated expression in text, in order.
func ReadAll(text string) ([]value.Value, *value.SchemeError) {
	c := lexer.Lex("readAll", text)
	var out []value.Value
	for t := range c {
		if t.Type == lexer.TokenEOF {
			break
		}
		v, err := readExpr(t, c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// readNext reads the next complete expression from the channel, pulling a
// fresh leading token itself.
func readNext(c chan lexer.Token) (value.Value, *value.SchemeError) {
	t, ok := <-c
	if !ok {
		return nil, value.NewParserError("unexpected end of input")
	}
	if t.Type == lexer.TokenEOF {
		return nil, value.NewParserError("unexpected EOF")
	}
	return readExpr(t, c)
}

// readExpr dispatches on the given token's type, consuming more tokens
// from c as needed to complete list/vector/quote forms.
func readExpr(t lexer.Token, c chan lexer.Token) (value.Value, *value.SchemeError) {
	switch t.Type {
	case lexer.TokenError:
		return nil, value.NewParserError(t.Val)
	case lexer.TokenEOF:
		return nil, value.NewParserError("unexpected EOF")
	case lexer.TokenOpenParen:
		return readList(c)
	case lexer.TokenCloseParen:
		return nil, value.NewParserError("unexpected )")
	case lexer.TokenVectorOpen:
		return readVector(c)
	case lexer.TokenString:
		return readString(t)
	case lexer.TokenNumeric:
		return classifyNumeric(t.Val)
	case lexer.TokenHexInt:
		return parseInteger(stripHashPrefix(t.Val), 16)
	case lexer.TokenOctInt:
		return parseInteger(stripHashPrefix(t.Val), 8)
	case lexer.TokenDecimal:
		return parseDecimal(stripHashPrefix(t.Val))
	case lexer.TokenBoolean:
		return value.Bool(t.Val == "#t" || t.Val == "#T"), nil
	case lexer.TokenCharacter:
		return readCharacter(t)
	case lexer.TokenQuote:
		return readQuote(t, c)
	case lexer.TokenIdentifier:
		return value.Atom(t.Val), nil
	}
	return nil, value.NewParserError("unrecognized token: " + t.String())
}

func stripHashPrefix(raw string) string {
	// raw is "#x1F" / "#o17" / "#d3.5"; strip the two-byte prefix.
	if len(raw) >= 2 && raw[0] == '#' {
		return raw[2:]
	}
	return raw
}

func readList(c chan lexer.Token) (value.Value, *value.SchemeError) {
	var elems []value.Value
	for t := range c {
		if t.Type == lexer.TokenCloseParen {
			if len(elems) == 0 {
				return value.List(nil), nil
			}
			return value.List(elems), nil
		}
		if t.Type == lexer.TokenIdentifier && t.Val == "." {
			tail, err := readNext(c)
			if err != nil {
				return nil, err
			}
			closeTok, ok := <-c
			if !ok || closeTok.Type != lexer.TokenCloseParen {
				return nil, value.NewParserError("malformed dotted list")
			}
			if len(elems) == 0 {
				return nil, value.NewParserError("dotted list requires a non-empty head")
			}
			return value.DottedList{Head: elems, Tail: tail}, nil
		}
		v, err := readExpr(t, c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return nil, value.NewParserError("unexpected EOF after open paren")
}

func readVector(c chan lexer.Token) (value.Value, *value.SchemeError) {
	var elems []value.Value
	for t := range c {
		if t.Type == lexer.TokenCloseParen {
			return value.Vector(elems), nil
		}
		v, err := readExpr(t, c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return nil, value.NewParserError("unexpected EOF in vector")
}

func readString(t lexer.Token) (value.Value, *value.SchemeError) {
	raw := t.Contents()
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(raw) {
			return nil, value.NewParserError("dangling escape in string")
		}
		switch raw[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			return nil, value.NewParserError("unrecognized escape: \\" + string(raw[i]))
		}
	}
	return value.Str(b.String()), nil
}

func readCharacter(t lexer.Token) (value.Value, *value.SchemeError) {
	if len(t.Val) < 3 {
		return nil, value.NewParserError("malformed character: " + t.Val)
	}
	return value.Char(rune(t.Val[2])), nil
}

func readQuote(t lexer.Token, c chan lexer.Token) (value.Value, *value.SchemeError) {
	var sym value.Atom
	switch t.Val {
	case "'":
		sym = quoteSym
	case "`":
		sym = quasiquoteSym
	case ",":
		sym = unquoteSym
	case ",@":
		sym = unquoteSplicingSym
	default:
		return nil, value.NewParserError("unrecognized quote form: " + t.Val)
	}
	body, err := readNext(c)
	if err != nil {
		return nil, err
	}
	return value.List{sym, body}, nil
}
