package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/rashmirathi1729/liswat/internal/value"
)

// classifyNumeric takes the raw run of characters the lexer scanned for a
// numeric literal and classifies it into the first matching alternative in
// priority order: rational, then complex, then plain integer (§4.1 #1-#3).
func classifyNumeric(text string) (value.Value, *value.SchemeError) {
	if idx := strings.IndexByte(text, '/'); idx > 0 {
		return parseRational(text, idx)
	}
	if looksComplex(text) {
		return parseComplex(text)
	}
	return parseInteger(text, 10)
}

// looksComplex reports whether text ends in 'i'/'I' preceded by a sign,
// matching "digits_or_dot (+|-) digits_or_dot 'i'".
func looksComplex(text string) bool {
	if len(text) < 2 {
		return false
	}
	last := text[len(text)-1]
	if last != 'i' && last != 'I' {
		return false
	}
	body := text[:len(text)-1]
	// a sign must appear somewhere after the first character, attached to
	// the imaginary part.
	for i := 1; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			return true
		}
	}
	// bare "+i" / "-i" with no real part.
	return len(body) > 0 && (body[0] == '+' || body[0] == '-')
}

func parseRational(text string, slash int) (value.Value, *value.SchemeError) {
	numText, denomText := text[:slash], text[slash+1:]
	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return nil, value.NewParserError("invalid rational numerator: " + text)
	}
	denom, ok := new(big.Int).SetString(denomText, 10)
	if !ok {
		return nil, value.NewParserError("invalid rational denominator: " + text)
	}
	if denom.Sign() == 0 {
		return nil, value.NewParserError("rational denominator is zero: " + text)
	}
	return value.Rational{Num: num, Denom: denom}, nil
}

func parseComplex(text string) (value.Value, *value.SchemeError) {
	body := text[:len(text)-1] // strip trailing i/I
	// find the sign that separates the real and imaginary parts: the last
	// +/- that isn't at index 0, else the leading sign itself.
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if body[i] == '+' || body[i] == '-' {
			split = i
			break
		}
	}
	var realText, imagText string
	if split > 0 {
		realText, imagText = body[:split], body[split:]
	} else {
		realText, imagText = "", body
	}
	var realPart float64
	if realText != "" {
		v, err := strconv.ParseFloat(realText, 64)
		if err != nil {
			return nil, value.NewParserError("invalid complex real part: " + text)
		}
		realPart = v
	}
	var imagPart float64
	switch imagText {
	case "+":
		imagPart = 1
	case "-":
		imagPart = -1
	default:
		v, err := strconv.ParseFloat(imagText, 64)
		if err != nil {
			return nil, value.NewParserError("invalid complex imaginary part: " + text)
		}
		imagPart = v
	}
	return value.Complex{Re: realPart, Im: imagPart}, nil
}

func parseInteger(text string, base int) (value.Value, *value.SchemeError) {
	n, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, value.NewParserError("invalid integer literal: " + text)
	}
	return value.Number{V: n}, nil
}

func parseDecimal(text string) (value.Value, *value.SchemeError) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, value.NewParserError("invalid decimal literal: " + text)
	}
	return value.Float(v), nil
}
