package prim

import (
	"strings"

	"github.com/rashmirathi1729/liswat/internal/value"
)

func primMakeString(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 && len(args) != 2 {
		return nil, value.NewNumArgsError("1 or 2", args)
	}
	n, err := value.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	fill := ' '
	if len(args) == 2 {
		c, err := value.ToCharVal(args[1])
		if err != nil {
			return nil, err
		}
		fill = c
	}
	return value.Str(strings.Repeat(string(fill), int(n.Int64()))), nil
}

func primStringLength(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	s, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewNumber(int64(len([]rune(s)))), nil
}

func primStringRef(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 2 {
		return nil, value.NewNumArgsError("2", args)
	}
	s, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	n, err := value.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	idx := int(n.Int64())
	if idx < 0 || idx >= len(runes) {
		return nil, value.NewDefaultError("string-ref index out of range", nil)
	}
	return value.Char(runes[idx]), nil
}

func primSubstring(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 3 {
		return nil, value.NewNumArgsError("3", args)
	}
	s, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	n, err := value.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	m, err := value.ToNumber(args[2])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	start, end := int(n.Int64()), int(m.Int64())
	if start < 0 || end > len(runes) || start > end {
		return nil, value.NewDefaultError("substring index out of range", nil)
	}
	return value.Str(string(runes[start:end])), nil
}

func primStringAppend(args []value.Value) (value.Value, *value.SchemeError) {
	var b strings.Builder
	for _, a := range args {
		s, err := value.ToStringVal(a)
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return value.Str(b.String()), nil
}

func primString(args []value.Value) (value.Value, *value.SchemeError) {
	var b strings.Builder
	for _, a := range args {
		c, err := value.ToCharVal(a)
		if err != nil {
			return nil, err
		}
		b.WriteRune(c)
	}
	return value.Str(b.String()), nil
}

func primStringToList(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	s, err := value.ToStringVal(args[0])
	if err != nil {
		return nil, err
	}
	out := make(value.List, 0, len(s))
	for _, r := range s {
		out = append(out, value.Char(r))
	}
	return out, nil
}

func primListToString(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	l, ok := args[0].(value.List)
	if !ok {
		return nil, value.NewTypeMismatchError("list", args[0])
	}
	var b strings.Builder
	for _, v := range l {
		c, err := value.ToCharVal(v)
		if err != nil {
			return nil, err
		}
		b.WriteRune(c)
	}
	return value.Str(b.String()), nil
}

func stringCompareOp(cmp func(c int) bool) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 2 {
			return nil, value.NewNumArgsError("2", args)
		}
		a, err := value.ToStringVal(args[0])
		if err != nil {
			return nil, err
		}
		b, err := value.ToStringVal(args[1])
		if err != nil {
			return nil, err
		}
		return value.Bool(cmp(strings.Compare(a, b))), nil
	}
}

func registerStrings(t map[string]func([]value.Value) (value.Value, *value.SchemeError)) {
	t["make-string"] = primMakeString
	t["string-length"] = primStringLength
	t["string-ref"] = primStringRef
	t["substring"] = primSubstring
	t["string-append"] = primStringAppend
	t["string"] = primString
	t["string->list"] = primStringToList
	t["list->string"] = primListToString
	t["string=?"] = stringCompareOp(func(c int) bool { return c == 0 })
	t["string<?"] = stringCompareOp(func(c int) bool { return c < 0 })
	t["string>?"] = stringCompareOp(func(c int) bool { return c > 0 })
	t["string<=?"] = stringCompareOp(func(c int) bool { return c <= 0 })
	t["string>=?"] = stringCompareOp(func(c int) bool { return c >= 0 })
}
