package prim

import "github.com/rashmirathi1729/liswat/internal/value"

var quoteAtom = value.Atom("quote")

// isQuotedSymbol reports whether v has the shape (quote X), as produced
// by the parser's reader macro for '.
func isQuotedSymbol(v value.Value) bool {
	l, ok := v.(value.List)
	return ok && len(l) == 2 && l[0] == quoteAtom
}

func typePredicate(name string, test func(value.Value) bool) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 1 {
			return nil, value.NewNumArgsError("1", args)
		}
		return value.Bool(test(args[0])), nil
	}
}

func registerPredicates(t map[string]func([]value.Value) (value.Value, *value.SchemeError)) {
	t["number?"] = typePredicate("number?", func(v value.Value) bool { return v.Tag() == value.TagNumber })
	t["list?"] = typePredicate("list?", func(v value.Value) bool { return v.Tag() == value.TagList })
	t["string?"] = typePredicate("string?", func(v value.Value) bool { return v.Tag() == value.TagString })
	t["boolean?"] = typePredicate("boolean?", func(v value.Value) bool { return v.Tag() == value.TagBool })
	t["symbol?"] = typePredicate("symbol?", func(v value.Value) bool {
		return v.Tag() == value.TagAtom || isQuotedSymbol(v)
	})

	t["symbol->string"] = func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 1 {
			return nil, value.NewNumArgsError("1", args)
		}
		if l, ok := args[0].(value.List); ok && len(l) == 2 && l[0] == quoteAtom {
			return l[1], nil
		}
		return args[0], nil
	}

	t["string->symbol"] = func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 1 {
			return nil, value.NewNumArgsError("1", args)
		}
		if s, ok := args[0].(value.Str); ok {
			return value.List{quoteAtom, s}, nil
		}
		return args[0], nil
	}
}
