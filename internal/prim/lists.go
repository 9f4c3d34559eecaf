package prim

import "github.com/rashmirathi1729/liswat/internal/value"

func primCar(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	switch v := args[0].(type) {
	case value.List:
		if len(v) == 0 {
			return nil, value.NewTypeMismatchError("pair", args[0])
		}
		return v[0], nil
	case value.DottedList:
		return v.Head[0], nil
	}
	return nil, value.NewTypeMismatchError("pair", args[0])
}

func primCdr(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	switch v := args[0].(type) {
	case value.List:
		if len(v) == 0 {
			return nil, value.NewTypeMismatchError("pair", args[0])
		}
		return value.List(v[1:]), nil
	case value.DottedList:
		if len(v.Head) == 1 {
			return v.Tail, nil
		}
		return value.DottedList{Head: v.Head[1:], Tail: v.Tail}, nil
	}
	return nil, value.NewTypeMismatchError("pair", args[0])
}

func primCons(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 2 {
		return nil, value.NewNumArgsError("2", args)
	}
	head, rest := args[0], args[1]
	switch r := rest.(type) {
	case value.List:
		elems := make([]value.Value, 0, len(r)+1)
		elems = append(elems, head)
		elems = append(elems, r...)
		return value.List(elems), nil
	case value.DottedList:
		elems := make([]value.Value, 0, len(r.Head)+1)
		elems = append(elems, head)
		elems = append(elems, r.Head...)
		return value.DottedList{Head: elems, Tail: r.Tail}, nil
	default:
		return value.DottedList{Head: []value.Value{head}, Tail: rest}, nil
	}
}

func equalityOp(cmp func(a, b value.Value) bool) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 2 {
			return nil, value.NewNumArgsError("2", args)
		}
		return value.Bool(cmp(args[0], args[1])), nil
	}
}

func primAssert(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 2 {
		return nil, value.NewNumArgsError("2", args)
	}
	if value.Eqv(args[0], args[1]) {
		return value.Bool(true), nil
	}
	return nil, value.NewAssertError()
}

func registerLists(t map[string]func([]value.Value) (value.Value, *value.SchemeError)) {
	t["car"] = primCar
	t["cdr"] = primCdr
	t["cons"] = primCons
	t["eq?"] = equalityOp(value.Eq)
	t["eqv?"] = equalityOp(value.Eqv)
	t["equal?"] = equalityOp(value.Equal)
	t["assert"] = primAssert
}
