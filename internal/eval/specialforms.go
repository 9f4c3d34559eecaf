package eval

import "github.com/rashmirathi1729/liswat/internal/value"

type specialFormFn func(en value.Environment, list value.List) (value.Value, *value.SchemeError)

var specialForms = map[value.Atom]specialFormFn{
	"quote":  evalQuote,
	"if":     evalIf,
	"set!":   evalSet,
	"define": evalDefine,
	"lambda": evalLambda,
	"load":   evalLoad,
	"cond":   evalCond,
	"case":   evalCase,
}

func evalQuote(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) != 2 {
		return nil, value.NewBadSpecialFormError("quote requires exactly one datum", list)
	}
	return list[1], nil
}

func evalIf(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) != 4 {
		return nil, value.NewBadSpecialFormError("if requires a predicate, a then, and an else", list)
	}
	pred, err := Eval(en, list[1])
	if err != nil {
		return nil, err
	}
	if value.Truthy(pred) {
		return Eval(en, list[2])
	}
	return Eval(en, list[3])
}

func evalSet(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) != 3 {
		return nil, value.NewBadSpecialFormError("set! requires a variable and a value", list)
	}
	name, ok := list[1].(value.Atom)
	if !ok {
		return nil, value.NewBadSpecialFormError("set! can only assign a symbol", list[1])
	}
	val, err := Eval(en, list[2])
	if err != nil {
		return nil, err
	}
	if serr := en.SetVar(string(name), val); serr != nil {
		if se, ok := serr.(*value.SchemeError); ok {
			return nil, se
		}
		return nil, value.NewDefaultError(serr.Error(), serr)
	}
	return value.Bool(true), nil
}

func evalDefine(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) < 3 {
		return nil, value.NewBadSpecialFormError("define requires a name and a value", list)
	}
	switch target := list[1].(type) {
	case value.Atom:
		if len(list) != 3 {
			return nil, value.NewBadSpecialFormError("define of a value takes exactly one form", list)
		}
		val, err := Eval(en, list[2])
		if err != nil {
			return nil, err
		}
		en.Define(string(target), val)
		return value.Bool(true), nil
	case value.List:
		if len(target) == 0 {
			return nil, value.NewBadSpecialFormError("define requires a procedure name", target)
		}
		name, ok := target[0].(value.Atom)
		if !ok {
			return nil, value.NewBadSpecialFormError("define: procedure name must be a symbol", target[0])
		}
		params, perr := atomsOf(target[1:])
		if perr != nil {
			return nil, perr
		}
		en.Define(string(name), &value.Func{Params: params, Body: list[2:], Env: en})
		return value.Bool(true), nil
	case value.DottedList:
		if len(target.Head) == 0 {
			return nil, value.NewBadSpecialFormError("define requires a procedure name", target)
		}
		name, ok := target.Head[0].(value.Atom)
		if !ok {
			return nil, value.NewBadSpecialFormError("define: procedure name must be a symbol", target.Head[0])
		}
		params, perr := atomsOf(target.Head[1:])
		if perr != nil {
			return nil, perr
		}
		rest, ok := target.Tail.(value.Atom)
		if !ok {
			return nil, value.NewBadSpecialFormError("define: rest parameter must be a symbol", target.Tail)
		}
		en.Define(string(name), &value.Func{Params: params, Rest: &rest, Body: list[2:], Env: en})
		return value.Bool(true), nil
	default:
		return nil, value.NewBadSpecialFormError("define requires a symbol or a procedure form", list[1])
	}
}

func evalLambda(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) < 3 {
		return nil, value.NewBadSpecialFormError("lambda requires parameters and a body", list)
	}
	body := list[2:]
	switch pf := list[1].(type) {
	case value.List:
		params, perr := atomsOf(pf)
		if perr != nil {
			return nil, perr
		}
		return &value.Func{Params: params, Body: body, Env: en}, nil
	case value.DottedList:
		params, perr := atomsOf(pf.Head)
		if perr != nil {
			return nil, perr
		}
		rest, ok := pf.Tail.(value.Atom)
		if !ok {
			return nil, value.NewBadSpecialFormError("lambda: rest parameter must be a symbol", pf.Tail)
		}
		return &value.Func{Params: params, Rest: &rest, Body: body, Env: en}, nil
	case value.Atom:
		rest := pf
		return &value.Func{Rest: &rest, Body: body, Env: en}, nil
	default:
		return nil, value.NewBadSpecialFormError("lambda requires a parameter list or symbol", list[1])
	}
}

func evalLoad(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) != 2 {
		return nil, value.NewBadSpecialFormError("load requires exactly one path", list)
	}
	pathVal, err := Eval(en, list[1])
	if err != nil {
		return nil, err
	}
	path, perr := value.ToStringVal(pathVal)
	if perr != nil {
		return nil, perr
	}
	return Load(en, path)
}

func evalCond(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	for _, c := range list[1:] {
		clause, ok := c.(value.List)
		if !ok || len(clause) < 2 {
			return nil, value.NewBadSpecialFormError("cond clause must be (predicate expr...)", c)
		}
		predVal, err := Eval(en, clause[0])
		if err != nil {
			return nil, err
		}
		if value.Truthy(predVal) {
			return evalSeq(en, clause[1:])
		}
	}
	return nil, value.NewBadSpecialFormError("cond: no clause matched and no else present", list)
}

func evalCase(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) < 2 {
		return nil, value.NewBadSpecialFormError("case requires a key expression", list)
	}
	key, err := Eval(en, list[1])
	if err != nil {
		return nil, err
	}
	for _, c := range list[2:] {
		clause, ok := c.(value.List)
		if !ok || len(clause) < 2 {
			return nil, value.NewBadSpecialFormError("case clause must be (datums expr...)", c)
		}
		if a, ok := clause[0].(value.Atom); ok && a == elseAtom {
			return evalSeq(en, clause[1:])
		}
		datums, ok := clause[0].(value.List)
		if !ok {
			return nil, value.NewBadSpecialFormError("case clause datum list must be a list", clause[0])
		}
		for _, d := range datums {
			if value.Eqv(d, key) {
				return evalSeq(en, clause[1:])
			}
		}
	}
	return nil, value.NewBadSpecialFormError("case: no clause matched and no else present", list)
}

func evalSeq(en value.Environment, exprs []value.Value) (value.Value, *value.SchemeError) {
	var result value.Value = value.Bool(false)
	for _, e := range exprs {
		v, err := Eval(en, e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func atomsOf(vs []value.Value) ([]value.Atom, *value.SchemeError) {
	out := make([]value.Atom, 0, len(vs))
	for _, v := range vs {
		a, ok := v.(value.Atom)
		if !ok {
			return nil, value.NewBadSpecialFormError("parameter must be a symbol", v)
		}
		out = append(out, a)
	}
	return out, nil
}
