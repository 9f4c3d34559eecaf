// Package eval is the tree-walking interpreter: given an environment and
// a Value, it returns a Value or a *value.SchemeError. Special forms are
// dispatched structurally on the head atom of a List; everything else is
// a function application, exactly as §4.2 describes.
package eval

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rashmirathi1729/liswat/internal/env"
	"github.com/rashmirathi1729/liswat/internal/parser"
	"github.com/rashmirathi1729/liswat/internal/prim"
	"github.com/rashmirathi1729/liswat/internal/value"
)

// Interpreter owns the root environment and evaluates against it.
type Interpreter struct {
	Root value.Environment
}

// NewInterpreter creates an interpreter whose root frame is seeded with
// the primitive and IO-primitive tables.
func NewInterpreter() *Interpreter {
	root := env.New(nil)
	prim.Install(root, Apply)
	return &Interpreter{Root: root}
}

// Interpret parses a single expression from text, evaluates it in the
// interpreter's root environment, and returns its canonical printed form.
// This is the one capability §1 says the core exposes to its REPL/script
// collaborators.
func (it *Interpreter) Interpret(text string) (string, *value.SchemeError) {
	expr, perr := parser.ReadOne(text)
	if perr != nil {
		return "", perr
	}
	result, err := Eval(it.Root, expr)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

// BindArg binds name to v in the root environment, used by script mode to
// install the `args` binding before loading the script.
func (it *Interpreter) BindArg(name string, v value.Value) {
	it.Root.Define(name, v)
}

// Load reads path, parses every expression in it, and evaluates each in
// order against env, returning the value of the last one. It is shared by
// the `load` special form and by script-mode startup.
func Load(en value.Environment, path string) (value.Value, *value.SchemeError) {
	data, oserr := os.ReadFile(path)
	if oserr != nil {
		return nil, value.NewDefaultError("cannot load file", errors.Wrap(oserr, "load"))
	}
	exprs, perr := parser.ReadAll(string(data))
	if perr != nil {
		return nil, perr
	}
	var result value.Value = value.Bool(false)
	for _, expr := range exprs {
		v, err := Eval(en, expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

var elseAtom = value.Atom("else")

// Eval is the central tree-walk. Self-evaluating tags return themselves;
// Atom looks itself up in the environment chain; Lists dispatch to a
// special form or, failing that, to function application.
func Eval(en value.Environment, v value.Value) (value.Value, *value.SchemeError) {
	switch x := v.(type) {
	case value.Atom:
		if x == elseAtom {
			return value.Bool(true), nil
		}
		val, ok := en.Lookup(string(x))
		if !ok {
			return nil, value.NewUnboundVarError("Getting an unbound variable", string(x))
		}
		return val, nil
	case value.List:
		return evalList(en, x)
	case value.DottedList:
		return nil, value.NewBadSpecialFormError("Unrecognized special form", x)
	default:
		// Char, String, Number, Float, Rational, Complex, Bool, Vector,
		// Port, PrimitiveFunc, IOFunc, Func: self-evaluating.
		return v, nil
	}
}

func evalList(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	if len(list) == 0 {
		return list, nil
	}
	if head, ok := list[0].(value.Atom); ok {
		if form, ok := specialForms[head]; ok {
			return form(en, list)
		}
	}
	return evalApplication(en, list)
}

func evalApplication(en value.Environment, list value.List) (value.Value, *value.SchemeError) {
	fn, err := Eval(en, list[0])
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, 0, len(list)-1)
	for _, a := range list[1:] {
		av, err := Eval(en, a)
		if err != nil {
			return nil, err
		}
		args = append(args, av)
	}
	return Apply(fn, args)
}

// Apply invokes fn with already-evaluated args, dispatching on fn's
// concrete type per §4.2's Apply rules.
func Apply(fn value.Value, args []value.Value) (value.Value, *value.SchemeError) {
	switch f := fn.(type) {
	case value.PrimitiveFunc:
		return f.Fn(args)
	case value.IOFunc:
		return f.Fn(args)
	case *value.Func:
		return applyFunc(f, args)
	default:
		return nil, value.NewNotFunctionError("Not a function", printOrTag(fn))
	}
}

func applyFunc(f *value.Func, args []value.Value) (value.Value, *value.SchemeError) {
	if f.Rest == nil {
		if len(args) != len(f.Params) {
			return nil, value.NewNumArgsError(strconv.Itoa(len(f.Params)), args)
		}
	} else if len(args) < len(f.Params) {
		return nil, value.NewNumArgsError("at least "+strconv.Itoa(len(f.Params)), args)
	}
	callEnv := f.Env.NewChild()
	for i, p := range f.Params {
		callEnv.Define(string(p), args[i])
	}
	if f.Rest != nil {
		callEnv.Define(string(*f.Rest), value.List(append([]value.Value(nil), args[len(f.Params):]...)))
	}
	var result value.Value = value.Bool(false)
	for _, b := range f.Body {
		v, err := Eval(callEnv, b)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func printOrTag(v value.Value) string {
	if v == nil {
		return "()"
	}
	return v.String()
}
