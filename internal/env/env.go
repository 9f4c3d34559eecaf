// Package env implements the lexically nested environment chain: frames of
// identifier-to-value bindings, walked from innermost to outermost on
// lookup. Frame storage uses an adaptive radix tree rather than a bare map,
// the same symbol-table idiom the corpus's protobuf compiler uses for its
// descriptor table (kralicky-protocompile/linker/linker.go: art.New()).
package env

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/rashmirathi1729/liswat/internal/value"
)

// Environment is one frame in the chain, with a pointer to its parent. The
// root frame has a nil parent.
type Environment struct {
	parent *Environment
	frame  art.Tree
}

// New constructs a child environment of parent. Passing a nil parent
// creates the root frame.
func New(parent *Environment) *Environment {
	return &Environment{parent: parent, frame: art.New()}
}

func key(name string) art.Key {
	return art.Key(name)
}

// Lookup walks the chain from this frame outward, returning the first
// binding found.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, found := f.frame.Search(key(name)); found {
			return v.(value.Value), true
		}
	}
	return nil, false
}

// Define installs or replaces a binding in this frame only, never walking
// to a parent frame.
func (e *Environment) Define(name string, v value.Value) {
	e.frame.Insert(key(name), v)
}

// SetVar requires name to already be bound somewhere in the chain and
// updates the nearest binding in place. It returns an UnboundVar error if
// no such binding exists.
func (e *Environment) SetVar(name string, v value.Value) error {
	frame := e.frameDefining(name)
	if frame == nil {
		return value.NewUnboundVarError("Setting an unbound variable", name)
	}
	frame.frame.Insert(key(name), v)
	return nil
}

func (e *Environment) frameDefining(name string) *Environment {
	for f := e; f != nil; f = f.parent {
		if _, found := f.frame.Search(key(name)); found {
			return f
		}
	}
	return nil
}

// Child creates a new environment whose parent is e, per the invocation
// rule: a closure's call frame is parented on its captured environment,
// not on the caller's frame.
func (e *Environment) Child() *Environment {
	return New(e)
}

// NewChild implements value.Environment, returning Child() boxed as the
// interface so the evaluator can build call frames without importing this
// package's concrete type.
func (e *Environment) NewChild() value.Environment {
	return e.Child()
}
