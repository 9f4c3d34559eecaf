// Package prim installs the interpreter's built-in operations into the
// root environment. It mirrors swatcl/functions.go's functionTable +
// populateFunctionTable pattern and swatcl/commands.go's RegisterCommand
// pattern: two tables, one of pure primitives and one of effectful ones,
// loaded once at interpreter start-up.
package prim

import "github.com/rashmirathi1729/liswat/internal/value"

// Applier invokes a callable Value with already-evaluated arguments. It is
// supplied by package eval at Install time so this package never has to
// import eval (which would create an import cycle, since eval imports
// prim to populate the root environment).
type Applier func(fn value.Value, args []value.Value) (value.Value, *value.SchemeError)

// Install populates root with every primitive and IO primitive described
// in §4.3, using apply to implement the `apply` primitive.
func Install(root value.Environment, apply Applier) {
	for name, fn := range pureTable(apply) {
		root.Define(name, value.PrimitiveFunc{Name: name, Fn: fn})
	}
	for name, fn := range ioTable() {
		root.Define(name, value.IOFunc{Name: name, Fn: fn})
	}
}
