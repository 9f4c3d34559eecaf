package prim

import (
	"math/big"

	"github.com/rashmirathi1729/liswat/internal/value"
)

func numericFold(name string, init func(a, b *big.Int) *big.Int) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) < 2 {
			return nil, value.NewNumArgsError("at least 2", args)
		}
		acc, err := value.ToNumber(args[0])
		if err != nil {
			return nil, err
		}
		result := new(big.Int).Set(acc)
		for _, a := range args[1:] {
			n, err := value.ToNumber(a)
			if err != nil {
				return nil, err
			}
			result = init(result, n)
		}
		return value.Number{V: result}, nil
	}
}

func divisionOp(name string, op func(z, a, b *big.Int) *big.Int) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) < 2 {
			return nil, value.NewNumArgsError("at least 2", args)
		}
		acc, err := value.ToNumber(args[0])
		if err != nil {
			return nil, err
		}
		result := new(big.Int).Set(acc)
		for _, a := range args[1:] {
			n, err := value.ToNumber(a)
			if err != nil {
				return nil, err
			}
			if n.Sign() == 0 {
				return nil, value.NewDefaultError("division by zero", nil)
			}
			result = op(new(big.Int), result, n)
		}
		return value.Number{V: result}, nil
	}
}

// floorMod computes the modulus following the divisor's sign (floored
// division), distinct from big.Int's Euclidean Mod.
func floorMod(z, a, b *big.Int) *big.Int {
	r := new(big.Int).Rem(a, b)
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		r.Add(r, b)
	}
	return z.Set(r)
}

func compareOp(cmp func(c int) bool) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 2 {
			return nil, value.NewNumArgsError("2", args)
		}
		a, err := value.ToNumber(args[0])
		if err != nil {
			return nil, err
		}
		b, err := value.ToNumber(args[1])
		if err != nil {
			return nil, err
		}
		return value.Bool(cmp(a.Cmp(b))), nil
	}
}

func logicalOp(combine func(a, b bool) bool) func([]value.Value) (value.Value, *value.SchemeError) {
	return func(args []value.Value) (value.Value, *value.SchemeError) {
		if len(args) != 2 {
			return nil, value.NewNumArgsError("2", args)
		}
		a, err := value.ToBoolVal(args[0])
		if err != nil {
			return nil, err
		}
		b, err := value.ToBoolVal(args[1])
		if err != nil {
			return nil, err
		}
		return value.Bool(combine(a, b)), nil
	}
}

func primNot(args []value.Value) (value.Value, *value.SchemeError) {
	if len(args) != 1 {
		return nil, value.NewNumArgsError("1", args)
	}
	if b, ok := args[0].(value.Bool); ok && !bool(b) {
		return value.Bool(true), nil
	}
	return value.Bool(false), nil
}

func registerNumeric(t map[string]func([]value.Value) (value.Value, *value.SchemeError)) {
	t["+"] = numericFold("+", func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) })
	t["-"] = numericFold("-", func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) })
	t["*"] = numericFold("*", func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) })
	t["/"] = divisionOp("/", func(z, a, b *big.Int) *big.Int { return z.Quo(a, b) })
	t["quotient"] = divisionOp("quotient", func(z, a, b *big.Int) *big.Int { return z.Quo(a, b) })
	t["remainder"] = divisionOp("remainder", func(z, a, b *big.Int) *big.Int { return z.Rem(a, b) })
	t["mod"] = divisionOp("mod", floorMod)

	t["="] = compareOp(func(c int) bool { return c == 0 })
	t["<"] = compareOp(func(c int) bool { return c < 0 })
	t[">"] = compareOp(func(c int) bool { return c > 0 })
	t["<="] = compareOp(func(c int) bool { return c <= 0 })
	t[">="] = compareOp(func(c int) bool { return c >= 0 })

	t["&&"] = logicalOp(func(a, b bool) bool { return a && b })
	t["||"] = logicalOp(func(a, b bool) bool { return a || b })
	t["not"] = primNot
}
