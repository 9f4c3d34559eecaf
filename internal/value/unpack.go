package value

import "math/big"

// ToNumber unpacks v as an integer: a bare Number, or a singleton List
// holding one (recursively unpacked).
func ToNumber(v Value) (*big.Int, *SchemeError) {
	switch n := v.(type) {
	case Number:
		return n.V, nil
	case List:
		if len(n) == 1 {
			return ToNumber(n[0])
		}
	}
	return nil, NewTypeMismatchError("number", v)
}

// ToStringVal unpacks v as a string: a bare Str, the decimal text of a
// Number, or "True"/"False" for a Bool.
func ToStringVal(v Value) (string, *SchemeError) {
	switch s := v.(type) {
	case Str:
		return string(s), nil
	case Number:
		return s.V.String(), nil
	case Bool:
		if s {
			return "True", nil
		}
		return "False", nil
	}
	return "", NewTypeMismatchError("string", v)
}

// ToBoolVal unpacks v as a Bool.
func ToBoolVal(v Value) (bool, *SchemeError) {
	if b, ok := v.(Bool); ok {
		return bool(b), nil
	}
	return false, NewTypeMismatchError("boolean", v)
}

// ToCharVal unpacks v as a Char.
func ToCharVal(v Value) (rune, *SchemeError) {
	if c, ok := v.(Char); ok {
		return rune(c), nil
	}
	return 0, NewTypeMismatchError("character", v)
}
