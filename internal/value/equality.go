package value

// Eqv reports identity-strength equality: tags must match and payloads
// must match exactly, with no cross-type coercion. Lists and dotted lists
// recurse pairwise and must have matching lengths. eq? and eqv? share this
// implementation, as spec'd.
func Eqv(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch av := a.(type) {
	case Atom:
		return av == b.(Atom)
	case Str:
		return av == b.(Str)
	case Char:
		return av == b.(Char)
	case Bool:
		return av == b.(Bool)
	case Number:
		return av.V.Cmp(b.(Number).V) == 0
	case Float:
		return av == b.(Float)
	case Rational:
		bv := b.(Rational)
		return av.Num.Cmp(bv.Num) == 0 && av.Denom.Cmp(bv.Denom) == 0
	case Complex:
		bv := b.(Complex)
		return av.Re == bv.Re && av.Im == bv.Im
	case List:
		bv := b.(List)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Eqv(av[i], bv[i]) {
				return false
			}
		}
		return true
	case DottedList:
		bv := b.(DottedList)
		if len(av.Head) != len(bv.Head) {
			return false
		}
		for i := range av.Head {
			if !Eqv(av.Head[i], bv.Head[i]) {
				return false
			}
		}
		return Eqv(av.Tail, bv.Tail)
	case Vector:
		bv := b.(Vector)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Eqv(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		// PrimitiveFunc, IOFunc, Port, Func: identity is not
		// meaningfully comparable by value here.
		return false
	}
}

// Eq is an alias for Eqv; this dialect does not distinguish the two.
func Eq(a, b Value) bool {
	return Eqv(a, b)
}

// Equal reports the weakest-strength equality: eqv? first, then falls
// back to coercing both sides through the Number/String/Bool unpacking
// rules, and recurses element-wise into lists.
func Equal(a, b Value) bool {
	if Eqv(a, b) {
		return true
	}
	if al, aok := a.(List); aok {
		if bl, bok := b.(List); bok {
			if len(al) != len(bl) {
				return false
			}
			for i := range al {
				if !Equal(al[i], bl[i]) {
					return false
				}
			}
			return true
		}
	}
	if an, err := ToNumber(a); err == nil {
		if bn, err := ToNumber(b); err == nil {
			return an.Cmp(bn) == 0
		}
	}
	if as, err := ToStringVal(a); err == nil {
		if bs, err := ToStringVal(b); err == nil {
			return as == bs
		}
	}
	if ab, err := ToBoolVal(a); err == nil {
		if bb, err := ToBoolVal(b); err == nil {
			return ab == bb
		}
	}
	return false
}
