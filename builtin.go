package fluent

// builtinNumber implements the NUMBER built-in. It coerces its positional
// argument to a Number and applies the formatting hints given as named
// arguments, mirroring the ECMA-402 option names:
//
//	{ NUMBER($pi, maximumFractionDigits: 2) }
//	{ NUMBER($price, minimumFractionDigits: 2) }
//
// The hints travel with the returned Number, so they influence both display
// and plural category selection when the result feeds a select expression.
func builtinNumber(positional []Value, named Args) Value {
	if len(positional) == 0 {
		return None{}
	}

	var num Number
	switch v := positional[0].(type) {
	case Number:
		num = v
	case String:
		num = ParseNumber(string(v))
		if !num.valid {
			return None{}
		}
	default:
		return None{}
	}

	if d, ok := namedDigits(named, "minimumFractionDigits"); ok {
		num = num.WithMinFractionDigits(d)
	}
	if d, ok := namedDigits(named, "maximumFractionDigits"); ok {
		num = num.WithMaxFractionDigits(d)
	}
	return num
}

// namedDigits reads a named argument as a non-negative whole number,
// ignoring it otherwise.
func namedDigits(named Args, name string) (int, bool) {
	v, ok := named[name]
	if !ok {
		return 0, false
	}
	n, ok := v.(Number)
	if !ok || !n.valid {
		return 0, false
	}
	d := int(n.value)
	if d < 0 || float64(d) != n.value {
		return 0, false
	}
	return d, true
}
