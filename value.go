package fluent

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Value is a runtime value flowing through resolution: a caller argument, an
// intermediate result of a placeable, or a function result. The concrete
// variants are None, String, Number and Custom.
type Value interface {
	isValue()
}

// Args carries the caller-supplied variables of one Format or Compound call,
// keyed by variable name without the "$" sigil.
type Args map[string]Value

// None is the absence value. It renders as the empty string and matches no
// select variant.
type None struct{}

// String is a plain text value.
type String string

// Number is a decimal value that remembers its source spelling and carries
// optional formatting hints. A Number parsed from malformed input keeps
// Valid false and renders as its source text unchanged; a valid Number
// renders locale-aware.
type Number struct {
	source string
	value  float64
	valid  bool
	minFD  int // minimum fraction digits, -1 when unset
	maxFD  int // maximum fraction digits, -1 when unset
}

// Custom adapts a caller-defined Formattable to a Value. Functions return
// Custom values to carry domain types (dates, currencies) through selection
// and formatting.
type Custom struct {
	Formattable
}

func (None) isValue()   {}
func (String) isValue() {}
func (Number) isValue() {}
func (Custom) isValue() {}

// Formattable renders a custom value for a locale. Implementations must be
// safe for concurrent use; one value may be formatted from many goroutines.
type Formattable interface {
	Format(tag language.Tag) string
}

// PluralCategorizer is implemented by Formattable values that represent
// quantities and can pick the plural category matching their rendered form.
type PluralCategorizer interface {
	PluralCategory(tag language.Tag) Category
}

// Int returns a Number holding v.
func Int(v int64) Number {
	return Number{
		source: strconv.FormatInt(v, 10),
		value:  float64(v),
		valid:  true,
		minFD:  -1,
		maxFD:  -1,
	}
}

// Float returns a Number holding v.
func Float(v float64) Number {
	return Number{
		source: strconv.FormatFloat(v, 'f', -1, 64),
		value:  v,
		valid:  true,
		minFD:  -1,
		maxFD:  -1,
	}
}

// ParseNumber returns a Number for the given source text. The source is kept
// verbatim; when it does not parse as a decimal the Number is marked invalid
// and behaves as opaque text. Fraction digits in the source become the
// minimum fraction digits of the value, so "1.0" keeps rendering as "1.0"
// and pluralizes differently from "1".
func ParseNumber(source string) Number {
	n := Number{source: source, minFD: -1, maxFD: -1}
	if v, err := strconv.ParseFloat(source, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		n.value = v
		n.valid = true
		if dot := strings.IndexByte(source, '.'); dot >= 0 {
			n.minFD = len(source) - dot - 1
		}
	}
	return n
}

// Float64 returns the numeric value and whether the Number is valid.
func (n Number) Float64() (float64, bool) {
	return n.value, n.valid
}

// Source returns the original textual form of the number.
func (n Number) Source() string {
	return n.source
}

// Valid reports whether the source parsed as a decimal.
func (n Number) Valid() bool {
	return n.valid
}

// WithMinFractionDigits returns a copy of n that renders with at least d
// fraction digits, zero-padding if needed. The hint also affects plural
// category selection: "1" with two minimum fraction digits pluralizes like
// "1.00".
func (n Number) WithMinFractionDigits(d int) Number {
	n.minFD = d
	return n
}

// WithMaxFractionDigits returns a copy of n that renders with at most d
// fraction digits, rounding if needed.
func (n Number) WithMaxFractionDigits(d int) Number {
	n.maxFD = d
	return n
}

// format renders the number for display through the locale printer. Invalid
// numbers render as their source text.
func (n Number) format(p *message.Printer) string {
	if !n.valid {
		return n.source
	}
	opts := make([]number.Option, 0, 2)
	if n.minFD >= 0 {
		opts = append(opts, number.MinFractionDigits(n.minFD))
	}
	if n.maxFD >= 0 {
		opts = append(opts, number.MaxFractionDigits(n.maxFD))
	}
	return p.Sprint(number.Decimal(n.value, opts...))
}

// digits returns the absolute integer and fraction digit strings of the
// number as it would be displayed: rounded to at most maxFD fraction digits,
// trailing zeros trimmed, then zero-padded to at least minFD.
func (n Number) digits() (intPart, fracPart string) {
	prec := -1
	if n.maxFD >= 0 {
		prec = n.maxFD
	}
	s := strconv.FormatFloat(math.Abs(n.value), 'f', prec, 64)
	intPart, fracPart, _ = strings.Cut(s, ".")
	if n.maxFD >= 0 {
		keep := 0
		if n.minFD > 0 {
			keep = n.minFD
		}
		for len(fracPart) > keep && fracPart[len(fracPart)-1] == '0' {
			fracPart = fracPart[:len(fracPart)-1]
		}
	}
	if n.minFD > len(fracPart) {
		fracPart += strings.Repeat("0", n.minFD-len(fracPart))
	}
	return intPart, fracPart
}

// operands computes the CLDR plural operands of the displayed number:
// i (integer value), v (fraction digit count), w (fraction digit count
// without trailing zeros), f (fraction digits as an integer) and t (same,
// without trailing zeros).
func (n Number) operands() (i, v, w, f, t int) {
	if !n.valid {
		return 0, 0, 0, 0, 0
	}
	intPart, fracPart := n.digits()
	i64, _ := strconv.ParseInt(intPart, 10, 64)
	i = int(i64)
	v = len(fracPart)
	trimmed := strings.TrimRight(fracPart, "0")
	w = len(trimmed)
	f64, _ := strconv.ParseInt(fracPart, 10, 64)
	f = int(f64)
	t64, _ := strconv.ParseInt(trimmed, 10, 64)
	t = int(t64)
	return i, v, w, f, t
}
