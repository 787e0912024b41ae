package fluent

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Category is a CLDR plural category. Select expression variants keyed by a
// category name match numbers that fall into that category.
type Category string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  Category = "zero"
	PluralOne   Category = "one"
	PluralTwo   Category = "two"
	PluralFew   Category = "few"
	PluralMany  Category = "many"
	PluralOther Category = "other"
)

// PluralRule determines the plural category of a number for a locale.
// It follows Unicode CLDR (Common Locale Data Repository) guidelines.
type PluralRule func(tag language.Tag, num Number) Category

// CLDRPluralRule is the default plural rule. It consults the CLDR cardinal
// plural data shipped with golang.org/x/text, which covers every well-formed
// language tag, and respects the number's fraction-digit hints: "1.0" and
// "1" may land in different categories, as CLDR requires.
var CLDRPluralRule PluralRule = func(tag language.Tag, num Number) Category {
	i, v, w, f, t := num.operands()
	switch plural.Cardinal.MatchPlural(tag, i, v, w, f, t) {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
