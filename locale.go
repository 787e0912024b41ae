package fluent

import "golang.org/x/text/language"

// parseLocales parses a locale fallback chain in preference order, dropping
// entries that do not parse as BCP 47 tags. An empty result falls back to
// English, for which plural data always exists.
func parseLocales(locales []string) []language.Tag {
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return []language.Tag{language.English}
	}
	return tags
}

// NegotiateLocale picks the supported locale that best serves the requested
// ones, for routing a request to the right bundle. Requested entries may be
// plain tags or full Accept-Language headers. Ties go to the earlier
// supported entry; when nothing is usable the first supported locale wins,
// or English if the supported list itself is empty or malformed.
func NegotiateLocale(supported []string, requested ...string) language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	for _, locale := range supported {
		if tag, err := language.Parse(locale); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return language.English
	}
	matcher := language.NewMatcher(tags)
	_, index := language.MatchStrings(matcher, requested...)
	return tags[index]
}
