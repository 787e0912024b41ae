// Package fluent resolves Fluent localization messages: it turns parsed
// messages, terms and runtime arguments into display strings for a locale.
//
// This package implements the resolution half of the Fluent system. Parsing
// FTL syntax into the ast package's tree is left to a parser; the bundle
// consumes such trees and formats them with CLDR-compliant plural selection,
// locale-aware number formatting, custom formatting functions, and graceful
// degradation: malformed references render fallback text instead of failing
// the whole translation.
//
// # Basic Usage
//
// Create a Bundle, load a resource, and format messages by id:
//
//	bundle, err := fluent.New(
//		fluent.WithLocales("en-US"),
//		fluent.WithResource(res),
//	)
//	if err != nil {
//		return err
//	}
//
//	text, _, err := bundle.Format("hello", fluent.Args{
//		"name": fluent.String("Ada"),
//	})
//	// Output: "Hello, Ada!"
//
// The middle result carries the recoverable errors encountered while
// resolving, for logging or development-time strictness; the final error is
// non-nil only when the message itself cannot be served.
//
// # Attributes
//
// Messages carry named attributes addressed with dot paths:
//
//	title, _, _ := bundle.Format("login-button.title")
//
// Compound resolves a message together with all of its attributes in one
// call:
//
//	msg, _, _ := bundle.Compound("login-button", args)
//	label, tooltip := msg.Value, msg.Attributes["title"]
//
// # Plural Selection
//
// Select expressions pick a variant by plural category, computed from the
// CLDR data in golang.org/x/text for the bundle's locale. Exact numeric
// keys take precedence over categories:
//
//	emails = { $count ->
//	    [0] No new emails.
//	    [one] One new email.
//	   *[other] { $count } new emails.
//	}
//
//	text, _, _ := bundle.Format("emails", fluent.Args{"count": fluent.Int(3)})
//	// Output: "3 new emails."
//
// # Functions
//
// Formatting functions extend placeables. NUMBER ships built in and is
// enabled with WithBuiltins; applications register their own with
// AddFunction:
//
//	bundle.AddFunction("STRLEN", func(positional []fluent.Value, _ fluent.Args) fluent.Value {
//		if s, ok := positional[0].(fluent.String); ok {
//			return fluent.Int(int64(len(s)))
//		}
//		return fluent.None{}
//	})
//
// # Locale Negotiation
//
// Applications holding one bundle per locale route each request with
// NegotiateLocale, which understands Accept-Language values:
//
//	tag := fluent.NegotiateLocale([]string{"en", "pl", "uk"}, r.Header.Get("Accept-Language"))
//
// # Thread Safety
//
// A Bundle is mutable while being loaded and must be treated as frozen once
// shared: load every resource and function first, then format from as many
// goroutines as needed without locking. Each Format call keeps its state in
// a private scope, so concurrent reads never interfere.
package fluent
