// Package langtag validates dataset language codes as BCP 47 tags.
package langtag

import "golang.org/x/text/language"

// Valid reports whether code parses as a BCP 47 language tag ("en", "ja",
// "pt-BR"). The record store itself treats codes as opaque strings; this
// check is applied only at dataset boundaries.
func Valid(code string) bool {
	if code == "" {
		return false
	}
	_, err := language.Parse(code)
	return err == nil
}

// Canonical returns the canonical form of a language tag ("en-us" -> "en-US"),
// or the input unchanged if it does not parse.
func Canonical(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
