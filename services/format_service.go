package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/fadhlanhapp/random-inator/models"
)

// specialChars matches everything that is not alphanumeric, whitespace or a hyphen.
// Alphanumeric includes Other_Alphabetic so Indic vowel signs and circled letters survive.
var specialChars = runes.Predicate(func(r rune) bool {
	return !(unicode.In(r, unicode.Letter, unicode.Number, unicode.Other_Alphabetic) || unicode.IsSpace(r) || r == '-')
})

// StripSpecial removes punctuation and symbols from a name, keeping letters,
// numbers, whitespace and hyphens in their original order
func StripSpecial(name string) string {
	stripped, _, _ := transform.String(runes.Remove(specialChars), name)
	return stripped
}

// ApplyFormat applies the requested formatting to an inator name.
// Special characters are stripped first, then the case option is applied.
func ApplyFormat(name string, request models.FormatRequest) string {
	if request.StripSpecial {
		name = StripSpecial(name)
	}
	return formatInator(name, request.Format)
}

func formatInator(name string, format models.FormatOption) string {
	switch format {
	case models.FormatSnake:
		return replaceSeparators(name, "_")
	case models.FormatCamel:
		return toCamel(name)
	case models.FormatKebab:
		return strings.ReplaceAll(name, " ", "-")
	case models.FormatNoSpaces:
		return replaceSeparators(name, "")
	case models.FormatLower:
		return cases.Lower(language.Und).String(name)
	case models.FormatUpper:
		return cases.Upper(language.Und).String(name)
	default:
		return name
	}
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '-'
}

func replaceSeparators(name, replacement string) string {
	return strings.NewReplacer(" ", replacement, "-", replacement).Replace(name)
}

// toCamel drops every separator and upper-cases the character that follows it
func toCamel(name string) string {
	// Casers are stateful and must not be shared across goroutines
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(name))

	capitalizeNext := false
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		// raw keeps invalid UTF-8 bytes as they are
		raw := name[i : i+size]
		i += size

		switch {
		case isSeparator(r):
			capitalizeNext = true
		case capitalizeNext && r != utf8.RuneError:
			b.WriteString(upper.String(raw))
			capitalizeNext = false
		default:
			b.WriteString(raw)
			capitalizeNext = false
		}
	}
	return b.String()
}
