// Package validation holds the pure checks applied to bank records before
// they are written, plus the IBAN input formatter used while editing.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// IBANLength is the length of a Turkish IBAN without spaces.
const IBANLength = 26

var (
	turkishIBAN  = regexp.MustCompile(`^TR[0-9]{24}$`)
	nonIBANChars = regexp.MustCompile(`[^A-Z0-9]`)
)

// StripIBAN removes every whitespace character.
func StripIBAN(iban string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, iban)
}

// IsValidIBAN reports whether iban, once whitespace is removed, is "TR"
// followed by exactly 24 ASCII digits.
func IsValidIBAN(iban string) bool {
	return turkishIBAN.MatchString(StripIBAN(iban))
}

// FormatIBANInput normalizes text typed into an IBAN field: it upper-cases,
// drops anything outside [A-Z0-9], caps the result at IBANLength characters,
// forces the "TR" prefix once two characters are present and groups the
// output in blocks of four.
func FormatIBANInput(text string) string {
	clean := nonIBANChars.ReplaceAllString(strings.ToUpper(text), "")
	if len(clean) > IBANLength {
		clean = clean[:IBANLength]
	}
	if len(clean) >= 2 && clean[:2] != "TR" {
		clean = "TR" + clean[2:]
	}
	return GroupIBAN(clean)
}

// GroupIBAN inserts a space after every fourth character.
func GroupIBAN(iban string) string {
	var b strings.Builder
	n := 0
	for _, r := range iban {
		if n > 0 && n%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
