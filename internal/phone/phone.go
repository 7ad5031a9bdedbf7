// Package phone formats phone numbers for display and dialing.
package phone

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "IT"

// maxExtensionDigits is the longest digit string treated as a PBX
// extension rather than a public number.
const maxExtensionDigits = 6

// IsExtension reports whether input looks like an internal extension.
func IsExtension(input string) bool {
	digits := 0
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return digits > 0 && digits <= maxExtensionDigits
}

// E164 formats input in E.164. Extensions, unparseable and invalid numbers
// are returned trimmed but otherwise unchanged.
func E164(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || IsExtension(trimmed) {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, regionOrDefault(region))
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// Display formats input in international notation for the UI.
func Display(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || IsExtension(trimmed) {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, regionOrDefault(region))
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL)
}

// Dialable strips the separators people type between digits. The PBX
// dials what it receives, so no country code is added.
func Dialable(input string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(input) {
		switch {
		case r >= '0' && r <= '9', r == '*', r == '#':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripSpaces removes every whitespace rune from s.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func regionOrDefault(region string) string {
	if region == "" {
		return DefaultRegion
	}
	return strings.ToUpper(region)
}
