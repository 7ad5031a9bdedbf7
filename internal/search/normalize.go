// Package search implements the global search: query normalization,
// operator and phonebook lookups, result merging and the debounced
// pipeline that drives them.
package search

import (
	"regexp"
	"strings"

	"github.com/altinukshini/cti-tui/internal/model"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	phoneNumberLike = regexp.MustCompile(`^\+?[0-9\s]+$`)
)

// Normalize derives the search forms of raw. It never fails.
func Normalize(raw string) model.SearchQuery {
	trimmed := strings.TrimSpace(raw)
	return model.SearchQuery{
		Raw:               raw,
		Trimmed:           trimmed,
		Clean:             clean(raw),
		IsPhoneNumberLike: phoneNumberLike.MatchString(trimmed),
	}
}

func clean(s string) string {
	return nonAlphanumeric.ReplaceAllString(s, "")
}
