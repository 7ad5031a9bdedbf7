package search

import (
	"github.com/altinukshini/cti-tui/internal/model"
	"github.com/altinukshini/cti-tui/internal/phone"
)

// Merge builds the ordered result list:
//
//	[call action] + operator matches + [add-contact suggestion] + contacts
//
// The call action and the suggestion only apply to phone-number-like
// queries. When the phonebook lookup failed the phonebook part is empty.
func Merge(q model.SearchQuery, operators []model.Operator, contacts []model.Contact, phonebookFailed bool) []model.SearchResult {
	var out []model.SearchResult
	if q.IsPhoneNumberLike {
		out = append(out, model.CallResult(q.Trimmed))
	}
	for _, op := range operators {
		out = append(out, model.OperatorResult(op))
	}
	if phonebookFailed {
		return out
	}
	if q.IsPhoneNumberLike && !numberKnown(q.Trimmed, contacts) {
		out = append(out, model.AddContactResult(q.Trimmed))
	}
	for _, c := range contacts {
		out = append(out, model.ContactResult(c))
	}
	return out
}

// numberKnown reports whether any contact's extension, work phone or cell
// phone equals number, ignoring whitespace.
func numberKnown(number string, contacts []model.Contact) bool {
	want := phone.StripSpaces(number)
	for _, c := range contacts {
		for _, n := range []string{c.Extension, c.WorkPhone, c.CellPhone} {
			if n != "" && phone.StripSpaces(n) == want {
				return true
			}
		}
	}
	return false
}
