package model

import "unicode/utf8"

// SearchQuery is a normalized global search input.
type SearchQuery struct {
	Raw     string
	Trimmed string
	// Clean holds only the ASCII letters and digits of Raw.
	Clean             string
	IsPhoneNumberLike bool
}

// MinSearchLength is the trimmed length a query must exceed to search.
const MinSearchLength = 2

func (q SearchQuery) Searchable() bool {
	return q.Clean != "" && utf8.RuneCountInString(q.Trimmed) > MinSearchLength
}

type ResultKind int

const (
	ResultCallPhoneNumber ResultKind = iota
	ResultAddToPhonebook
	ResultOperator
	ResultContact
)

func (k ResultKind) String() string {
	switch k {
	case ResultCallPhoneNumber:
		return "call"
	case ResultAddToPhonebook:
		return "add-to-phonebook"
	case ResultOperator:
		return "operator"
	case ResultContact:
		return "contact"
	default:
		return "unknown"
	}
}

// SearchResult is one row of the global search. Exactly one of
// PhoneNumber, Operator or Contact is meaningful depending on Kind.
type SearchResult struct {
	Kind        ResultKind
	PhoneNumber string
	Operator    *Operator
	Contact     *Contact
}

func CallResult(number string) SearchResult {
	return SearchResult{Kind: ResultCallPhoneNumber, PhoneNumber: number}
}

func AddContactResult(number string) SearchResult {
	return SearchResult{Kind: ResultAddToPhonebook, PhoneNumber: number}
}

func OperatorResult(op Operator) SearchResult {
	return SearchResult{Kind: ResultOperator, Operator: &op}
}

func ContactResult(c Contact) SearchResult {
	return SearchResult{Kind: ResultContact, Contact: &c}
}

func (r SearchResult) Label() string {
	switch r.Kind {
	case ResultCallPhoneNumber:
		return "Call " + r.PhoneNumber
	case ResultAddToPhonebook:
		return "Add " + r.PhoneNumber + " to phonebook"
	case ResultOperator:
		if r.Operator != nil {
			return r.Operator.Name
		}
	case ResultContact:
		if r.Contact != nil {
			return r.Contact.DisplayName()
		}
	}
	return ""
}

func (r SearchResult) Icon() string {
	switch r.Kind {
	case ResultCallPhoneNumber:
		return "☎"
	case ResultAddToPhonebook:
		return "+"
	case ResultOperator:
		return "●"
	case ResultContact:
		if r.Contact != nil && r.Contact.Kind() == ContactCompany {
			return "▣"
		}
		return "◉"
	}
	return " "
}
