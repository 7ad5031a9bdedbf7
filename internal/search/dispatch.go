package search

import "github.com/altinukshini/cti-tui/internal/model"

// Actions are the app operations a selected result can trigger.
type Actions struct {
	Dial          func(number string)
	CreateContact func(number string)
	ShowOperator  func(op model.Operator)
	ShowContact   func(c model.Contact)
}

// Dispatch runs the action bound to r. It reports false when r carries
// no payload or the matching action is nil.
func Dispatch(r model.SearchResult, a Actions) bool {
	switch r.Kind {
	case model.ResultCallPhoneNumber:
		if a.Dial == nil || r.PhoneNumber == "" {
			return false
		}
		a.Dial(r.PhoneNumber)
	case model.ResultAddToPhonebook:
		if a.CreateContact == nil || r.PhoneNumber == "" {
			return false
		}
		a.CreateContact(r.PhoneNumber)
	case model.ResultOperator:
		if a.ShowOperator == nil || r.Operator == nil {
			return false
		}
		a.ShowOperator(*r.Operator)
	case model.ResultContact:
		if a.ShowContact == nil || r.Contact == nil {
			return false
		}
		a.ShowContact(*r.Contact)
	default:
		return false
	}
	return true
}
