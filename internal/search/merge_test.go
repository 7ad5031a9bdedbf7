package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altinukshini/cti-tui/internal/model"
)

func kinds(results []model.SearchResult) []model.ResultKind {
	out := make([]model.ResultKind, len(results))
	for i, r := range results {
		out[i] = r.Kind
	}
	return out
}

func TestMergeTextQuery(t *testing.T) {
	q := Normalize("mario")
	ops := []model.Operator{op("mrossi", "Mario Rossi", "201")}
	contacts := []model.Contact{{Name: "Mario Bros"}}

	got := Merge(q, ops, contacts, false)
	assert.Equal(t, []model.ResultKind{model.ResultOperator, model.ResultContact}, kinds(got))
}

func TestMergePhoneQueryUnknownNumber(t *testing.T) {
	q := Normalize(" 555 1234 ")
	contacts := []model.Contact{{Name: "Other", WorkPhone: "555 9999"}}

	got := Merge(q, nil, contacts, false)
	assert.Equal(t, []model.ResultKind{
		model.ResultCallPhoneNumber,
		model.ResultAddToPhonebook,
		model.ResultContact,
	}, kinds(got))
	assert.Equal(t, "555 1234", got[0].PhoneNumber)
	assert.Equal(t, "555 1234", got[1].PhoneNumber)
}

func TestMergePhoneQueryKnownNumber(t *testing.T) {
	tests := []struct {
		name    string
		contact model.Contact
	}{
		{"extension", model.Contact{Name: "A", Extension: "5551234"}},
		{"work phone with spaces", model.Contact{Name: "B", WorkPhone: "555 12 34"}},
		{"cell phone", model.Contact{Name: "C", CellPhone: " 5551234"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(Normalize("555 1234"), nil, []model.Contact{tt.contact}, false)
			assert.Equal(t, []model.ResultKind{model.ResultCallPhoneNumber, model.ResultContact}, kinds(got))
		})
	}
}

func TestMergeOrderWithOperators(t *testing.T) {
	q := Normalize("201")
	ops := []model.Operator{op("mrossi", "Mario Rossi", "201")}
	contacts := []model.Contact{{Company: "Acme", WorkPhone: "0201"}}

	got := Merge(q, ops, contacts, false)
	assert.Equal(t, []model.ResultKind{
		model.ResultCallPhoneNumber,
		model.ResultOperator,
		model.ResultAddToPhonebook,
		model.ResultContact,
	}, kinds(got))
}

func TestMergePhonebookFailed(t *testing.T) {
	q := Normalize("555 1234")
	ops := []model.Operator{op("x", "X", "5551234")}

	got := Merge(q, ops, nil, true)
	assert.Equal(t, []model.ResultKind{model.ResultCallPhoneNumber, model.ResultOperator}, kinds(got))
}

func TestMergeNoDeduplication(t *testing.T) {
	q := Normalize("mario")
	ops := []model.Operator{op("mrossi", "Mario Rossi", "201")}
	contacts := []model.Contact{{Name: "Mario Rossi", Extension: "201"}}

	got := Merge(q, ops, contacts, false)
	assert.Len(t, got, 2)
}
