package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altinukshini/cti-tui/internal/model"
)

type recordedActions struct {
	dialed   []string
	created  []string
	operator *model.Operator
	contact  *model.Contact
}

func (r *recordedActions) actions() Actions {
	return Actions{
		Dial:          func(n string) { r.dialed = append(r.dialed, n) },
		CreateContact: func(n string) { r.created = append(r.created, n) },
		ShowOperator:  func(o model.Operator) { r.operator = &o },
		ShowContact:   func(c model.Contact) { r.contact = &c },
	}
}

func TestDispatch(t *testing.T) {
	rec := &recordedActions{}
	a := rec.actions()

	assert.True(t, Dispatch(model.CallResult("555 1234"), a))
	assert.True(t, Dispatch(model.AddContactResult("555 1234"), a))
	assert.True(t, Dispatch(model.OperatorResult(op("mrossi", "Mario Rossi", "201")), a))
	assert.True(t, Dispatch(model.ContactResult(model.Contact{Name: "Ann"}), a))

	assert.Equal(t, []string{"555 1234"}, rec.dialed)
	assert.Equal(t, []string{"555 1234"}, rec.created)
	if assert.NotNil(t, rec.operator) {
		assert.Equal(t, "mrossi", rec.operator.Username)
	}
	if assert.NotNil(t, rec.contact) {
		assert.Equal(t, "Ann", rec.contact.Name)
	}
}

func TestDispatchMissingPayload(t *testing.T) {
	rec := &recordedActions{}
	assert.False(t, Dispatch(model.SearchResult{Kind: model.ResultOperator}, rec.actions()))
	assert.False(t, Dispatch(model.CallResult("555"), Actions{}))
	assert.False(t, Dispatch(model.SearchResult{Kind: model.ResultKind(99)}, rec.actions()))
}
