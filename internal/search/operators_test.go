package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/cti-tui/internal/model"
)

func op(username, name, ext string) model.Operator {
	return model.Operator{
		Username:  username,
		Name:      name,
		Endpoints: model.Endpoints{MainExtension: []model.Endpoint{{ID: ext}}},
	}
}

func testDirectory() model.OperatorDirectory {
	return model.OperatorDirectory{
		"mrossi":   op("mrossi", "Mario Rossi", "201"),
		"abianchi": op("abianchi", "Anna Bianchi", "202"),
		"lverdi":   op("lverdi", "Luca Verdi", "310"),
		"obrien":   op("obrien", "Pat O'Brien", "420"),
	}
}

func names(ops []model.Operator) []string {
	out := make([]string, len(ops))
	for i, o := range ops {
		out[i] = o.Name
	}
	return out
}

func TestMatchOperatorsByName(t *testing.T) {
	got := MatchOperators(testDirectory(), Normalize("ross"))
	assert.Equal(t, []string{"Mario Rossi"}, names(got))
}

func TestMatchOperatorsIgnoresPunctuationAndCase(t *testing.T) {
	// "o'bri" cleans to "obri" and the name cleans to "PatOBrien".
	got := MatchOperators(testDirectory(), Normalize("O'BRI"))
	assert.Equal(t, []string{"Pat O'Brien"}, names(got))

	// Spaces are stripped on both sides.
	got = MatchOperators(testDirectory(), Normalize("mario ros"))
	assert.Equal(t, []string{"Mario Rossi"}, names(got))
}

func TestMatchOperatorsByExtensionSortedByName(t *testing.T) {
	got := MatchOperators(testDirectory(), Normalize("20"))
	assert.Equal(t, []string{"Anna Bianchi", "Mario Rossi", "Pat O'Brien"}, names(got))
}

func TestMatchOperatorsEmptyClean(t *testing.T) {
	assert.Empty(t, MatchOperators(testDirectory(), Normalize("+-+")))
	assert.Empty(t, MatchOperators(nil, Normalize("mario")))
}

func TestMatchOperatorsReturnsCopies(t *testing.T) {
	dir := testDirectory()
	got := MatchOperators(dir, Normalize("201"))
	require.Len(t, got, 1)
	got[0].Name = "changed"
	got[0].Endpoints.MainExtension[0].ID = "999"

	assert.Equal(t, "Mario Rossi", dir["mrossi"].Name)
	assert.Equal(t, "201", dir["mrossi"].MainExtension())
}

func TestMatchOperatorsWithoutMainExtension(t *testing.T) {
	dir := model.OperatorDirectory{"ghost": {Username: "ghost", Name: "Ghost"}}
	assert.Len(t, MatchOperators(dir, Normalize("gho")), 1)
	assert.Empty(t, MatchOperators(dir, Normalize("201")))
}
