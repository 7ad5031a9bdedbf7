package search

import (
	"regexp"
	"sort"

	"github.com/altinukshini/cti-tui/internal/model"
)

// MatchOperators returns copies of the operators whose name, stripped of
// non-alphanumerics, or main extension matches q.Clean case-insensitively.
// Results are sorted by name.
func MatchOperators(dir model.OperatorDirectory, q model.SearchQuery) []model.Operator {
	if q.Clean == "" || len(dir) == 0 {
		return nil
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(q.Clean))

	var matched []model.Operator
	for _, op := range dir {
		if re.MatchString(clean(op.Name)) || re.MatchString(op.MainExtension()) {
			matched = append(matched, cloneOperator(op))
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].Username < matched[j].Username
	})
	return matched
}

func cloneOperator(op model.Operator) model.Operator {
	op.Endpoints.MainExtension = append([]model.Endpoint(nil), op.Endpoints.MainExtension...)
	op.Endpoints.Extension = append([]model.Endpoint(nil), op.Endpoints.Extension...)
	op.Endpoints.Cellphone = append([]model.Endpoint(nil), op.Endpoints.Cellphone...)
	op.Endpoints.Email = append([]model.Endpoint(nil), op.Endpoints.Email...)
	return op
}
