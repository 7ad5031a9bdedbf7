package api

import (
	"context"
	"fmt"
	"sort"

	"github.com/altinukshini/cti-tui/internal/model"
)

func (c *Client) ListLines(ctx context.Context) ([]model.Line, error) {
	var raw map[string]model.Line
	if err := c.Get(ctx, "webrest/offhour/list", &raw); err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]model.Line, 0, len(raw))
	for _, k := range keys {
		l := raw[k]
		if l.CalledIDNum == "" {
			l.CalledIDNum = k
		}
		lines = append(lines, l)
	}
	return lines, nil
}
