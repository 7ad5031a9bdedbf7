package api

import (
	"context"
	"fmt"

	"github.com/altinukshini/cti-tui/internal/model"
)

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.Operator, error) {
	var op model.Operator
	if err := c.Get(ctx, "user/me", &op); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}
	return &op, nil
}

func (c *Client) ListOperators(ctx context.Context) (model.OperatorDirectory, error) {
	dir := model.OperatorDirectory{}
	if err := c.Get(ctx, "user/endpoints/all", &dir); err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	for username, op := range dir {
		if op.Username == "" {
			op.Username = username
			dir[username] = op
		}
	}
	return dir, nil
}

// CallNumber asks the PBX to originate a call from the user's phone.
func (c *Client) CallNumber(ctx context.Context, number string) error {
	body := map[string]string{"number": number}
	if err := c.Post(ctx, "astproxy/call", body, nil); err != nil {
		return fmt.Errorf("call %s: %w", number, err)
	}
	return nil
}
