package api

import (
	"context"
	"net/http"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// GetProfile fetches the account profile with order history.
func (c *Client) GetProfile(ctx context.Context) (*model.Profile, error) {
	out := model.Profile{}
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile saves the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/profile", nil, update, nil)
}
