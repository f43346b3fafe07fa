package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/homecraft/homecraft-cli/internal/model"
)

var _ model.AuthAPI = (*Client)(nil)

type loginResponse struct {
	Result struct {
		User         model.Account `json:"user"`
		Token        string        `json:"token"`
		IsAdmin      bool          `json:"isAdmin"`
		IsTechnician bool          `json:"isTechnician"`
	} `json:"result"`
}

// Login exchanges credentials for a bearer token and account snapshot.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.LoginResult, error) {
	out := loginResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &model.LoginResult{
		User:         out.Result.User,
		Token:        out.Result.Token,
		IsAdmin:      out.Result.IsAdmin,
		IsTechnician: out.Result.IsTechnician,
	}, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, reg model.Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, reg, nil)
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// GetCurrentUser fetches the signed-in account with fresh role flags.
func (c *Client) GetCurrentUser(ctx context.Context) (*model.Account, error) {
	out := model.Account{}
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword requests a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	query := url.Values{"email": {email}}
	return c.do(ctx, http.MethodGet, "/auth/forgot-password", query, nil, nil)
}

// ResetPassword completes a password reset.
func (c *Client) ResetPassword(ctx context.Context, newPassword string, userID int64) error {
	body := map[string]any{"newPassword": newPassword, "userId": userID}
	return c.do(ctx, http.MethodPatch, "/auth/reset-password", nil, body, nil)
}

// ConfirmEmail confirms a registration email token.
func (c *Client) ConfirmEmail(ctx context.Context, confirmationToken string, userID int64) error {
	query := url.Values{
		"token":  {confirmationToken},
		"userId": {strconv.FormatInt(userID, 10)},
	}
	return c.do(ctx, http.MethodGet, "/auth/confirm-email", query, nil, nil)
}
