package api

import (
	"context"
	"net/http"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// GetDashboardData fetches the admin overview statistics.
func (c *Client) GetDashboardData(ctx context.Context) (*model.DashboardData, error) {
	out := model.DashboardData{}
	if err := c.do(ctx, http.MethodGet, "/admin", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecentActivities fetches the latest store events.
func (c *Client) GetRecentActivities(ctx context.Context) ([]model.Activity, error) {
	out := []model.Activity{}
	if err := c.do(ctx, http.MethodGet, "/admin/recent-activities", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTopProducts fetches the best-seller list.
func (c *Client) GetTopProducts(ctx context.Context) ([]model.TopProduct, error) {
	out := []model.TopProduct{}
	if err := c.do(ctx, http.MethodGet, "/admin/top-products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOverallRating fetches the aggregate customer satisfaction score.
func (c *Client) GetOverallRating(ctx context.Context) (float64, error) {
	var out float64
	if err := c.do(ctx, http.MethodGet, "/admin/overall-rating", nil, nil, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// GetInventoryStatus fetches the stock health summary.
func (c *Client) GetInventoryStatus(ctx context.Context) (*model.InventoryStatus, error) {
	out := model.InventoryStatus{}
	if err := c.do(ctx, http.MethodGet, "/admin/inventory-status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUsers lists all accounts for the admin user table.
func (c *Client) GetUsers(ctx context.Context) ([]model.ManagedUser, error) {
	out := []model.ManagedUser{}
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignRole grants a role to another user.
func (c *Client) AssignRole(ctx context.Context, currentUserID, userID int64, role string) error {
	body := map[string]any{"currentUserId": currentUserID, "userId": userID, "role": role}
	return c.do(ctx, http.MethodPost, "/admin/assign-role", nil, body, nil)
}
