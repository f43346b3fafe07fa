package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// GetTechniciansByProductID lists installers offering a product.
func (c *Client) GetTechniciansByProductID(ctx context.Context, productID int64) ([]model.Technician, error) {
	query := url.Values{"productId": {strconv.FormatInt(productID, 10)}}
	out := []model.Technician{}
	if err := c.do(ctx, http.MethodGet, "/technician", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddProductToTechnician registers the signed-in technician as an
// installer for a product.
func (c *Client) AddProductToTechnician(ctx context.Context, productID int64, installationPrice float64) error {
	body := map[string]any{"productId": productID, "installationPrice": installationPrice}
	return c.do(ctx, http.MethodPost, "/technician", nil, body, nil)
}

// RemoveProductFromTechnician withdraws the technician's offer.
func (c *Client) RemoveProductFromTechnician(ctx context.Context, productID int64) error {
	query := url.Values{"productId": {strconv.FormatInt(productID, 10)}}
	return c.do(ctx, http.MethodDelete, "/technician", query, nil, nil)
}
