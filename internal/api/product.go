package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// GetProducts lists the full catalog.
func (c *Client) GetProducts(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	if err := c.do(ctx, http.MethodGet, "/product", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLatestThreeProducts lists the newest catalog entries for the
// landing view.
func (c *Client) GetLatestThreeProducts(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	if err := c.do(ctx, http.MethodGet, "/product/latest-three-products", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProductByID fetches a single catalog entry.
func (c *Client) GetProductByID(ctx context.Context, productID int64) (*model.Product, error) {
	query := url.Values{"productId": {strconv.FormatInt(productID, 10)}}
	out := model.Product{}
	if err := c.do(ctx, http.MethodGet, "/product/product-by-id", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
