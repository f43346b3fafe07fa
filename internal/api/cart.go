package api

import (
	"context"
	"net/http"

	"github.com/homecraft/homecraft-cli/internal/model"
)

var _ model.CartAPI = (*Client)(nil)

type cartResponse struct {
	Result struct {
		CartProducts []model.CartProduct `json:"cartProducts"`
	} `json:"result"`
}

type cartItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity,omitempty"`
}

// GetCart fetches the server-side cart.
func (c *Client) GetCart(ctx context.Context) ([]model.CartProduct, error) {
	out := cartResponse{}
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Result.CartProducts, nil
}

// AddToCart adds quantity units of a product to the server cart.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	return c.do(ctx, http.MethodPost, "/cart/add", nil, cartItemRequest{ProductID: productID, Quantity: quantity}, nil)
}

// RemoveFromCart removes one unit of a product from the server cart.
func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, "/cart/remove", nil, cartItemRequest{ProductID: productID}, nil)
}

// UpdateCart sets the quantity of a product in the server cart.
func (c *Client) UpdateCart(ctx context.Context, productID int64, quantity int) error {
	return c.do(ctx, http.MethodPut, "/cart", nil, cartItemRequest{ProductID: productID, Quantity: quantity}, nil)
}
