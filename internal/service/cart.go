package service

import (
	"context"
	"fmt"

	"github.com/homecraft/homecraft-cli/internal/logger"
	"github.com/homecraft/homecraft-cli/internal/model"
)

// Cart reconciles the server-authoritative cart with the in-memory
// user snapshot. Mutations are optimistic: memory is updated around
// the server call without rollback, and the next successful Fetch
// closes any inconsistency window.
type Cart struct {
	session *model.Session
	api     model.CartAPI
	logger  *logger.Logger
}

func NewCart(session *model.Session, api model.CartAPI, logger *logger.Logger) *Cart {
	return &Cart{session: session, api: api, logger: logger}
}

// Fetch returns the server-side cart, or an empty list on any failure.
// "Not found" only differs from other failures in how it is logged.
func (c *Cart) Fetch(ctx context.Context) []model.CartProduct {
	items, err := c.api.GetCart(ctx)
	if err != nil {
		if model.IsNotFound(err) {
			c.logger.Debug("Cart service: cart not found")
		} else {
			c.logger.Error("Cart service: failed to fetch cart", "error", err)
		}
		return []model.CartProduct{}
	}
	if items == nil {
		items = []model.CartProduct{}
	}
	return items
}

// Add puts quantity units of a product into the cart. The in-memory
// snapshot is updated once the server call returns: an existing line
// is incremented, otherwise a new line is appended. A quantity below 1
// defaults to 1. Returns performed == false without mutation when the
// session is unauthenticated.
func (c *Cart) Add(ctx context.Context, productID int64, quantity int) (bool, error) {
	if !c.session.IsAuthenticated || c.session.User == nil {
		return false, nil
	}
	if quantity < 1 {
		quantity = 1
	}

	if err := c.api.AddToCart(ctx, productID, quantity); err != nil {
		return false, fmt.Errorf("failed to add product %d to cart: %w", productID, err)
	}

	products := c.session.User.CartProducts
	for i := range products {
		if products[i].ProductID == productID {
			products[i].Quantity += quantity
			return true, nil
		}
	}
	c.session.User.CartProducts = append(products, model.CartProduct{ProductID: productID, Quantity: quantity})
	return true, nil
}

// Remove takes one unit of a product out of the cart. The in-memory
// line is decremented, or deleted when it would reach zero, before the
// server call is issued; a server failure is reported but the local
// change is not rolled back. Returns performed == false without
// mutation when the session is unauthenticated.
func (c *Cart) Remove(ctx context.Context, productID int64) (bool, error) {
	if !c.session.IsAuthenticated || c.session.User == nil {
		return false, nil
	}

	products := c.session.User.CartProducts
	for i := range products {
		if products[i].ProductID != productID {
			continue
		}
		if products[i].Quantity > 1 {
			products[i].Quantity--
		} else {
			c.session.User.CartProducts = append(products[:i], products[i+1:]...)
		}
		break
	}

	if err := c.api.RemoveFromCart(ctx, productID); err != nil {
		return true, fmt.Errorf("failed to remove product %d from cart: %w", productID, err)
	}
	return true, nil
}

// Update sets a product's quantity on the server without touching the
// in-memory snapshot; callers re-sync via Fetch. Returns
// performed == false when the session is unauthenticated.
func (c *Cart) Update(ctx context.Context, productID int64, quantity int) (bool, error) {
	if !c.session.IsAuthenticated {
		return false, nil
	}

	if err := c.api.UpdateCart(ctx, productID, quantity); err != nil {
		return true, fmt.Errorf("failed to update product %d in cart: %w", productID, err)
	}
	return true, nil
}
