package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/homecraft/homecraft-cli/internal/model"
)

// GetReviews lists reviews for a product.
func (c *Client) GetReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	query := url.Values{"productId": {strconv.FormatInt(productID, 10)}}
	out := []model.Review{}
	if err := c.do(ctx, http.MethodGet, "/review/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PostReview creates a review.
func (c *Client) PostReview(ctx context.Context, review model.Review) error {
	return c.do(ctx, http.MethodPost, "/review", nil, review, nil)
}

// EditReview updates an existing review.
func (c *Client) EditReview(ctx context.Context, review model.Review) error {
	return c.do(ctx, http.MethodPatch, "/review", nil, review, nil)
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, reviewID int64) error {
	query := url.Values{"reviewId": {strconv.FormatInt(reviewID, 10)}}
	return c.do(ctx, http.MethodDelete, "/review/", query, nil, nil)
}
