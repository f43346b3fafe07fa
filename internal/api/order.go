package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type checkoutResponse struct {
	Result struct {
		CheckoutURL string `json:"checkoutUrl"`
	} `json:"result"`
}

// CreateCheckoutSession starts a payment session for the current cart
// and returns the hosted checkout URL. promoCodePerc is the discount
// percentage of an applied promo code, 0 when none.
func (c *Client) CreateCheckoutSession(ctx context.Context, promoCodePerc int) (string, error) {
	query := url.Values{"promoCodePerc": {strconv.Itoa(promoCodePerc)}}
	out := checkoutResponse{}
	if err := c.do(ctx, http.MethodPost, "/order/create-checkout-session", query, nil, &out); err != nil {
		return "", err
	}
	return out.Result.CheckoutURL, nil
}
