package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/homecraft/homecraft-cli/internal/model"
)

var _ model.ChatAPI = (*Client)(nil)

type chatResponse struct {
	Result string `json:"result"`
}

// SendMessage sends a prompt to the assistant and returns its reply.
func (c *Client) SendMessage(ctx context.Context, prompt string) (string, error) {
	query := url.Values{"prompt": {prompt}}
	out := chatResponse{}
	if err := c.do(ctx, http.MethodGet, "/ChatBot/chat", query, nil, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}
