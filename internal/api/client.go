package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/homecraft/homecraft-cli/internal/logger"
	"github.com/homecraft/homecraft-cli/internal/model"
)

// Client issues JSON requests against the HomeCraft backend. A bearer
// header is attached when the credential store holds a valid unexpired
// token; otherwise the stale token entries are purged and the request
// goes out unauthenticated.
type Client struct {
	baseURL string
	http    *http.Client
	creds   model.CredentialStore
	logger  *logger.Logger
	now     func() time.Time
}

// NewClient creates a backend client. A zero timeout means no
// client-side deadline.
func NewClient(baseURL string, timeout time.Duration, creds model.CredentialStore, logger *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		logger:  logger,
		now:     time.Now,
	}
}

// errorPayload is the backend's failure envelope.
type errorPayload struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return &model.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &model.NetworkError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	return nil
}

// attachBearer mirrors the browser client's request interceptor: a
// valid token rides along, an expired one is removed from storage so
// no request ever carries stale credentials.
func (c *Client) attachBearer(req *http.Request) {
	tok, expiresAt, err := c.creds.Token()
	if err != nil {
		c.logger.Error("failed to read stored token", "error", err)
		return
	}
	if tok == "" {
		return
	}

	if expiresAt != 0 && c.now().UnixMilli() < expiresAt {
		req.Header.Set("Authorization", "Bearer "+tok)
		return
	}

	if err := c.creds.ClearToken(); err != nil {
		c.logger.Error("failed to purge expired token", "error", err)
	}
}

func (c *Client) decodeError(resp *http.Response) error {
	payload := errorPayload{}
	// A non-JSON error body falls through to the generic message.
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	if len(payload.Errors) > 0 {
		for field, messages := range payload.Errors {
			if len(messages) > 0 {
				return &model.ValidationError{Field: field, Message: messages[0]}
			}
		}
	}

	netErr := &model.NetworkError{StatusCode: resp.StatusCode, Message: payload.Message}
	if resp.StatusCode == http.StatusUnauthorized {
		netErr.Err = model.ErrAuthExpired
	}
	return netErr
}
