package usersapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/99minutos/user-directory/internal/core/domain"
)

// Client reads users.json over HTTP.
type Client struct {
	http *http.Client
}

// NewClient wraps hc, or http.DefaultClient when hc is nil. No timeout is
// applied here; callers bound requests through ctx.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{http: hc}
}

// GetUsers issues a GET against uri and decodes the JSON array it returns.
func (c *Client) GetUsers(ctx context.Context, uri string) ([]domain.RawUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: %w: %d", uri, domain.ErrUpstreamStatus, resp.StatusCode)
	}

	var users []domain.RawUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", uri, domain.ErrMalformedPayload, err)
	}
	if users == nil {
		return nil, fmt.Errorf("decode %s: %w: expected an array", uri, domain.ErrMalformedPayload)
	}
	return users, nil
}
