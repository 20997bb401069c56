// Package workapi talks to the profile enrichment provider. A full-profile
// fetch uses modulo=cpf, which returns every section at the root of the
// response object.
package workapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encore.dev/rlog"
)

//go:generate mockgen -source=./client.go -destination=../../mocks/integrations/workapi_client/client.go -package=workapi_client

// The response schema is owned by the provider, so the client hands back raw
// JSON and leaves interpretation to the caller.
type Client interface {
	FetchAll(ctx context.Context, identifier string) ([]byte, error)
	FetchModule(ctx context.Context, module, identifier string) ([]byte, error)
}

type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(baseURL, token string) Client {
	return &client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

func (c *client) FetchAll(ctx context.Context, identifier string) ([]byte, error) {
	return c.fetch(ctx, "cpf", identifier)
}

func (c *client) FetchModule(ctx context.Context, module, identifier string) ([]byte, error) {
	return c.fetch(ctx, module, identifier)
}

func (c *client) fetch(ctx context.Context, module, identifier string) ([]byte, error) {
	params := url.Values{}
	params.Set("token", c.token)
	params.Set("modulo", module)
	params.Set("consulta", identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("workapi: build request: %w", err)
	}

	rlog.Debug("fetching enrichment data", "module", module)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("workapi: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("workapi: read response: %w", err)
	}
	return body, nil
}
