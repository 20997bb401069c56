// Package lookup talks to the person-search provider that maps a phone
// number or email address to national identifiers.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"encore.dev/rlog"

	"encore.app/enrichment/model"
)

//go:generate mockgen -source=./client.go -destination=../../mocks/integrations/lookup_client/client.go -package=lookup_client

type Client interface {
	SearchByPhone(ctx context.Context, phone string) ([]model.LookupCandidate, error)
	SearchByEmail(ctx context.Context, email string) ([]model.LookupCandidate, error)
}

type client struct {
	http     *http.Client
	baseURL  string
	username string
	password string
}

func NewClient(baseURL, username, password string) Client {
	return &client{
		http:     &http.Client{Timeout: 30 * time.Second},
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
	}
}

// SearchByPhone looks up candidates for a phone number. The provider expects
// the national number without the country code, so a leading 55 is stripped.
func (c *client) SearchByPhone(ctx context.Context, phone string) ([]model.LookupCandidate, error) {
	cleaned := strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(cleaned, "55") && len(cleaned) > 2 {
		cleaned = cleaned[2:]
	}
	return c.search(ctx, "/Consultas/Pessoa/Telefone/"+url.PathEscape(cleaned))
}

func (c *client) SearchByEmail(ctx context.Context, email string) ([]model.LookupCandidate, error) {
	return c.search(ctx, "/Consultas/Pessoa/Email/"+url.PathEscape(email))
}

func (c *client) search(ctx context.Context, path string) ([]model.LookupCandidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup: build request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("lookup: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var results []model.LookupCandidate
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("lookup: decode response: %w", err)
	}

	rlog.Debug("lookup search completed", "path", path, "matches", len(results))
	return results, nil
}
