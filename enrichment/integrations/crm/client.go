// Package crm talks to the CRM gateway that owns leads and their message
// threads.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -source=./client.go -destination=../../mocks/integrations/crm_client/client.go -package=crm_client

// Lead is the subset of the gateway's lead payload this service consumes.
type Lead struct {
	ID    string
	Name  string
	Phone *string
	Email *string
}

type Client interface {
	GetLead(ctx context.Context, leadID string) (*Lead, error)
	SendMessage(ctx context.Context, leadID, message string) error
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

func (c *client) GetLead(ctx context.Context, leadID string) (*Lead, error) {
	endpoint := c.baseURL + "/leads/" + url.PathEscape(leadID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("crm: build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm: get lead failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("crm: get lead returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Data struct {
			ID         json.Number `json:"id"`
			Attributes struct {
				Customer struct {
					Name  string  `json:"name"`
					Phone *string `json:"phone"`
					Email *string `json:"email"`
				} `json:"customer"`
			} `json:"attributes"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("crm: decode lead response: %w", err)
	}

	return &Lead{
		ID:    payload.Data.ID.String(),
		Name:  payload.Data.Attributes.Customer.Name,
		Phone: payload.Data.Attributes.Customer.Phone,
		Email: payload.Data.Attributes.Customer.Email,
	}, nil
}

func (c *client) SendMessage(ctx context.Context, leadID, message string) error {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return fmt.Errorf("crm: encode message: %w", err)
	}

	endpoint := c.baseURL + "/leads/" + url.PathEscape(leadID) + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("crm: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("crm: send message failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("crm: send message returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
