// Package apiclient is a typed client for the ledger REST API. Every
// call issues one independent request; failures are terminal and left
// to the caller to retry.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the server has no record for the id.
var ErrNotFound = errors.New("transaction not found")

// APIError is any non-404 failure the server reported through the
// response envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API rooted at baseURL (for example
// "http://localhost:8080"). A nil httpClient falls back to a default
// with a 15s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	var transactions []Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (c *Client) Transaction(ctx context.Context, id string) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodGet, "/api/transactions/"+id, nil, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) Create(ctx context.Context, input TransactionInput) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodPost, "/api/transactions", input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) Update(ctx context.Context, id string, input TransactionInput) (*Transaction, error) {
	var transaction Transaction
	if err := c.do(ctx, http.MethodPut, "/api/transactions/"+id, input, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/transactions/"+id, nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}

	return nil
}
