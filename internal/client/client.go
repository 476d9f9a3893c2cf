// Package client talks to the fleetdesk HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fleetdesk/internal/models"
	"fleetdesk/internal/store"
)

// Client implements the company and driver operations over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Unwrap lets callers match the store sentinels with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return store.ErrNotFound
	case http.StatusConflict:
		return store.ErrDuplicateLicense
	}
	return nil
}

// do sends body as JSON and decodes the value under key of the response envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, key string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope map[string]json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &envelope); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var msg string
		if raw, ok := envelope["error"]; ok && json.Unmarshal(raw, &msg) == nil {
			apiErr.Message = msg
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	raw, ok := envelope[key]
	if !ok {
		return fmt.Errorf("%s %s: response has no %q field", method, path, key)
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var out []models.Company
	err := c.do(ctx, http.MethodGet, "/api/companies", nil, "data", &out)
	return out, err
}

func (c *Client) CreateCompany(ctx context.Context, in models.CompanyInput) (models.Company, error) {
	var out models.Company
	err := c.do(ctx, http.MethodPost, "/api/companies", in, "company", &out)
	return out, err
}

func (c *Client) UpdateCompany(ctx context.Context, id uint, patch models.CompanyPatch) (models.Company, error) {
	var out models.Company
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/companies/%d", id), patch, "company", &out)
	return out, err
}

func (c *Client) DeleteCompany(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/companies/%d", id), nil, "", nil)
}

func (c *Client) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var out []models.Driver
	err := c.do(ctx, http.MethodGet, "/api/drivers", nil, "data", &out)
	return out, err
}

func (c *Client) CreateDriver(ctx context.Context, in models.DriverInput) (models.Driver, error) {
	var out models.Driver
	err := c.do(ctx, http.MethodPost, "/api/drivers", in, "driver", &out)
	return out, err
}

func (c *Client) UpdateDriver(ctx context.Context, id uint, patch models.DriverPatch) (models.Driver, error) {
	var out models.Driver
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/drivers/%d", id), patch, "driver", &out)
	return out, err
}

func (c *Client) DeleteDriver(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/drivers/%d", id), nil, "", nil)
}
