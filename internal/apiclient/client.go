// Package apiclient provides an HTTP client for the client-tracker JSON API.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/evcraddock/client-tracker/internal/client"
	"github.com/evcraddock/client-tracker/internal/export"
)

// ErrNotFound is returned when the server answers 404.
var ErrNotFound = errors.New("client not found")

// DefaultTimeout applies when New is given a non-positive timeout.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP client for the client-tracker API.
type Client struct {
	http *resty.Client
}

// New creates a new API client for the server at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: cli}
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListClients returns clients matching search, optionally only those due
// today, together with today's follow-up count.
func (c *Client) ListClients(ctx context.Context, search string, today bool) (*client.ListResult, error) {
	req := c.http.R().SetContext(ctx)
	if search != "" {
		req.SetQueryParam("q", search)
	}
	if today {
		req.SetQueryParam("today", "1")
	}

	var result client.ListResult
	resp, err := req.SetResult(&result).SetError(&errorResponse{}).Get("/api/clients")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetClient returns a single client.
func (c *Client) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	var out client.Client
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&out).
		SetError(&errorResponse{}).
		Get("/api/clients/{id}")
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddClient creates a client.
func (c *Client) AddClient(ctx context.Context, in client.Input) (*client.Client, error) {
	var out client.Client
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&out).
		SetError(&errorResponse{}).
		Post("/api/clients")
	if err != nil {
		return nil, fmt.Errorf("add request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient replaces the editable fields of a client. A blank
// NextFollow keeps the stored date.
func (c *Client) UpdateClient(ctx context.Context, id int64, in client.Input) (*client.Client, error) {
	var out client.Client
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		SetResult(&out).
		SetError(&errorResponse{}).
		Put("/api/clients/{id}")
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes a client.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetError(&errorResponse{}).
		Delete("/api/clients/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return mapHTTPError(resp)
}

// Export downloads every client in the given format.
func (c *Client) Export(ctx context.Context, format export.Format) ([]byte, error) {
	path := "/export_csv"
	if format == export.FormatXLSX {
		path = "/export_excel"
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", format.ContentType()).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	if e, ok := resp.Error().(*errorResponse); ok && e.Error != "" {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), e.Error)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
