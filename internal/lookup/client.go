// Package lookup talks to the ADSBDB callsign route API.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/Domenick1991/flighttracker/internal/domain"
)

type RouteFetcher interface {
	FetchRoute(ctx context.Context, identifier, date string) (*domain.RouteRecord, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a client-wide timeout. Zero keeps the default of none.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type routeResponse struct {
	Response struct {
		FlightRoute *domain.RouteRecord `json:"flightroute"`
	} `json:"response"`
}

// NormalizeIdentifier drops every whitespace rune and upper-cases the rest.
func NormalizeIdentifier(identifier string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, identifier)
	return strings.ToUpper(stripped)
}

// FetchRoute makes exactly one GET for the normalized identifier. The date is
// accepted for symmetry with the search form and is not sent.
func (c *Client) FetchRoute(ctx context.Context, identifier, date string) (*domain.RouteRecord, error) {
	key := NormalizeIdentifier(identifier)
	endpoint := c.baseURL + "/callsign/" + url.PathEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &NotFoundError{Identifier: identifier}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if body.Response.FlightRoute == nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Err: errors.New("response has no flightroute")}
	}
	return body.Response.FlightRoute, nil
}

var _ RouteFetcher = (*Client)(nil)
