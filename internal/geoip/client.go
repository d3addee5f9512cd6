package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public lookup service used when none is configured.
const DefaultEndpoint = "https://ipapi.co/json/"

const defaultUserAgent = "showroom/0.1"

// ErrNoCountry reports a payload that decoded but carried no country code.
var ErrNoCountry = errors.New("geoip response has no country code")

// Client resolves the caller's country from its public IP address.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for endpoint. A zero timeout leaves the request
// bounded only by the caller's context and the transport defaults.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint:  u,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the resolved lookup URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// Lookup fetches the full geolocation payload.
func (c *Client) Lookup(ctx context.Context) (Response, error) {
	if c == nil {
		return Response{}, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Response{}, fmt.Errorf("geoip %s returned status %d", c.endpoint.Host, resp.StatusCode)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Response{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.Error {
		reason := strings.TrimSpace(payload.Reason)
		if reason == "" {
			reason = "unspecified"
		}
		return Response{}, fmt.Errorf("geoip lookup refused: %s", reason)
	}
	return payload, nil
}

// LookupCountry returns the caller's ISO 3166-1 alpha-2 country code.
func (c *Client) LookupCountry(ctx context.Context) (string, error) {
	payload, err := c.Lookup(ctx)
	if err != nil {
		return "", err
	}
	code := payload.ISOCode()
	if code == "" {
		return "", ErrNoCountry
	}
	return code, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse geo endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse geo endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
