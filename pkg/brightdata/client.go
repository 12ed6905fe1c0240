// Package brightdata provides a client for the Bright Data request proxy,
// which fetches arbitrary URLs through a configured unblocker zone.
package brightdata

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "https://api.brightdata.com"
	defaultZone    = "serp_api"
)

// Client fetches URLs through the Bright Data proxy.
type Client interface {
	// Fetch requests targetURL through the proxy zone and returns the raw
	// response body.
	Fetch(ctx context.Context, targetURL string) ([]byte, error)
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithZone overrides the default proxy zone.
func WithZone(zone string) Option {
	return func(c *httpClient) {
		c.zone = zone
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	zone    string
	http    *http.Client
}

// NewClient creates a Bright Data proxy client authenticated by bearer token.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		zone:    defaultZone,
		http: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type proxyRequest struct {
	Zone   string `json:"zone"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

func (c *httpClient) Fetch(ctx context.Context, targetURL string) ([]byte, error) {
	body, err := json.Marshal(proxyRequest{
		Zone:   c.zone,
		URL:    targetURL,
		Format: "raw",
	})
	if err != nil {
		return nil, eris.Wrap(err, "brightdata: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/request", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "brightdata: create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "brightdata: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "brightdata: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("brightdata: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
