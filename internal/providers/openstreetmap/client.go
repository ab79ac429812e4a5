package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"wetter-cli/internal/httpclient"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?postalcode=10115&format=json&addressdetails=1&limit=10
const (
	postalResultLimit = 10
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient wires the shared session client against the search endpoint.
// minInterval spaces successive requests; the public Nominatim instance
// allows at most one per second. Zero disables the spacing.
func NewClient(client *http.Client, baseURL string, minInterval time.Duration) *Client {
	return &Client{
		httpClient: client,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// SearchPostalCode looks up places carrying a postal code. The country
// code filter is optional and lowercased on the wire.
func (c *Client) SearchPostalCode(postalCode, countryCode string) ([]SearchAPIResult, error) {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to pace request: %w", err)
	}

	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("postalcode", postalCode)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", strconv.Itoa(postalResultLimit))
	if countryCode != "" {
		q.Set("countrycodes", strings.ToLower(countryCode))
	}
	u.RawQuery = q.Encode()

	// Make the HTTP request
	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &httpclient.StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Parse the JSON response
	var apiResp []SearchAPIResult
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, httpclient.NewDecodeError(err)
	}

	return apiResp, nil
}
