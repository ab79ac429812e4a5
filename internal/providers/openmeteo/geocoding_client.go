package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"wetter-cli/internal/httpclient"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Berlin&count=5&language=de&countryCode=DE
const (
	searchResultLimit = 5
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewGeocodingClient wires the shared session client against the search
// endpoint.
func NewGeocodingClient(client *http.Client, baseURL string) *GeocodingClient {
	return &GeocodingClient{
		httpClient: client,
		baseURL:    baseURL,
	}
}

// Search looks up candidate places for a name. The country code filter
// is optional; language selects localized place names.
func (c *GeocodingClient) Search(name, countryCode, language string) (*SearchAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(searchResultLimit))
	q.Set("language", language)
	if countryCode != "" {
		q.Set("countryCode", strings.ToUpper(countryCode))
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
	var apiResp SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, httpclient.NewDecodeError(err)
	}

	return &apiResp, nil
}
