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

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.41&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max&hourly=temperature_2m,precipitation,weather_code&timezone=auto&forecast_days=1
type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewForecastClient wires the shared session client against the forecast
// endpoint.
func NewForecastClient(client *http.Client, baseURL string) *ForecastClient {
	return &ForecastClient{
		httpClient: client,
		baseURL:    baseURL,
	}
}

// GetForecast fetches the forecast for the given coordinates. The day
// count controls how many entries the daily arrays carry; hourly arrays
// carry 24 entries per day. Timezone resolution happens upstream.
func (c *ForecastClient) GetForecast(latitude, longitude float64, forecastDays int) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"wind_speed_10m_max",
	}

	hourlyVars := []string{
		"temperature_2m",
		"precipitation",
		"weather_code",
	}

	q := u.Query()

	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))

	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

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

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, httpclient.NewDecodeError(err)
	}

	return &apiResp, nil
}
