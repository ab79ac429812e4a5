package weather

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"wetter-cli/internal/apperr"
	"wetter-cli/internal/config"
	"wetter-cli/internal/httpclient"
	"wetter-cli/internal/lang"
	"wetter-cli/internal/providers/openmeteo"
	"wetter-cli/internal/types"
)

// ForecastProvider defines the interface for forecast data providers
type ForecastProvider interface {
	// GetForecast fetches the weather forecast for the given latitude, longitude, and day count
	GetForecast(latitude, longitude float64, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetForecast(coords types.Coords, days int) (*Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	catalog          lang.Catalog
	logger           *slog.Logger
}

// NewWeatherService creates a new weather service with the real forecast client
func NewWeatherService(client *http.Client, cfg *config.Config, language lang.Language, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openmeteo.NewForecastClient(client, cfg.Endpoints.Forecast), language, logger)
}

// NewWeatherServiceWithProvider creates a new weather service with a custom provider
// This is useful for testing with mock providers
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	language lang.Language,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		catalog:          lang.For(language),
		logger:           logger.With("component", "weather-service"),
	}
}

// GetForecast fetches the forecast and validates that both the daily and
// hourly sections came back. A response missing either is unusable no
// matter how well-formed the rest is.
func (s *weatherService) GetForecast(coords types.Coords, days int) (*Forecast, error) {
	s.logger.Debug("fetching forecast", "coords", coords.String(), "days", days)

	apiResponse, err := s.forecastProvider.GetForecast(coords.Latitude, coords.Longitude, days)
	if err != nil {
		s.logger.Debug("failed to get forecast from provider", "error", err)
		return nil, s.requestError(err)
	}

	if apiResponse.Daily == nil || apiResponse.Hourly == nil {
		s.logger.Debug("forecast response incomplete",
			"has_daily", apiResponse.Daily != nil,
			"has_hourly", apiResponse.Hourly != nil,
		)
		return nil, apperr.New(apperr.IncompleteData, s.catalog.IncompleteData)
	}

	s.logger.Debug("forecast received",
		"daily_entries", len(apiResponse.Daily.Time),
		"hourly_entries", len(apiResponse.Hourly.Time),
		"timezone", apiResponse.Timezone,
	)

	return mapForecastAPIResponseToForecast(apiResponse), nil
}

// requestError maps a provider failure onto the localized terminal error
// for the forecast stage.
func (s *weatherService) requestError(err error) *apperr.Error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return apperr.Wrap(apperr.HTTPStatus, fmt.Sprintf("%s: %d", s.catalog.APIError, statusErr.StatusCode), err)
	}
	var decodeErr *httpclient.DecodeError
	if errors.As(err, &decodeErr) {
		return apperr.Wrap(apperr.MalformedBody, s.catalog.InvalidResponse, err)
	}
	switch httpclient.Classify(err) {
	case httpclient.FailTimeout:
		return apperr.Wrap(apperr.Timeout, s.catalog.TimeoutWeather, err)
	case httpclient.FailConnection:
		return apperr.Wrap(apperr.ConnectionFailure, s.catalog.NoConnection, err)
	default:
		return apperr.Wrap(apperr.ConnectionFailure, fmt.Sprintf("%s: %v", s.catalog.RequestError, err), err)
	}
}

func mapForecastAPIResponseToForecast(apiResponse *openmeteo.ForecastAPIResponse) *Forecast {
	return &Forecast{
		Daily: DailySeries{
			Dates:            apiResponse.Daily.Time,
			WeatherCodes:     apiResponse.Daily.WeatherCode,
			TemperatureMax:   apiResponse.Daily.Temperature2mMax,
			TemperatureMin:   apiResponse.Daily.Temperature2mMin,
			PrecipitationSum: apiResponse.Daily.PrecipitationSum,
			WindSpeedMax:     apiResponse.Daily.WindSpeed10mMax,
		},
		Hourly: HourlySeries{
			Times:         apiResponse.Hourly.Time,
			Temperatures:  apiResponse.Hourly.Temperature2m,
			Precipitation: apiResponse.Hourly.Precipitation,
			WeatherCodes:  apiResponse.Hourly.WeatherCode,
		},
	}
}
