// Package app wires the services together and drives one forecast run from
// resolved arguments to rendered output.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"wetter-cli/internal/config"
	"wetter-cli/internal/httpclient"
	"wetter-cli/internal/lang"
	"wetter-cli/internal/location"
	"wetter-cli/internal/render"
	"wetter-cli/internal/types"
	"wetter-cli/internal/weather"
)

// Request describes one forecast run.
type Request struct {
	Query      types.LocationQuery
	Days       int
	JSONOutput bool
}

// App owns the shared transport session and the services built on it.
type App struct {
	session  *httpclient.Session
	location location.Service
	weather  weather.Service
	language lang.Language
	logger   *slog.Logger
}

// New builds an App with its own transport session. Callers must Close it,
// also on error paths, so pooled connections are released deterministically.
func New(cfg *config.Config, language lang.Language, logger *slog.Logger) *App {
	session := httpclient.New(cfg.HTTP, logger)
	return &App{
		session:  session,
		location: location.NewLocationService(session.Client, cfg, language, logger),
		weather:  weather.NewWeatherService(session.Client, cfg, language, logger),
		language: language,
		logger:   logger.With("component", "app"),
	}
}

// Close releases the transport session.
func (a *App) Close() {
	a.session.Close()
}

// Run resolves the location, fetches the forecast, and writes the rendered
// result to stdout. Failures come back classified so the caller only maps
// them to exit codes.
func (a *App) Run(request Request, stdout io.Writer) error {
	resolved, err := a.location.Resolve(request.Query)
	if err != nil {
		return err
	}
	a.logger.Debug("location resolved",
		"display_name", resolved.DisplayName,
		"coordinates", resolved.Coordinates.String())

	forecast, err := a.weather.GetForecast(resolved.Coordinates, request.Days)
	if err != nil {
		return err
	}

	catalog := lang.For(a.language)
	if request.JSONOutput {
		document, err := render.JSON(forecast, resolved.DisplayName, catalog)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(stdout, document)
		return nil
	}

	fmt.Fprintln(stdout, render.Text(forecast, resolved.DisplayName, catalog))
	return nil
}
