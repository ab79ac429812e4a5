package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"wetter-cli/internal/app"
	"wetter-cli/internal/apperr"
	"wetter-cli/internal/cli"
	"wetter-cli/internal/config"
	"wetter-cli/internal/lang"
	"wetter-cli/internal/types"
)

func main() {
	os.Exit(run())
}

// run carries the whole program so deferred cleanup still happens before the
// process exits.
func run() int {
	opts, err := cli.Parse(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return apperr.ExitOK
		}
		return apperr.ExitInvalidInput
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	application := app.New(cfg, opts.Language, logger)
	defer application.Close()

	err = application.Run(app.Request{
		Query: types.LocationQuery{
			Name:        opts.Location,
			PostalCode:  opts.PostalCode,
			CountryCode: opts.CountryCode,
		},
		Days:       opts.Days,
		JSONOutput: opts.JSONOutput,
	}, os.Stdout)
	if err != nil {
		return reportError(err, lang.For(opts.Language))
	}

	return apperr.ExitOK
}

// reportError writes a failure to stderr and maps it to the exit code.
// Ambiguity notices come as bare lines followed by their hint; everything
// else gets the localized error prefix.
func reportError(err error, catalog lang.Catalog) int {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Kind == apperr.Ambiguous {
		fmt.Fprintln(os.Stderr, appErr.Message)
		if appErr.Hint != "" {
			fmt.Fprintln(os.Stderr, appErr.Hint)
		}
		return apperr.ExitAmbiguous
	}

	fmt.Fprintf(os.Stderr, "%s: %s\n", catalog.Error, err.Error())
	return apperr.Code(err)
}
