// Package cli parses command line arguments into an Options value. The flag
// surface keeps its German canonical names with English long aliases, and the
// help text is localized through the language catalog.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"wetter-cli/internal/lang"
)

const (
	minForecastDays = 1
	maxForecastDays = 16
)

// ErrHelp reports that the help text was requested and has been printed.
var ErrHelp = pflag.ErrHelp

// ErrUsage reports that argument diagnostics have been printed and the run
// should stop with the invalid input exit code.
var ErrUsage = errors.New("invalid arguments")

// Options is the normalized result of argument parsing.
type Options struct {
	Location    string
	PostalCode  string
	CountryCode string
	Days        int
	JSONOutput  bool
	Language    lang.Language
}

// Parse processes command line arguments. Help goes to stdout and
// diagnostics to stderr; once anything was printed the returned error is
// ErrHelp or ErrUsage and the caller only has to map it to an exit code.
func Parse(arguments []string, stdout, stderr io.Writer) (*Options, error) {
	// The language flag is scanned before real parsing so the help and
	// usage texts already come out localized.
	catalog := lang.For(scanLanguage(arguments))

	opts := &Options{}

	fs := pflag.NewFlagSet("wetter", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.SetNormalizeFunc(normalizeAliases)

	fs.StringVarP(&opts.PostalCode, "plz", "p", "", catalog.HelpPostal)
	fs.StringVarP(&opts.CountryCode, "land", "l", "", catalog.HelpCountry)
	fs.IntVarP(&opts.Days, "tage", "t", 1, catalog.HelpDays)
	fs.BoolVarP(&opts.JSONOutput, "json", "j", false, catalog.HelpJSON)
	languageFlag := fs.StringP("lang", "L", lang.Default.String(), catalog.HelpLang)

	if err := fs.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(stdout, helpText(fs, catalog))
			return nil, ErrHelp
		}
		return nil, usageError(stderr, err.Error())
	}

	language, err := lang.Parse(*languageFlag)
	if err != nil {
		return nil, usageError(stderr, err.Error())
	}
	opts.Language = language

	if opts.Days < minForecastDays || opts.Days > maxForecastDays {
		return nil, usageError(stderr, fmt.Sprintf(
			"invalid argument %d for --tage: must be between %d and %d",
			opts.Days, minForecastDays, maxForecastDays))
	}

	if fs.NArg() > 1 {
		return nil, usageError(stderr, fmt.Sprintf(
			"unrecognized arguments: %s", strings.Join(fs.Args()[1:], " ")))
	}
	opts.Location = fs.Arg(0)

	if opts.Location == "" && opts.PostalCode == "" {
		fmt.Fprint(stdout, helpText(fs, catalog))
		return nil, ErrUsage
	}

	if opts.Location != "" && opts.PostalCode != "" {
		fmt.Fprintln(stderr, catalog.NotePostalUsed(opts.Location))
	}

	return opts, nil
}

// scanLanguage finds the first language flag before real parsing, so that a
// parse failure or help request still reports in the requested language.
// Invalid values keep the default, exactly as proper parsing would reject
// them later.
func scanLanguage(arguments []string) lang.Language {
	for i, argument := range arguments {
		if argument == "--lang" || argument == "-L" {
			if i+1 < len(arguments) {
				if parsed, err := lang.Parse(arguments[i+1]); err == nil {
					return parsed
				}
			}
			break
		}
		if value, found := strings.CutPrefix(argument, "--lang="); found {
			if parsed, err := lang.Parse(value); err == nil {
				return parsed
			}
			break
		}
	}
	return lang.Default
}

// normalizeAliases folds the English long flags onto their canonical names.
func normalizeAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "country":
		name = "land"
	case "days":
		name = "tage"
	}
	return pflag.NormalizedName(name)
}

func usageError(stderr io.Writer, message string) error {
	fmt.Fprintf(stderr, "wetter: %s\n", message)
	fmt.Fprint(stderr, usageLine())
	return ErrUsage
}

func usageLine() string {
	return "Usage: wetter [ort] [--plz PLZ] [--land CODE] [--tage N] [--json] [--lang de|en]\n"
}

func helpText(fs *pflag.FlagSet, catalog lang.Catalog) string {
	var b strings.Builder
	b.WriteString(usageLine())
	b.WriteString("\n")
	b.WriteString(catalog.Description)
	b.WriteString("\n\n")
	b.WriteString("Arguments:\n")
	b.WriteString("  ort   " + catalog.HelpLocation + "\n\n")
	b.WriteString("Flags:\n")
	b.WriteString(fs.FlagUsages())
	b.WriteString("\n")
	b.WriteString(catalog.Epilog)
	b.WriteString("\n")
	return b.String()
}
