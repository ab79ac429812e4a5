package location

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"wetter-cli/internal/apperr"
	"wetter-cli/internal/config"
	"wetter-cli/internal/httpclient"
	"wetter-cli/internal/lang"
	"wetter-cli/internal/providers/openmeteo"
	"wetter-cli/internal/providers/openstreetmap"
	"wetter-cli/internal/types"
)

// Service resolves a location query to coordinates and a display name
type Service interface {
	// Resolve picks the search strategy from the query and returns the
	// single location a run proceeds with
	Resolve(query types.LocationQuery) (types.ResolvedLocation, error)
}

// NameSearchProvider defines the interface for name geocoding providers
type NameSearchProvider interface {
	Search(name, countryCode, language string) (*openmeteo.SearchAPIResponse, error)
}

// PostalSearchProvider defines the interface for postal code search providers
type PostalSearchProvider interface {
	SearchPostalCode(postalCode, countryCode string) ([]openstreetmap.SearchAPIResult, error)
}

// locationService implements the Service interface
type locationService struct {
	nameProvider   NameSearchProvider
	postalProvider PostalSearchProvider
	language       lang.Language
	catalog        lang.Catalog
	logger         *slog.Logger
}

// NewLocationService creates a new location service with real provider clients
func NewLocationService(client *http.Client, cfg *config.Config, language lang.Language, logger *slog.Logger) Service {
	return &locationService{
		nameProvider:   openmeteo.NewGeocodingClient(client, cfg.Endpoints.Geocoding),
		postalProvider: openstreetmap.NewClient(client, cfg.Endpoints.Nominatim, cfg.HTTP.NominatimInterval),
		language:       language,
		catalog:        lang.For(language),
		logger:         logger.With("component", "location"),
	}
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	nameProvider NameSearchProvider,
	postalProvider PostalSearchProvider,
	language lang.Language,
	logger *slog.Logger,
) Service {
	return &locationService{
		nameProvider:   nameProvider,
		postalProvider: postalProvider,
		language:       language,
		catalog:        lang.For(language),
		logger:         logger.With("component", "location"),
	}
}

// Resolve picks the resolution strategy. A postal code always wins over
// a name; the caller has already warned about a discarded name.
func (s *locationService) Resolve(query types.LocationQuery) (types.ResolvedLocation, error) {
	if query.ByPostalCode() {
		return s.resolvePostalCode(query)
	}
	return s.resolveName(query)
}

func (s *locationService) resolveName(query types.LocationQuery) (types.ResolvedLocation, error) {
	name := strings.TrimSpace(query.Name)
	s.logger.Debug("searching location by name", "name", name, "country", query.CountryCode)

	resp, err := s.nameProvider.Search(name, query.CountryCode, s.language.String())
	if err != nil {
		return types.ResolvedLocation{}, s.requestError(err, s.catalog.TimeoutLocation)
	}

	results := resp.Results
	if len(results) == 0 {
		return types.ResolvedLocation{}, apperr.New(apperr.NotFound, s.catalog.LocationNotFound(name))
	}

	// Multiple hits on identical coordinates are duplicate registry
	// entries, not ambiguity.
	if len(results) > 1 && anyCoordinateDiffers(results) {
		s.logger.Debug("name is ambiguous", "name", name, "results", len(results))
		return types.ResolvedLocation{}, apperr.NewAmbiguous(
			s.catalog.AmbiguousName(name),
			"  "+s.catalog.UsePostal,
		)
	}

	first := results[0]
	if first.Latitude == nil || first.Longitude == nil {
		return types.ResolvedLocation{}, apperr.New(apperr.MissingCoordinates, s.catalog.MissingCoords)
	}

	displayName := first.Name
	if displayName == "" {
		displayName = name
	}
	displayName = types.JoinNameParts(displayName, first.Country)

	resolved := types.NewResolvedLocation(*first.Latitude, *first.Longitude, displayName)
	s.logger.Debug("resolved location", "coords", resolved.Coordinates.String(), "display_name", displayName)
	return resolved, nil
}

func (s *locationService) resolvePostalCode(query types.LocationQuery) (types.ResolvedLocation, error) {
	s.logger.Debug("searching location by postal code", "postal_code", query.PostalCode, "country", query.CountryCode)

	results, err := s.postalProvider.SearchPostalCode(query.PostalCode, query.CountryCode)
	if err != nil {
		return types.ResolvedLocation{}, s.requestError(err, s.catalog.TimeoutPostal)
	}

	if len(results) == 0 {
		return types.ResolvedLocation{}, apperr.New(apperr.NotFound, s.catalog.PostalNotFound(query.PostalCode))
	}

	// Without a country filter the same postal code may exist in several
	// countries; that needs the caller to narrow down.
	if query.CountryCode == "" && len(results) > 1 {
		if countries := distinctCountries(results); len(countries) > 1 {
			s.logger.Debug("postal code is ambiguous", "postal_code", query.PostalCode, "countries", countries)
			return types.ResolvedLocation{}, apperr.NewAmbiguous(
				s.catalog.AmbiguousPostal(query.PostalCode, strings.Join(countries, ", ")),
				s.catalog.UseCountry(query.PostalCode),
			)
		}
	}

	first := results[0]
	lat, latErr := strconv.ParseFloat(first.Lat, 64)
	lon, lonErr := strconv.ParseFloat(first.Lon, 64)
	if latErr != nil || lonErr != nil {
		return types.ResolvedLocation{}, apperr.New(apperr.MissingCoordinates, s.catalog.MissingCoords)
	}

	postal := first.Address.Postcode
	if postal == "" {
		postal = query.PostalCode
	}
	locality := strings.TrimSpace(postal + " " + first.Address.Locality())
	displayName := types.JoinNameParts(locality, first.Address.Country)

	resolved := types.NewResolvedLocation(lat, lon, displayName)
	s.logger.Debug("resolved location", "coords", resolved.Coordinates.String(), "display_name", displayName)
	return resolved, nil
}

// requestError maps a provider failure onto the localized terminal error
// for this stage.
func (s *locationService) requestError(err error, timeoutMessage string) *apperr.Error {
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
		return apperr.Wrap(apperr.Timeout, timeoutMessage, err)
	case httpclient.FailConnection:
		return apperr.Wrap(apperr.ConnectionFailure, s.catalog.NoConnection, err)
	default:
		return apperr.Wrap(apperr.ConnectionFailure, fmt.Sprintf("%s: %v", s.catalog.RequestError, err), err)
	}
}

// anyCoordinateDiffers reports whether any result deviates from the first
// result's coordinates.
func anyCoordinateDiffers(results []openmeteo.SearchResult) bool {
	first := results[0]
	for _, r := range results[1:] {
		if !floatPtrEqual(r.Latitude, first.Latitude) || !floatPtrEqual(r.Longitude, first.Longitude) {
			return true
		}
	}
	return false
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// distinctCountries collects the uppercased country codes across all
// results, sorted for stable output. A result without a country code
// contributes an empty entry.
func distinctCountries(results []openstreetmap.SearchAPIResult) []string {
	seen := make(map[string]struct{})
	for _, r := range results {
		seen[strings.ToUpper(r.Address.CountryCode)] = struct{}{}
	}
	countries := make([]string, 0, len(seen))
	for c := range seen {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}
