package lang

import (
	"fmt"
	"time"

	"wetter-cli/internal/types"
)

// Catalog bundles every translated string for one language. Fields that
// carry printf verbs are unexported and reached through methods so call
// sites cannot drop an argument.
type Catalog struct {
	weekdays [7]string
	weather  map[types.WeatherCode]string

	Error         string
	WeatherFor    string
	Condition     string
	Temperature   string
	Precipitation string
	WindMax       string
	Unknown       string
	To            string

	TimeoutLocation string
	TimeoutPostal   string
	TimeoutWeather  string
	NoConnection    string
	APIError        string
	RequestError    string
	InvalidResponse string
	MissingCoords   string
	IncompleteData  string

	locationNotFound string
	postalNotFound   string
	ambiguousName    string
	ambiguousPostal  string
	useCountry       string
	notePostalUsed   string
	UsePostal        string

	Description  string
	Epilog       string
	HelpLocation string
	HelpPostal   string
	HelpCountry  string
	HelpDays     string
	HelpJSON     string
	HelpLang     string
}

// For returns the catalog for l. Unknown values fall back to English so a
// Catalog is always usable.
func For(l Language) Catalog {
	if l == German {
		return german
	}
	return english
}

// Weekday translates a weekday name. The table is Monday-first while
// time.Weekday counts from Sunday.
func (c Catalog) Weekday(d time.Weekday) string {
	return c.weekdays[(int(d)+6)%7]
}

// WeatherDescription resolves a WMO code, falling back to the numeric code
// for values outside the catalog.
func (c Catalog) WeatherDescription(code types.WeatherCode) string {
	if desc, ok := c.weather[code]; ok {
		return desc
	}
	return fmt.Sprintf("Code %d", int(code))
}

func (c Catalog) LocationNotFound(name string) string {
	return fmt.Sprintf(c.locationNotFound, name)
}

func (c Catalog) PostalNotFound(postalCode string) string {
	return fmt.Sprintf(c.postalNotFound, postalCode)
}

func (c Catalog) AmbiguousName(name string) string {
	return fmt.Sprintf(c.ambiguousName, name)
}

func (c Catalog) AmbiguousPostal(postalCode, countries string) string {
	return fmt.Sprintf(c.ambiguousPostal, postalCode, countries)
}

func (c Catalog) UseCountry(postalCode string) string {
	return fmt.Sprintf(c.useCountry, postalCode)
}

func (c Catalog) NotePostalUsed(name string) string {
	return fmt.Sprintf(c.notePostalUsed, name)
}

var german = Catalog{
	weekdays: [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
	weather: map[types.WeatherCode]string{
		0:  "Klar",
		1:  "Überwiegend klar",
		2:  "Teilweise bewölkt",
		3:  "Bewölkt",
		45: "Nebel",
		48: "Nebel mit Reif",
		51: "Leichter Nieselregen",
		53: "Mäßiger Nieselregen",
		55: "Starker Nieselregen",
		56: "Gefrierender Nieselregen (leicht)",
		57: "Gefrierender Nieselregen (stark)",
		61: "Leichter Regen",
		63: "Mäßiger Regen",
		65: "Starker Regen",
		66: "Gefrierender Regen (leicht)",
		67: "Gefrierender Regen (stark)",
		71: "Leichter Schneefall",
		73: "Mäßiger Schneefall",
		75: "Starker Schneefall",
		77: "Schneegriesel",
		80: "Leichte Regenschauer",
		81: "Mäßige Regenschauer",
		82: "Starke Regenschauer",
		85: "Leichte Schneeschauer",
		86: "Starke Schneeschauer",
		95: "Gewitter",
		96: "Gewitter mit leichtem Hagel",
		99: "Gewitter mit starkem Hagel",
	},

	Error:         "Fehler",
	WeatherFor:    "Wetter für",
	Condition:     "Wetterlage",
	Temperature:   "Temperatur",
	Precipitation: "Niederschlag",
	WindMax:       "Wind (max)",
	Unknown:       "Unbekannt",
	To:            "bis",

	TimeoutLocation: "Zeitüberschreitung bei der Ortssuche.",
	TimeoutPostal:   "Zeitüberschreitung bei der PLZ-Suche.",
	TimeoutWeather:  "Zeitüberschreitung bei der Wetter-Anfrage.",
	NoConnection:    "Keine Verbindung zum Server.",
	APIError:        "API-Fehler",
	RequestError:    "Anfragefehler",
	InvalidResponse: "Ungültige Server-Antwort.",
	MissingCoords:   "Koordinaten fehlen.",
	IncompleteData:  "Unvollständige Wetterdaten.",

	locationNotFound: "Ort '%s' nicht gefunden.",
	postalNotFound:   "PLZ '%s' nicht gefunden.",
	ambiguousName:    "'%s' ist nicht eindeutig. Bitte PLZ verwenden:",
	ambiguousPostal:  "PLZ '%s' existiert in mehreren Ländern: %s",
	useCountry:       "Bitte mit --land eingrenzen, z.B.: wetter --plz %s --land DE",
	notePostalUsed:   "Hinweis: Ortsname '%s' wird ignoriert, verwende PLZ.",
	UsePostal:        "wetter --plz <PLZ>",

	Description:  "Wettervorhersage für einen Ort",
	Epilog:       "Beispiel: wetter Berlin  oder  wetter --plz 10115",
	HelpLocation: "Name des Ortes",
	HelpPostal:   "Postleitzahl",
	HelpCountry:  "Ländercode (DE, AT, CH, ...)",
	HelpDays:     "Vorhersagetage",
	HelpJSON:     "JSON-Ausgabe",
	HelpLang:     "Sprache: de oder en",
}

var english = Catalog{
	weekdays: [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	weather: map[types.WeatherCode]string{
		0:  "Clear",
		1:  "Mostly clear",
		2:  "Partly cloudy",
		3:  "Cloudy",
		45: "Fog",
		48: "Freezing fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Heavy drizzle",
		56: "Light freezing drizzle",
		57: "Heavy freezing drizzle",
		61: "Light rain",
		63: "Moderate rain",
		65: "Heavy rain",
		66: "Light freezing rain",
		67: "Heavy freezing rain",
		71: "Light snowfall",
		73: "Moderate snowfall",
		75: "Heavy snowfall",
		77: "Snow grains",
		80: "Light rain showers",
		81: "Moderate rain showers",
		82: "Heavy rain showers",
		85: "Light snow showers",
		86: "Heavy snow showers",
		95: "Thunderstorm",
		96: "Thunderstorm with light hail",
		99: "Thunderstorm with heavy hail",
	},

	Error:         "Error",
	WeatherFor:    "Weather for",
	Condition:     "Condition",
	Temperature:   "Temperature",
	Precipitation: "Precipitation",
	WindMax:       "Wind (max)",
	Unknown:       "Unknown",
	To:            "to",

	TimeoutLocation: "Location search timed out.",
	TimeoutPostal:   "Postal code search timed out.",
	TimeoutWeather:  "Weather request timed out.",
	NoConnection:    "No connection to server.",
	APIError:        "API error",
	RequestError:    "Request error",
	InvalidResponse: "Invalid server response.",
	MissingCoords:   "Coordinates missing.",
	IncompleteData:  "Incomplete weather data.",

	locationNotFound: "Location '%s' not found.",
	postalNotFound:   "Postal code '%s' not found.",
	ambiguousName:    "'%s' is ambiguous. Please use postal code:",
	ambiguousPostal:  "Postal code '%s' exists in multiple countries: %s",
	useCountry:       "Please specify country, e.g.: wetter --plz %s --country DE",
	notePostalUsed:   "Note: Location '%s' ignored, using postal code.",
	UsePostal:        "wetter --plz <postal_code>",

	Description:  "Weather forecast for a location",
	Epilog:       "Example: wetter Berlin  or  wetter --plz 10115",
	HelpLocation: "Location name",
	HelpPostal:   "Postal code",
	HelpCountry:  "Country code (DE, AT, CH, ...)",
	HelpDays:     "Forecast days",
	HelpJSON:     "JSON output",
	HelpLang:     "Language: de or en",
}
