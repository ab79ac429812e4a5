package openmeteo

// SearchAPIResponse is the geocoding search envelope. A query without
// matches comes back with no results array at all.
type SearchAPIResponse struct {
	Results          []SearchResult `json:"results"`
	GenerationtimeMs float64        `json:"generationtime_ms"`
}

// SearchResult is one geocoding candidate. Latitude and longitude stay
// pointers so an absent coordinate is distinguishable from zero.
type SearchResult struct {
	Id          int64    `json:"id"`
	Name        string   `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Elevation   float64  `json:"elevation"`
	FeatureCode string   `json:"feature_code"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Admin1      string   `json:"admin1"`
	Timezone    string   `json:"timezone"`
	Population  int64    `json:"population"`
}

// ForecastAPIResponse is the forecast envelope. Daily and Hourly are
// pointers so a response missing either section is detectable.
type ForecastAPIResponse struct {
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	Timezone         string      `json:"timezone"`
	TimezoneAbbr     string      `json:"timezone_abbreviation"`
	Elevation        float64     `json:"elevation"`
	DailyUnits       DailyUnits  `json:"daily_units"`
	Daily            *Daily      `json:"daily"`
	HourlyUnits      HourlyUnits `json:"hourly_units"`
	Hourly           *Hourly     `json:"hourly"`
	GenerationTimeMs float64     `json:"generationtime_ms"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	WeatherCode      string `json:"weather_code"`
	Temperature2mMax string `json:"temperature_2m_max"`
	Temperature2mMin string `json:"temperature_2m_min"`
	PrecipitationSum string `json:"precipitation_sum"`
	WindSpeed10mMax  string `json:"wind_speed_10m_max"`
}

// Daily holds parallel arrays, one entry per forecast day. The upstream
// emits null for samples it has no data for, hence the pointer elements.
type Daily struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WindSpeed10mMax  []*float64 `json:"wind_speed_10m_max"`
}

type HourlyUnits struct {
	Time          string `json:"time"`
	Temperature2m string `json:"temperature_2m"`
	Precipitation string `json:"precipitation"`
	WeatherCode   string `json:"weather_code"`
}

// Hourly holds parallel arrays, one entry per hour across all forecast
// days.
type Hourly struct {
	Time          []string   `json:"time"`
	Temperature2m []*float64 `json:"temperature_2m"`
	Precipitation []*float64 `json:"precipitation"`
	WeatherCode   []*int     `json:"weather_code"`
}
