package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"wetter-cli/internal/lang"
	"wetter-cli/internal/weather"
)

// Output is the JSON document shape. Struct order is serialization order.
type Output struct {
	Location string `json:"location"`
	Days     []Day  `json:"days"`
}

type Day struct {
	Date               string  `json:"date"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
	TemperatureMin     float64 `json:"temperature_min"`
	TemperatureMax     float64 `json:"temperature_max"`
	PrecipitationSum   float64 `json:"precipitation_sum"`
	WindSpeedMax       float64 `json:"wind_speed_max"`
	Hourly             []Hour  `json:"hourly"`
}

type Hour struct {
	Time               string  `json:"time"`
	Temperature        float64 `json:"temperature"`
	Precipitation      float64 `json:"precipitation"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
}

// Tree assembles the JSON document for the forecast. Descriptions are
// resolved through the catalog so both output formats agree on them.
func Tree(forecast *weather.Forecast, location string, catalog lang.Catalog) Output {
	daily := forecast.Daily
	hourly := forecast.Hourly

	days := make([]Day, 0, daily.Days())
	for dayIdx := 0; dayIdx < daily.Days(); dayIdx++ {
		code := codeAt(daily.WeatherCodes, dayIdx)

		start, end := hourWindow(dayIdx, hourly.Hours())
		hours := make([]Hour, 0, end-start)
		for i := start; i < end; i++ {
			hourCode := codeAt(hourly.WeatherCodes, i)
			hours = append(hours, Hour{
				Time:               hourly.Times[i],
				Temperature:        floatAt(hourly.Temperatures, i),
				Precipitation:      floatAt(hourly.Precipitation, i),
				WeatherCode:        int(hourCode),
				WeatherDescription: catalog.WeatherDescription(hourCode),
			})
		}

		days = append(days, Day{
			Date:               daily.Dates[dayIdx],
			WeatherCode:        int(code),
			WeatherDescription: catalog.WeatherDescription(code),
			TemperatureMin:     floatAt(daily.TemperatureMin, dayIdx),
			TemperatureMax:     floatAt(daily.TemperatureMax, dayIdx),
			PrecipitationSum:   floatAt(daily.PrecipitationSum, dayIdx),
			WindSpeedMax:       floatAt(daily.WindSpeedMax, dayIdx),
			Hourly:             hours,
		})
	}

	return Output{Location: location, Days: days}
}

// JSON renders the forecast as a two-space indented JSON document without a
// trailing newline. Non-ASCII text is emitted verbatim.
func JSON(forecast *weather.Forecast, location string, catalog lang.Catalog) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(Tree(forecast, location, catalog)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
