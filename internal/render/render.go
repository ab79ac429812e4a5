// Package render turns a validated forecast into the terminal text block or
// the JSON document. Rendering never fails hard: missing samples fall back to
// zero values and unparsable timestamps to placeholders, so a forecast that
// survived validation always produces output.
package render

import (
	"fmt"
	"strings"
	"time"

	"wetter-cli/internal/lang"
	"wetter-cli/internal/types"
	"wetter-cli/internal/weather"
)

const rulerWidth = 50

const (
	dateLayout = "2006-01-02"
	hourLayout = "2006-01-02T15:04"
)

// Text renders the forecast as the human-readable block: a summary per day
// followed by one line per hour of that day. The result carries no trailing
// newline.
func Text(forecast *weather.Forecast, location string, catalog lang.Catalog) string {
	daily := forecast.Daily
	hourly := forecast.Hourly

	lines := []string{
		fmt.Sprintf("%s %s", catalog.WeatherFor, location),
		strings.Repeat("=", rulerWidth),
	}

	for dayIdx := 0; dayIdx < daily.Days(); dayIdx++ {
		date := formatDate(daily.Dates[dayIdx], catalog)
		description := catalog.WeatherDescription(codeAt(daily.WeatherCodes, dayIdx))

		tempMin := floatAt(daily.TemperatureMin, dayIdx)
		tempMax := floatAt(daily.TemperatureMax, dayIdx)
		precipitation := floatAt(daily.PrecipitationSum, dayIdx)
		wind := floatAt(daily.WindSpeedMax, dayIdx)

		if dayIdx > 0 {
			lines = append(lines, "")
		}

		lines = append(lines,
			"",
			date,
			strings.Repeat("-", rulerWidth),
			fmt.Sprintf("%-14s %s", catalog.Condition, description),
			fmt.Sprintf("%-14s %.1f°C %s %.1f°C", catalog.Temperature, tempMin, catalog.To, tempMax),
			fmt.Sprintf("%-14s %.1f mm", catalog.Precipitation, precipitation),
			fmt.Sprintf("%-14s %.1f km/h", catalog.WindMax, wind),
		)

		lines = append(lines, "")
		start, end := hourWindow(dayIdx, hourly.Hours())
		for i := start; i < end; i++ {
			hour := formatHour(hourly.Times[i])
			temperature := floatAt(hourly.Temperatures, i)
			hourPrecipitation := floatAt(hourly.Precipitation, i)
			hourDescription := catalog.WeatherDescription(codeAt(hourly.WeatherCodes, i))

			precipitationSuffix := ""
			if hourPrecipitation > 0 {
				precipitationSuffix = fmt.Sprintf(", %.1fmm", hourPrecipitation)
			}
			lines = append(lines, fmt.Sprintf("  %s  %5.1f°C  %s%s", hour, temperature, hourDescription, precipitationSuffix))
		}
	}

	return strings.Join(lines, "\n")
}

// hourWindow returns the half-open index range of hourly samples belonging to
// a day. Each day owns 24 samples; the last day may be truncated.
func hourWindow(dayIdx, totalHours int) (start, end int) {
	start = dayIdx * 24
	end = start + 24
	if end > totalHours {
		end = totalHours
	}
	if start > end {
		start = end
	}
	return start, end
}

// formatDate renders an ISO date as DD.MM.YYYY with the localized weekday.
// Unparsable input is passed through raw, empty input becomes the localized
// unknown placeholder.
func formatDate(raw string, catalog lang.Catalog) string {
	ts, err := time.Parse(dateLayout, raw)
	if err != nil {
		if raw != "" {
			return raw
		}
		return catalog.Unknown
	}
	return fmt.Sprintf("%s (%s)", ts.Format("02.01.2006"), catalog.Weekday(ts.Weekday()))
}

// formatHour extracts HH:MM from an ISO timestamp, with or without seconds.
func formatHour(raw string) string {
	for _, layout := range []string{hourLayout, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("15:04")
		}
	}
	return "??:??"
}

// floatAt reads a nullable sample, substituting 0 for null or out-of-range
// indexes. Upstream payloads occasionally ship ragged arrays; rendering must
// not abort over them.
func floatAt(values []*float64, i int) float64 {
	if i < 0 || i >= len(values) || values[i] == nil {
		return 0
	}
	return *values[i]
}

// codeAt reads a nullable weather code the same way, substituting clear sky.
func codeAt(values []*int, i int) types.WeatherCode {
	if i < 0 || i >= len(values) || values[i] == nil {
		return 0
	}
	return types.WeatherCode(*values[i])
}
