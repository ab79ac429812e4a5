package render

import (
	"fmt"
	"strings"
	"testing"

	"wetter-cli/internal/lang"
	"wetter-cli/internal/weather"
)

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func singleDayForecast() *weather.Forecast {
	return &weather.Forecast{
		Daily: weather.DailySeries{
			Dates:            []string{"2024-01-15"},
			WeatherCodes:     []*int{intPtr(61)},
			TemperatureMax:   []*float64{floatPtr(4.2)},
			TemperatureMin:   []*float64{floatPtr(-1.2)},
			PrecipitationSum: []*float64{floatPtr(2.5)},
			WindSpeedMax:     []*float64{floatPtr(18.7)},
		},
		Hourly: weather.HourlySeries{
			Times:         []string{"2024-01-15T00:00", "2024-01-15T01:00"},
			Temperatures:  []*float64{floatPtr(-1.2), floatPtr(2.1)},
			Precipitation: []*float64{floatPtr(0), floatPtr(0.3)},
			WeatherCodes:  []*int{intPtr(61), intPtr(63)},
		},
	}
}

// twoDayForecast carries a full first day and a truncated second day.
func twoDayForecast() *weather.Forecast {
	forecast := &weather.Forecast{
		Daily: weather.DailySeries{
			Dates:            []string{"2024-01-15", "2024-01-16"},
			WeatherCodes:     []*int{intPtr(3), intPtr(71)},
			TemperatureMax:   []*float64{floatPtr(4.0), floatPtr(1.0)},
			TemperatureMin:   []*float64{floatPtr(0.0), floatPtr(-3.0)},
			PrecipitationSum: []*float64{floatPtr(0.0), floatPtr(4.5)},
			WindSpeedMax:     []*float64{floatPtr(12.0), floatPtr(22.0)},
		},
	}
	for i := 0; i < 25; i++ {
		day := 15 + i/24
		forecast.Hourly.Times = append(forecast.Hourly.Times, fmt.Sprintf("2024-01-%02dT%02d:00", day, i%24))
		forecast.Hourly.Temperatures = append(forecast.Hourly.Temperatures, floatPtr(1.5))
		forecast.Hourly.Precipitation = append(forecast.Hourly.Precipitation, floatPtr(0))
		forecast.Hourly.WeatherCodes = append(forecast.Hourly.WeatherCodes, intPtr(3))
	}
	return forecast
}

func TestText_SingleDay(t *testing.T) {
	got := Text(singleDayForecast(), "Berlin, Germany", lang.For(lang.English))

	want := strings.Join([]string{
		"Weather for Berlin, Germany",
		strings.Repeat("=", 50),
		"",
		"15.01.2024 (Monday)",
		strings.Repeat("-", 50),
		"Condition      Light rain",
		"Temperature    -1.2°C to 4.2°C",
		"Precipitation  2.5 mm",
		"Wind (max)     18.7 km/h",
		"",
		"  00:00   -1.2°C  Light rain",
		"  01:00    2.1°C  Moderate rain, 0.3mm",
	}, "\n")

	if got != want {
		t.Errorf("Text() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_German(t *testing.T) {
	got := Text(singleDayForecast(), "10115 Berlin, Deutschland", lang.For(lang.German))

	if !strings.HasPrefix(got, "Wetter für 10115 Berlin, Deutschland\n") {
		t.Errorf("Text() header = %q, want German header", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.Contains(got, "15.01.2024 (Montag)") {
		t.Error("Text() missing German weekday")
	}
	if !strings.Contains(got, "Wetterlage     Leichter Regen") {
		t.Error("Text() missing German condition line")
	}
	if !strings.Contains(got, "Temperatur     -1.2°C bis 4.2°C") {
		t.Error("Text() missing German temperature line")
	}
}

func TestText_DaySeparation(t *testing.T) {
	got := Text(twoDayForecast(), "Berlin, Germany", lang.For(lang.English))

	// Later days are set off by a double blank line, the first day by a
	// single one.
	if count := strings.Count(got, "\n\n\n"); count != 1 {
		t.Errorf("Text() has %d double blank lines, want 1", count)
	}
	if !strings.Contains(got, strings.Repeat("=", 50)+"\n\n15.01.2024 (Monday)") {
		t.Error("Text() first day not separated by a single blank line")
	}
	if !strings.Contains(got, "16.01.2024 (Tuesday)") {
		t.Error("Text() missing second day header")
	}

	// 25 hourly samples split into 24 for the first day and 1 for the second.
	if count := strings.Count(got, "°C  Cloudy"); count != 25 {
		t.Errorf("Text() renders %d hourly lines, want 25", count)
	}
	if !strings.Contains(got, "  00:00    1.5°C  Cloudy\n\n\n16.01.2024") {
		t.Error("Text() second day does not start after the first day's final hour")
	}
}

func TestText_SafeFallbacks(t *testing.T) {
	forecast := &weather.Forecast{
		Daily: weather.DailySeries{
			Dates:            []string{"", "bogus-date"},
			WeatherCodes:     []*int{nil, intPtr(1234)},
			TemperatureMax:   []*float64{nil, floatPtr(2.0)},
			TemperatureMin:   []*float64{nil, floatPtr(-2.0)},
			PrecipitationSum: []*float64{nil, nil},
			WindSpeedMax:     []*float64{nil, nil},
		},
		Hourly: weather.HourlySeries{
			Times:         []string{"not a timestamp"},
			Temperatures:  []*float64{nil},
			Precipitation: []*float64{nil},
			WeatherCodes:  []*int{nil},
		},
	}

	got := Text(forecast, "Somewhere", lang.For(lang.English))

	if !strings.Contains(got, "\nUnknown\n") {
		t.Error("Text() empty date should render the unknown placeholder")
	}
	if !strings.Contains(got, "\nbogus-date\n") {
		t.Error("Text() unparsable date should pass through raw")
	}
	if !strings.Contains(got, "Condition      Clear") {
		t.Error("Text() null weather code should fall back to clear sky")
	}
	if !strings.Contains(got, "Condition      Code 1234") {
		t.Error("Text() unrecognized weather code should render numerically")
	}
	if !strings.Contains(got, "Temperature    0.0°C to 0.0°C") {
		t.Error("Text() null temperatures should render as zero")
	}
	if !strings.Contains(got, "  ??:??    0.0°C  Clear") {
		t.Error("Text() unparsable hour should render the placeholder")
	}
}

func TestHourWindow(t *testing.T) {
	tests := []struct {
		name       string
		dayIdx     int
		totalHours int
		wantStart  int
		wantEnd    int
	}{
		{name: "first full day", dayIdx: 0, totalHours: 48, wantStart: 0, wantEnd: 24},
		{name: "second full day", dayIdx: 1, totalHours: 48, wantStart: 24, wantEnd: 48},
		{name: "truncated day", dayIdx: 1, totalHours: 30, wantStart: 24, wantEnd: 30},
		{name: "day beyond samples", dayIdx: 2, totalHours: 30, wantStart: 30, wantEnd: 30},
		{name: "short first day", dayIdx: 0, totalHours: 10, wantStart: 0, wantEnd: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := hourWindow(tt.dayIdx, tt.totalHours)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("hourWindow(%d, %d) = %d,%d, want %d,%d",
					tt.dayIdx, tt.totalHours, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestJSON_Document(t *testing.T) {
	forecast := &weather.Forecast{
		Daily: weather.DailySeries{
			Dates:            []string{"2024-01-15"},
			WeatherCodes:     []*int{intPtr(61)},
			TemperatureMax:   []*float64{floatPtr(4.2)},
			TemperatureMin:   []*float64{floatPtr(-1.2)},
			PrecipitationSum: []*float64{floatPtr(2.5)},
			WindSpeedMax:     []*float64{floatPtr(18.7)},
		},
		Hourly: weather.HourlySeries{
			Times:         []string{"2024-01-15T00:00"},
			Temperatures:  []*float64{floatPtr(2.1)},
			Precipitation: []*float64{nil},
			WeatherCodes:  []*int{intPtr(2)},
		},
	}

	got, err := JSON(forecast, "10115 Berlin, Deutschland", lang.For(lang.German))
	if err != nil {
		t.Fatalf("JSON() unexpected error = %v", err)
	}

	want := `{
  "location": "10115 Berlin, Deutschland",
  "days": [
    {
      "date": "2024-01-15",
      "weather_code": 61,
      "weather_description": "Leichter Regen",
      "temperature_min": -1.2,
      "temperature_max": 4.2,
      "precipitation_sum": 2.5,
      "wind_speed_max": 18.7,
      "hourly": [
        {
          "time": "2024-01-15T00:00",
          "temperature": 2.1,
          "precipitation": 0,
          "weather_code": 2,
          "weather_description": "Teilweise bewölkt"
        }
      ]
    }
  ]
}`

	if got != want {
		t.Errorf("JSON() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON_EmptyDays(t *testing.T) {
	forecast := &weather.Forecast{}

	got, err := JSON(forecast, "Nowhere", lang.For(lang.English))
	if err != nil {
		t.Fatalf("JSON() unexpected error = %v", err)
	}

	want := `{
  "location": "Nowhere",
  "days": []
}`
	if got != want {
		t.Errorf("JSON() = %s, want empty days array", got)
	}
}

func TestTextAndTreeAgree(t *testing.T) {
	forecast := twoDayForecast()
	catalog := lang.For(lang.English)

	tree := Tree(forecast, "Berlin, Germany", catalog)
	text := Text(forecast, "Berlin, Germany", catalog)

	if len(tree.Days) != forecast.Daily.Days() {
		t.Fatalf("Tree() has %d days, want %d", len(tree.Days), forecast.Daily.Days())
	}

	hourTotal := 0
	for _, day := range tree.Days {
		if !strings.Contains(text, day.WeatherDescription) {
			t.Errorf("Text() missing description %q present in tree", day.WeatherDescription)
		}
		hourTotal += len(day.Hourly)
	}
	if hourTotal != forecast.Hourly.Hours() {
		t.Errorf("Tree() distributes %d hourly samples, want %d", hourTotal, forecast.Hourly.Hours())
	}
}
