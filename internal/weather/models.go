package weather

// Forecast is the validated payload a run renders. Samples stay nullable
// here; substituting safe defaults is the renderer's job.
type Forecast struct {
	Daily  DailySeries
	Hourly HourlySeries
}

// DailySeries holds parallel arrays, one entry per forecast day. Index i
// across all fields describes the same day.
type DailySeries struct {
	Dates            []string
	WeatherCodes     []*int
	TemperatureMax   []*float64
	TemperatureMin   []*float64
	PrecipitationSum []*float64
	WindSpeedMax     []*float64
}

// Days returns the number of forecast days carried by the series.
func (d DailySeries) Days() int {
	return len(d.Dates)
}

// HourlySeries holds parallel arrays, one entry per hour across all
// forecast days.
type HourlySeries struct {
	Times         []string
	Temperatures  []*float64
	Precipitation []*float64
	WeatherCodes  []*int
}

// Hours returns the number of hourly samples carried by the series.
func (h HourlySeries) Hours() int {
	return len(h.Times)
}
