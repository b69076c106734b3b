package models

import "time"

// DaySummary aggregates one calendar day of hourly forecasts for display in
// day overviews.
type DaySummary struct {
	Date                 time.Time     `json:"date"`
	MinTemperatureC      float64       `json:"min_temperature_c"`
	MaxTemperatureC      float64       `json:"max_temperature_c"`
	TotalPrecipitationMm float64       `json:"total_precipitation_mm"`
	PeakWindSpeedKmh     float64       `json:"peak_wind_speed_kmh"`
	DominantWind         WindDirection `json:"dominant_wind"`
	Hours                int           `json:"hours"`
}
