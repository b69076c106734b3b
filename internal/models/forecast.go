package models

import (
	"time"
)

// ConditionCode identifies the dominant weather condition for an hour.
type ConditionCode string

const (
	ConditionClear        ConditionCode = "clear"
	ConditionPartlyCloudy ConditionCode = "partly-cloudy"
	ConditionCloudy       ConditionCode = "cloudy"
	ConditionFog          ConditionCode = "fog"
	ConditionRain         ConditionCode = "rain"
	ConditionSnow         ConditionCode = "snow"
	ConditionThunderstorm ConditionCode = "thunderstorm"
)

// Text returns a display string for the condition.
func (c ConditionCode) Text() string {
	switch c {
	case ConditionClear:
		return "Clear"
	case ConditionPartlyCloudy:
		return "Partly cloudy"
	case ConditionCloudy:
		return "Cloudy"
	case ConditionFog:
		return "Fog"
	case ConditionRain:
		return "Rain"
	case ConditionSnow:
		return "Snow"
	case ConditionThunderstorm:
		return "Thunderstorm"
	default:
		return string(c)
	}
}

// HourlyForecast is a single forecast point: the weather expected during one
// specific hour. It satisfies hourly.HourMoment through Hour.
type HourlyForecast struct {
	Time             time.Time     `json:"time" validate:"required"`
	TemperatureC     float64       `json:"temperature_c" validate:"gte=-90,lte=60"`
	FeelsLikeC       float64       `json:"feels_like_c" validate:"gte=-90,lte=60"`
	PrecipitationMm  float64       `json:"precipitation_mm" validate:"gte=0"`
	WindSpeedKmh     float64       `json:"wind_speed_kmh" validate:"gte=0"`
	WindDirectionDeg float64       `json:"wind_direction_deg" validate:"gte=0,lt=360"`
	HumidityPct      int           `json:"humidity_pct" validate:"gte=0,lte=100"`
	Condition        ConditionCode `json:"condition,omitempty" validate:"omitempty,oneof=clear partly-cloudy cloudy fog rain snow thunderstorm"`
}

// Hour returns the forecast's timestamp truncated to the hour.
func (f HourlyForecast) Hour() time.Time {
	return f.Time.Truncate(time.Hour)
}

// WindDirection returns the compass direction of the forecast wind.
func (f HourlyForecast) WindDirection() WindDirection {
	return WindDirectionFromDegrees(f.WindDirectionDeg)
}

// ValidationError represents a forecast record that failed validation.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
