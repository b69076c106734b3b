package models

import (
	"testing"
	"time"
)

func TestHourlyForecastHour(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	f := HourlyForecast{
		Time: time.Date(2026, 7, 1, 14, 23, 45, 123, loc),
	}

	want := time.Date(2026, 7, 1, 14, 0, 0, 0, loc)
	if got := f.Hour(); !got.Equal(want) {
		t.Errorf("Hour() = %v, want %v", got, want)
	}
}

func TestHourlyForecastWindDirection(t *testing.T) {
	f := HourlyForecast{WindDirectionDeg: 202.5}
	if got := f.WindDirection(); got != SouthSouthwest {
		t.Errorf("WindDirection() = %v, want %v", got, SouthSouthwest)
	}
}

func TestConditionCodeText(t *testing.T) {
	tests := []struct {
		code ConditionCode
		want string
	}{
		{ConditionClear, "Clear"},
		{ConditionPartlyCloudy, "Partly cloudy"},
		{ConditionThunderstorm, "Thunderstorm"},
		{ConditionCode("drizzle"), "drizzle"},
	}

	for _, tt := range tests {
		if got := tt.code.Text(); got != tt.want {
			t.Errorf("%q.Text() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "humidity_pct",
		Value:   "140",
		Message: "humidity must be between 0 and 100",
	}

	if err.Error() != "humidity must be between 0 and 100" {
		t.Errorf("Error() = %q", err.Error())
	}
}
