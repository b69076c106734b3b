package views

import (
	"strings"
	"testing"
	"time"

	"forecastkit/internal/forecast"
	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

func testDay(t *testing.T, start time.Time, n int) hourly.Period[models.HourlyForecast] {
	t.Helper()
	moments := make([]models.HourlyForecast, n)
	for i := range moments {
		moments[i] = models.HourlyForecast{
			Time:             start.Add(time.Duration(i) * time.Hour),
			TemperatureC:     7.5,
			FeelsLikeC:       6,
			WindSpeedKmh:     15,
			WindDirectionDeg: 45,
			Condition:        models.ConditionRain,
		}
	}
	return hourly.Must(moments)
}

func TestDayTable(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	out := DayTable(testDay(t, start, 3))

	for _, want := range []string{"Saturday 2026-03-14", "00:00", "02:00", "NE", "Rain", "7.5°C"} {
		if !strings.Contains(out, want) {
			t.Errorf("DayTable() output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("DayTable() has %d lines, want 5 (header + rule + 3 hours)", lines)
	}
}

func TestSummaryTable(t *testing.T) {
	out := SummaryTable([]models.DaySummary{
		{
			Date:                 time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			MinTemperatureC:      -1.5,
			MaxTemperatureC:      8,
			TotalPrecipitationMm: 3.2,
			PeakWindSpeedKmh:     31,
			DominantWind:         models.Northwest,
			Hours:                24,
		},
	})

	for _, want := range []string{"Sat 2026-03-14", "-1.5", "8.0", "3.2", "31.0", "NW"} {
		if !strings.Contains(out, want) {
			t.Errorf("SummaryTable() output missing %q:\n%s", want, out)
		}
	}
}

func TestChartRowsMarksBridgeMoments(t *testing.T) {
	start := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	windows := [][]forecast.ChartPoint{
		{
			{Time: start},
			{Time: start.Add(time.Hour)},
			{Time: start.Add(2 * time.Hour)}, // first hour of the next day
		},
		{
			{Time: start.Add(2 * time.Hour)},
			{Time: start.Add(3 * time.Hour)},
		},
	}

	out := ChartRows(windows)

	if !strings.Contains(out, "window 1 (3 points)") || !strings.Contains(out, "window 2 (2 points)") {
		t.Fatalf("ChartRows() missing window headers:\n%s", out)
	}
	if got := strings.Count(out, "+ "); got != 1 {
		t.Errorf("ChartRows() marked %d bridge moments, want 1 (last window has none):\n%s", got, out)
	}
}
