// Package views formats forecast slices for terminal display.
package views

import (
	"fmt"
	"strings"

	"forecastkit/internal/forecast"
	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

// DayTable renders one day period as an hour-per-row table.
func DayTable(day hourly.Period[models.HourlyForecast]) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", day.Start().Format("Monday 2006-01-02"))
	b.WriteString(strings.Repeat("-", 62))
	b.WriteByte('\n')

	for _, m := range day.Moments() {
		fmt.Fprintf(&b, "%s  %6.1f°C  feels %6.1f°C  %4.1f mm  %s %3s %5.1f km/h  %s\n",
			m.Hour().Format("15:04"),
			m.TemperatureC,
			m.FeelsLikeC,
			m.PrecipitationMm,
			m.WindDirection().Arrow(),
			m.WindDirection(),
			m.WindSpeedKmh,
			m.Condition.Text(),
		)
	}
	return b.String()
}

// SummaryTable renders day summaries as a compact overview.
func SummaryTable(summaries []models.DaySummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-16s %8s %8s %9s %11s %6s\n",
		"DAY", "MIN", "MAX", "PRECIP", "PEAK WIND", "DIR")
	b.WriteString(strings.Repeat("-", 62))
	b.WriteByte('\n')

	for _, s := range summaries {
		fmt.Fprintf(&b, "%-16s %7.1f° %7.1f° %6.1f mm %6.1f km/h %6s\n",
			s.Date.Format("Mon 2006-01-02"),
			s.MinTemperatureC,
			s.MaxTemperatureC,
			s.TotalPrecipitationMm,
			s.PeakWindSpeedKmh,
			s.DominantWind,
		)
	}
	return b.String()
}

// ChartRows renders paired chart windows, one line per hour, with the day
// boundary bridge moments marked.
func ChartRows(windows [][]forecast.ChartPoint) string {
	var b strings.Builder

	for i, window := range windows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "window %d (%d points)\n", i+1, len(window))
		for j, pt := range window {
			marker := " "
			if i < len(windows)-1 && j == len(window)-1 {
				marker = "+" // bridge into the next day
			}
			fmt.Fprintf(&b, "%s %s  %6.1f°C  %4.1f mm\n",
				marker,
				pt.Time.Format("Mon 15:04"),
				pt.TemperatureC,
				pt.PrecipitationMm,
			)
		}
	}
	return b.String()
}
