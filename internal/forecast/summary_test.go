package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

func TestSummarize(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	moments := make([]models.HourlyForecast, 24)
	for i := range moments {
		moments[i] = models.HourlyForecast{
			Time:             start.Add(time.Duration(i) * time.Hour),
			TemperatureC:     5,
			PrecipitationMm:  0.5,
			WindSpeedKmh:     10,
			WindDirectionDeg: 90, // E all day
		}
	}
	moments[3].TemperatureC = -2.5
	moments[14].TemperatureC = 11
	moments[9].WindSpeedKmh = 42
	moments[10].WindDirectionDeg = 180 // one S hour must not win

	day := hourly.Must(moments)
	got := Summarize(day)

	assert.True(t, got.Date.Equal(start))
	assert.Equal(t, -2.5, got.MinTemperatureC)
	assert.Equal(t, 11.0, got.MaxTemperatureC)
	assert.InDelta(t, 12.0, got.TotalPrecipitationMm, 1e-9)
	assert.Equal(t, 42.0, got.PeakWindSpeedKmh)
	assert.Equal(t, models.East, got.DominantWind)
	assert.Equal(t, 24, got.Hours)
}

func TestSummarizeDominantWindTieBreak(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	moments := []models.HourlyForecast{
		{Time: start, WindDirectionDeg: 180},                    // S
		{Time: start.Add(time.Hour), WindDirectionDeg: 0},       // N
		{Time: start.Add(2 * time.Hour), WindDirectionDeg: 0},   // N
		{Time: start.Add(3 * time.Hour), WindDirectionDeg: 180}, // S
	}

	got := Summarize(hourly.Must(moments))
	assert.Equal(t, models.South, got.DominantWind, "ties go to the direction seen first")
}

func TestSummaries(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	f := loadedForecast(t, start, 48)
	svc := NewSummaryService(f, zap.NewNop())

	summaries, ok := svc.Summaries(start, 5)
	require.True(t, ok)
	require.Len(t, summaries, 2, "only two days of data exist")

	for i, s := range summaries {
		assert.True(t, s.Date.Equal(start.AddDate(0, 0, i)))
		assert.Equal(t, 24, s.Hours)
		assert.LessOrEqual(t, s.MinTemperatureC, s.MaxTemperatureC)
	}

	_, ok = svc.Summaries(start.AddDate(0, 0, -1), 1)
	assert.False(t, ok)
}
