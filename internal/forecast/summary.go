package forecast

import (
	"time"

	"go.uber.org/zap"

	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

// SummaryService condenses day periods into the aggregates shown in day
// overviews.
type SummaryService struct {
	forecast *Forecast
	logger   *zap.Logger
}

// NewSummaryService creates a new summary service.
func NewSummaryService(f *Forecast, logger *zap.Logger) *SummaryService {
	return &SummaryService{
		forecast: f,
		logger:   logger,
	}
}

// Summaries returns up to n day summaries starting at date, or false if the
// date is not covered.
func (s *SummaryService) Summaries(date time.Time, n int) ([]models.DaySummary, bool) {
	days, ok := s.forecast.Period.DaysFrom(date, n)
	if !ok {
		return nil, false
	}

	summaries := make([]models.DaySummary, len(days))
	for i, day := range days {
		summaries[i] = Summarize(day)
	}

	s.logger.Debug("day summaries computed",
		zap.String("from", date.Format("2006-01-02")),
		zap.Int("days", len(summaries)),
	)
	return summaries, true
}

// Summarize aggregates one day period into a DaySummary.
func Summarize(day hourly.Period[models.HourlyForecast]) models.DaySummary {
	moments := day.Moments()
	first := moments[0]

	summary := models.DaySummary{
		Date:            truncateToDay(first.Hour()),
		MinTemperatureC: first.TemperatureC,
		MaxTemperatureC: first.TemperatureC,
		Hours:           len(moments),
	}

	windCounts := make(map[models.WindDirection]int)
	for _, m := range moments {
		if m.TemperatureC < summary.MinTemperatureC {
			summary.MinTemperatureC = m.TemperatureC
		}
		if m.TemperatureC > summary.MaxTemperatureC {
			summary.MaxTemperatureC = m.TemperatureC
		}
		summary.TotalPrecipitationMm += m.PrecipitationMm
		if m.WindSpeedKmh > summary.PeakWindSpeedKmh {
			summary.PeakWindSpeedKmh = m.WindSpeedKmh
		}
		windCounts[m.WindDirection()]++
	}

	// Dominant direction: most frequent sector; ties go to the sector seen
	// first during the day.
	best := -1
	for _, m := range moments {
		d := m.WindDirection()
		if windCounts[d] > best {
			best = windCounts[d]
			summary.DominantWind = d
		}
	}

	return summary
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
