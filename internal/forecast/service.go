package forecast

import (
	"time"

	"go.uber.org/zap"

	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

// Service answers the slicing queries a forecast UI needs, backed by one
// loaded forecast.
type Service struct {
	forecast *Forecast
	logger   *zap.Logger
}

// NewService creates a new forecast service.
func NewService(f *Forecast, logger *zap.Logger) *Service {
	return &Service{
		forecast: f,
		logger:   logger,
	}
}

// Location returns the place the forecast covers.
func (s *Service) Location() string { return s.forecast.Location }

// Period returns the full hourly timeline.
func (s *Service) Period() hourly.Period[models.HourlyForecast] {
	return s.forecast.Period
}

// Hour returns the forecast for the hour containing t.
func (s *Service) Hour(t time.Time) (models.HourlyForecast, bool) {
	return s.forecast.Period.At(t)
}

// NextHours returns up to n forecast hours starting at the hour containing t.
func (s *Service) NextHours(t time.Time, n int) (hourly.Period[models.HourlyForecast], bool) {
	return s.forecast.Period.From(t, n)
}

// LastHours returns up to n forecast hours ending immediately before the hour
// containing t.
func (s *Service) LastHours(t time.Time, n int) (hourly.Period[models.HourlyForecast], bool) {
	return s.forecast.Period.Until(t, n)
}

// Day returns the forecast for one calendar date.
func (s *Service) Day(date time.Time) (hourly.Period[models.HourlyForecast], bool) {
	return s.forecast.Period.DayAt(date)
}

// Days returns up to n consecutive day periods starting at date.
func (s *Service) Days(date time.Time, n int) ([]hourly.Period[models.HourlyForecast], bool) {
	days, ok := s.forecast.Period.DaysFrom(date, n)
	if !ok {
		s.logger.Debug("requested date not covered by forecast",
			zap.String("date", date.Format("2006-01-02")),
			zap.Time("from", s.forecast.Period.Start()),
			zap.Time("to", s.forecast.Period.End()),
		)
	}
	return days, ok
}

// ChartWindows returns up to n day windows starting at date, each except the
// last extended into the next day so chart lines stay continuous across
// midnight.
func (s *Service) ChartWindows(date time.Time, n int) ([]hourly.Period[models.HourlyForecast], bool) {
	return s.forecast.Period.ContiguousDaysFrom(date, n)
}
