// Package forecast loads already-fetched hourly forecast documents and slices
// them into the views a weather UI renders: days, continuous chart windows,
// hour ranges, and day summaries.
package forecast

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

// Document is the on-disk shape of a fetched forecast: provider metadata plus
// the hourly records.
type Document struct {
	Location string                  `json:"location" validate:"required"`
	Timezone string                  `json:"timezone"`
	Updated  time.Time               `json:"updated"`
	Hours    []models.HourlyForecast `json:"hours" validate:"required,min=1,dive"`
}

// Forecast is a validated, in-memory forecast ready for slicing.
type Forecast struct {
	Location string
	Updated  time.Time
	Period   hourly.Period[models.HourlyForecast]
}

// Loader reads forecast documents from disk.
type Loader struct {
	logger   *zap.Logger
	validate *validator.Validate
}

// NewLoader creates a new forecast loader.
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{
		logger:   logger,
		validate: validator.New(),
	}
}

// LoadFile reads, validates, and wraps one forecast document. Timestamps are
// normalized to the document timezone (when given) and truncated to the hour
// before the timeline invariants are checked.
func (l *Loader) LoadFile(path string) (*Forecast, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode forecast file %s: %w", path, err)
	}

	forecast, err := l.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid forecast document %s: %w", path, err)
	}

	l.logger.Info("forecast loaded",
		zap.String("file", path),
		zap.String("location", forecast.Location),
		zap.Int("hours", forecast.Period.Len()),
		zap.Time("from", forecast.Period.Start()),
		zap.Time("to", forecast.Period.End()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return forecast, nil
}

// Build validates a decoded document and assembles the hourly period.
func (l *Loader) Build(doc Document) (*Forecast, error) {
	if err := l.validate.Struct(doc); err != nil {
		return nil, &models.ValidationError{
			Field:   "hours",
			Value:   doc.Location,
			Message: fmt.Sprintf("forecast document failed validation: %v", err),
		}
	}

	loc := time.UTC
	if doc.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(doc.Timezone); err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", doc.Timezone, err)
		}
	}

	moments := make([]models.HourlyForecast, len(doc.Hours))
	for i, h := range doc.Hours {
		h.Time = h.Time.In(loc).Truncate(time.Hour)
		moments[i] = h
	}

	period, err := hourly.New(moments)
	if err != nil {
		return nil, err
	}

	return &Forecast{
		Location: doc.Location,
		Updated:  doc.Updated,
		Period:   period,
	}, nil
}
