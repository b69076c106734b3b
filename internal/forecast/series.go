package forecast

import (
	"time"

	"forecastkit/internal/models"
	"forecastkit/pkg/hourly"
)

// TemperaturePoint is one hour of a temperature chart series.
type TemperaturePoint struct {
	Time   time.Time
	ValueC float64
}

// Hour returns the point's hour-truncated timestamp.
func (p TemperaturePoint) Hour() time.Time { return p.Time }

// PrecipitationPoint is one hour of a precipitation chart series.
type PrecipitationPoint struct {
	Time    time.Time
	ValueMm float64
}

// Hour returns the point's hour-truncated timestamp.
func (p PrecipitationPoint) Hour() time.Time { return p.Time }

// ChartPoint pairs the temperature and precipitation expected at one hour.
type ChartPoint struct {
	Time            time.Time
	TemperatureC    float64
	PrecipitationMm float64
}

// TemperatureSeries extracts the temperature series of a window.
func TemperatureSeries(window hourly.Period[models.HourlyForecast]) hourly.Period[TemperaturePoint] {
	points := make([]TemperaturePoint, 0, window.Len())
	for _, m := range window.Moments() {
		points = append(points, TemperaturePoint{Time: m.Hour(), ValueC: m.TemperatureC})
	}
	return hourly.Must(points)
}

// PrecipitationSeries extracts the precipitation series of a window.
func PrecipitationSeries(window hourly.Period[models.HourlyForecast]) hourly.Period[PrecipitationPoint] {
	points := make([]PrecipitationPoint, 0, window.Len())
	for _, m := range window.Moments() {
		points = append(points, PrecipitationPoint{Time: m.Hour(), ValueMm: m.PrecipitationMm})
	}
	return hourly.Must(points)
}

// ZipChart pairs a temperature and a precipitation series hour by hour. The
// series must carry identical timestamp sequences; diverging series are a
// programming error and panic.
func ZipChart(temps hourly.Period[TemperaturePoint], precip hourly.Period[PrecipitationPoint]) []ChartPoint {
	hourly.RequireMatching(temps, precip)

	t := temps.Moments()
	p := precip.Moments()
	points := make([]ChartPoint, len(t))
	for i := range t {
		points[i] = ChartPoint{
			Time:            t[i].Time,
			TemperatureC:    t[i].ValueC,
			PrecipitationMm: p[i].ValueMm,
		}
	}
	return points
}

// ChartSeries builds the paired chart points for each day window.
func ChartSeries(windows []hourly.Period[models.HourlyForecast]) [][]ChartPoint {
	series := make([][]ChartPoint, len(windows))
	for i, w := range windows {
		series[i] = ZipChart(TemperatureSeries(w), PrecipitationSeries(w))
	}
	return series
}
