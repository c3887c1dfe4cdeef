package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/retailpulse/inventory-insight/internal/domain"
)

var testStart = domain.NewDate(2025, time.March, 1)

func constantForecast(days int, demand float64) []domain.ForecastPoint {
	points := make([]domain.ForecastPoint, days)
	for i := range points {
		points[i] = domain.ForecastPoint{Date: testStart.AddDays(i), Demand: demand}
	}
	return points
}

func forecastFromDemands(demands []float64) []domain.ForecastPoint {
	points := make([]domain.ForecastPoint, len(demands))
	for i, d := range demands {
		points[i] = domain.ForecastPoint{Date: testStart.AddDays(i), Demand: d}
	}
	return points
}

func mustSeries(t *testing.T, points []domain.ForecastPoint) domain.ForecastSeries {
	t.Helper()
	series, err := domain.NewForecastSeries(points)
	require.NoError(t, err)
	return series
}
