package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageConstantDemand(t *testing.T) {
	// 30 days at 100/day with 250 on hand: cumulative hits 300 on day 3.
	series := mustSeries(t, constantForecast(30, 100))

	result := NewCoverageCalculator().Compute(series, 250)

	assert.False(t, result.BeyondHorizon)
	assert.Equal(t, 3, result.Days)
	require.NotNil(t, result.StockoutDate)
	assert.Equal(t, testStart.AddDays(2).String(), result.StockoutDate.String())
	assert.Equal(t, 30, result.HorizonDays)
	assert.InDelta(t, 3000, result.TotalDemand, 1e-9)
	assert.Len(t, result.CumulativeDemand, 30)
}

func TestCoverageFirstDayExhaustion(t *testing.T) {
	series := mustSeries(t, constantForecast(5, 100))

	result := NewCoverageCalculator().Compute(series, 50)

	assert.Equal(t, 1, result.Days)
	require.NotNil(t, result.StockoutDate)
	assert.Equal(t, testStart.String(), result.StockoutDate.String())
}

func TestCoverageZeroStock(t *testing.T) {
	series := mustSeries(t, constantForecast(10, 20))

	result := NewCoverageCalculator().Compute(series, 0)

	assert.Equal(t, 0, result.Days)
	assert.False(t, result.BeyondHorizon)
	require.NotNil(t, result.StockoutDate)
	assert.Equal(t, testStart.String(), result.StockoutDate.String())
}

func TestCoverageBeyondHorizon(t *testing.T) {
	series := mustSeries(t, constantForecast(10, 10))

	result := NewCoverageCalculator().Compute(series, 500)

	assert.True(t, result.BeyondHorizon)
	assert.Nil(t, result.StockoutDate)
	assert.Equal(t, 10, result.HorizonDays)
	assert.InDelta(t, 100, result.TotalDemand, 1e-9)
}

func TestCoverageZeroDemandPositiveStock(t *testing.T) {
	series := mustSeries(t, constantForecast(14, 0))

	result := NewCoverageCalculator().Compute(series, 1)

	assert.True(t, result.BeyondHorizon)
	assert.Nil(t, result.StockoutDate)
}

func TestCoverageMonotonicInStock(t *testing.T) {
	// More stock never reduces days of cover.
	series := mustSeries(t, forecastFromDemands([]float64{5, 0, 12, 7, 3, 9, 1, 20, 4, 6}))
	calc := NewCoverageCalculator()

	prevDays := -1
	beyondSeen := false
	for stock := 0.0; stock <= 80; stock += 2.5 {
		result := calc.Compute(series, stock)
		if result.BeyondHorizon {
			beyondSeen = true
			continue
		}
		require.False(t, beyondSeen, "coverage fell back inside horizon after exceeding it")
		require.GreaterOrEqual(t, result.Days, prevDays, "coverage decreased at stock %.1f", stock)
		prevDays = result.Days
	}
	assert.True(t, beyondSeen)
}
