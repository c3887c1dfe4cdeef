package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectorDepletesToZero(t *testing.T) {
	series := mustSeries(t, constantForecast(5, 100))

	projected := NewInventoryProjector().Project(series, 250)

	require.Len(t, projected, 5)
	assert.Equal(t, []float64{150, 50, 0, 0, 0}, projected)
}

func TestProjectorNeverIncreases(t *testing.T) {
	series := mustSeries(t, forecastFromDemands([]float64{3, 0, 14, 2, 0, 8, 5, 1, 0, 9}))

	projected := NewInventoryProjector().Project(series, 27.5)

	for i := 1; i < len(projected); i++ {
		assert.LessOrEqual(t, projected[i], projected[i-1])
	}
	for _, level := range projected {
		assert.GreaterOrEqual(t, level, 0.0)
	}
}

func TestProjectorZeroStock(t *testing.T) {
	series := mustSeries(t, constantForecast(4, 10))

	projected := NewInventoryProjector().Project(series, 0)

	assert.Equal(t, []float64{0, 0, 0, 0}, projected)
}
