package forecast

import (
	"testing"

	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitMovingAverage_WindowSelection(t *testing.T) {
	series := constantSeries(day(2024, 1, 1), 400, 10, 50)

	cases := []struct {
		horizonDays int
		window      int
	}{
		{7, 7},
		{30, 30},
		{31, 90},
		{90, 90},
		{365, 365},
	}
	for _, tc := range cases {
		model, err := FitMovingAverage(series, tc.horizonDays)
		require.NoError(t, err)
		assert.Equal(t, tc.window, model.WindowSize, "horizon %d days", tc.horizonDays)
	}
}

func TestFitMovingAverage_WindowClampsToSeriesLength(t *testing.T) {
	// series of 3 with a quarter horizon: nominal window 90 clamps to 3
	series := constantSeries(day(2024, 1, 1), 3, 10, 50)

	model, err := FitMovingAverage(series, 90)
	require.NoError(t, err)
	assert.Equal(t, 3, model.WindowSize)
}

func TestFitMovingAverage_FlatSeries(t *testing.T) {
	series := constantSeries(day(2024, 1, 1), 10, 100, 500)

	model, err := FitMovingAverage(series, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, model.WindowSize)
	assert.Equal(t, 100.0, model.MovingAvg)
	assert.Equal(t, 0.0, model.ResidualStd)
	assert.Equal(t, 0.0, model.TrendPerPeriod)
}

func TestFitMovingAverage_LinearTrend(t *testing.T) {
	// quantities rising 10 -> 100 over 10 days
	series := make(domain.DailySeries, 0, 10)
	for i := 0; i < 10; i++ {
		series = append(series, domain.DailyPoint{
			Date:     day(2024, 1, 1+i),
			Quantity: float64((i + 1) * 10),
		})
	}

	model, err := FitMovingAverage(series, 7)
	require.NoError(t, err)
	// slope over the whole series, not a regression
	assert.InDelta(t, 9.0, model.TrendPerPeriod, 1e-9)
	// moving average covers the last 7 points: 40..100
	assert.InDelta(t, 70.0, model.MovingAvg, 1e-9)
}

func TestFitMovingAverage_SinglePointHasZeroStd(t *testing.T) {
	series := constantSeries(day(2024, 1, 1), 1, 42, 84)

	model, err := FitMovingAverage(series, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, model.WindowSize)
	assert.Equal(t, 0.0, model.ResidualStd)
	assert.Equal(t, 0.0, model.TrendPerPeriod)
}

func TestFitMovingAverage_EmptySeries(t *testing.T) {
	_, err := FitMovingAverage(nil, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
