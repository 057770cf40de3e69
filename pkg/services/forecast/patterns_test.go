package forecast

import (
	"testing"
	"time"

	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func constantSeries(start time.Time, days int, quantity, revenue float64) domain.DailySeries {
	series := make(domain.DailySeries, 0, days)
	for i := 0; i < days; i++ {
		series = append(series, domain.DailyPoint{
			Date:     start.AddDate(0, 0, i),
			Quantity: quantity,
			Revenue:  revenue,
		})
	}
	return series
}

func TestAnalyzePatterns_BasicStats(t *testing.T) {
	series := domain.DailySeries{
		{Date: day(2024, 1, 1), Quantity: 2},
		{Date: day(2024, 1, 2), Quantity: 4},
		{Date: day(2024, 1, 3), Quantity: 6},
	}

	stats := AnalyzePatterns(series)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 4.0, stats.Mean)
	assert.Equal(t, 2.0, stats.Min)
	assert.Equal(t, 6.0, stats.Max)
	assert.InDelta(t, 2.0, stats.StdDev, 1e-9) // sample std of 2,4,6
}

func TestAnalyzePatterns_SeasonalBuckets(t *testing.T) {
	// 2024-01-01 is a Monday; two full weeks give two samples per weekday
	series := make(domain.DailySeries, 0, 14)
	for i := 0; i < 14; i++ {
		q := 10.0
		if i%7 == 0 { // Mondays
			q = 30.0
		}
		series = append(series, domain.DailyPoint{Date: day(2024, 1, 1+i), Quantity: q})
	}

	stats := AnalyzePatterns(series)
	assert.Equal(t, 30.0, stats.WeekdayAvg[int(time.Monday)])
	assert.Equal(t, 10.0, stats.WeekdayAvg[int(time.Tuesday)])
	// all of January; other months stay zero
	assert.NotZero(t, stats.MonthAvg[0])
	assert.Zero(t, stats.MonthAvg[5])
}

func TestAnalyzePatterns_EmptySeries(t *testing.T) {
	stats := AnalyzePatterns(nil)
	assert.Equal(t, domain.SeriesStats{}, stats)
}
