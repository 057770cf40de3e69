package forecast

import (
	"math"

	"github.com/de-tools/sales-insights/pkg/models/domain"
)

// AnalyzePatterns computes descriptive statistics over the quantity
// column: overall moments plus day-of-week and month averages. The
// result is diagnostic output only; the model fit never consumes it.
func AnalyzePatterns(series domain.DailySeries) domain.SeriesStats {
	if series.Empty() {
		return domain.SeriesStats{}
	}

	stats := domain.SeriesStats{
		Count: len(series),
		Min:   series[0].Quantity,
		Max:   series[0].Quantity,
	}

	var sum float64
	var weekdaySum, weekdayCount [7]float64
	var monthSum, monthCount [12]float64
	for _, p := range series {
		sum += p.Quantity
		if p.Quantity < stats.Min {
			stats.Min = p.Quantity
		}
		if p.Quantity > stats.Max {
			stats.Max = p.Quantity
		}
		wd := int(p.Date.Weekday())
		weekdaySum[wd] += p.Quantity
		weekdayCount[wd]++
		m := int(p.Date.Month()) - 1
		monthSum[m] += p.Quantity
		monthCount[m]++
	}
	stats.Mean = sum / float64(len(series))

	if len(series) > 1 {
		var sq float64
		for _, p := range series {
			d := p.Quantity - stats.Mean
			sq += d * d
		}
		stats.StdDev = math.Sqrt(sq / float64(len(series)-1))
	}

	for i := range weekdaySum {
		if weekdayCount[i] > 0 {
			stats.WeekdayAvg[i] = weekdaySum[i] / weekdayCount[i]
		}
	}
	for i := range monthSum {
		if monthCount[i] > 0 {
			stats.MonthAvg[i] = monthSum[i] / monthCount[i]
		}
	}
	return stats
}
