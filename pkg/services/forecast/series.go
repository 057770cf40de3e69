package forecast

import (
	"time"

	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/de-tools/sales-insights/pkg/models/store"
)

// BuildDailySeries turns raw transaction rows into a gap-free daily
// series: quantities and revenue are summed per calendar day, and every
// day between the first and last observed date is present, zero-filled
// when nothing was sold. An empty input yields an empty series.
func BuildDailySeries(records []store.SalesRecord) domain.DailySeries {
	if len(records) == 0 {
		return nil
	}

	type totals struct {
		quantity float64
		revenue  float64
	}

	byDay := make(map[time.Time]totals)
	var first, last time.Time
	for i, r := range records {
		day := truncateToDay(r.TxnDate)
		t := byDay[day]
		t.quantity += r.Quantity
		t.revenue += r.Amount
		byDay[day] = t

		if i == 0 || day.Before(first) {
			first = day
		}
		if i == 0 || day.After(last) {
			last = day
		}
	}

	days := int(last.Sub(first).Hours()/24) + 1
	series := make(domain.DailySeries, 0, days)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		t := byDay[day]
		series = append(series, domain.DailyPoint{
			Date:     day,
			Quantity: t.quantity,
			Revenue:  t.revenue,
		})
	}
	return series
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
