package domain

import "time"

// DailyPoint is one calendar day of aggregated demand.
type DailyPoint struct {
	Date     time.Time
	Quantity float64
	Revenue  float64
}

// DailySeries is a gap-free, strictly ordered daily series: consecutive
// calendar days from the first to the last observed date, zero-filled for
// days without transactions.
type DailySeries []DailyPoint

func (s DailySeries) Empty() bool {
	return len(s) == 0
}

// LastDate returns the date of the final point. Only valid for a
// non-empty series.
func (s DailySeries) LastDate() time.Time {
	return s[len(s)-1].Date
}

func (s DailySeries) TotalQuantity() float64 {
	var total float64
	for _, p := range s {
		total += p.Quantity
	}
	return total
}

func (s DailySeries) TotalRevenue() float64 {
	var total float64
	for _, p := range s {
		total += p.Revenue
	}
	return total
}

// SeriesStats holds descriptive statistics over the quantity column.
// WeekdayAvg is indexed by time.Weekday (Sunday = 0), MonthAvg by
// time.Month - 1. Buckets with no observations stay zero.
type SeriesStats struct {
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
	Count      int
	WeekdayAvg [7]float64
	MonthAvg   [12]float64
}
