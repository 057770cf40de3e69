package forecast

import (
	"math/rand"
	"time"

	"github.com/de-tools/sales-insights/pkg/models/domain"
)

// zScore95 is the only interval width applied today. The configuration
// accepts a confidence level but the original engine pins it to 95%.
const zScore95 = 1.96

// noiseDamping scales the residual noise down to reduce jitter in the
// projected values.
const noiseDamping = 0.5

// Generate projects the fitted model forward, one row per day starting
// the day after the series' last date. Each point carries the trend
// component plus dampened gaussian noise and is clamped at zero; bounds
// are only filled in when confidence is requested. Revenue columns scale
// quantity by the average unit price over the fit window.
//
// The caller owns the random source; pass a seeded rand.Rand for
// reproducible output. A nil rng falls back to a time-seeded source.
func Generate(
	model domain.FittedModel,
	series domain.DailySeries,
	horizonDays int,
	confidence bool,
	rng *rand.Rand,
) []domain.ForecastPoint {
	if series.Empty() || horizonDays <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	price := avgPricePerUnit(series, model.WindowSize)
	lastDate := series.LastDate()

	points := make([]domain.ForecastPoint, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		trend := model.TrendPerPeriod * float64(i)
		noise := rng.NormFloat64() * model.ResidualStd * noiseDamping
		value := model.MovingAvg + trend + noise
		if value < 0 {
			value = 0
		}

		p := domain.ForecastPoint{
			Date:     lastDate.AddDate(0, 0, i),
			Quantity: value,
			Revenue:  value * price,
		}
		if confidence {
			p.LowerBound = value - zScore95*model.ResidualStd
			p.UpperBound = value + zScore95*model.ResidualStd
			p.RevenueLower = p.LowerBound * price
			p.RevenueUpper = p.UpperBound * price
		}
		points = append(points, p)
	}
	return points
}

// avgPricePerUnit derives the historical unit price over the fit window.
// A window with no sold units prices at zero rather than dividing by it.
func avgPricePerUnit(series domain.DailySeries, window int) float64 {
	if window <= 0 || window > len(series) {
		window = len(series)
	}
	tail := series[len(series)-window:]

	var quantity, revenue float64
	for _, p := range tail {
		quantity += p.Quantity
		revenue += p.Revenue
	}
	if quantity == 0 {
		return 0
	}
	return revenue / quantity
}
