package forecast

import (
	"fmt"
	"math"

	"github.com/de-tools/sales-insights/pkg/models/domain"
)

// FitMovingAverage fits the windowed moving-average baseline. The
// nominal window follows the forecast horizon (week -> 7, month -> 30,
// quarter -> 90, year -> 365 days) and is clamped to the series length.
// The trend is the raw first-to-last slope over the entire series, not
// a regression.
func FitMovingAverage(series domain.DailySeries, horizonDays int) (domain.FittedModel, error) {
	if series.Empty() {
		return domain.FittedModel{}, fmt.Errorf("%w: series has no points", ErrInsufficientData)
	}

	window := nominalWindow(horizonDays)
	if window > len(series) {
		window = len(series)
	}

	tail := series[len(series)-window:]
	var sum float64
	for _, p := range tail {
		sum += p.Quantity
	}
	movingAvg := sum / float64(window)

	var residualStd float64
	if window > 1 {
		var sq float64
		for _, p := range tail {
			d := p.Quantity - movingAvg
			sq += d * d
		}
		residualStd = math.Sqrt(sq / float64(window-1))
	}

	var trend float64
	if len(series) > 1 {
		trend = (series[len(series)-1].Quantity - series[0].Quantity) / float64(len(series))
	}

	return domain.FittedModel{
		WindowSize:     window,
		MovingAvg:      movingAvg,
		ResidualStd:    residualStd,
		TrendPerPeriod: trend,
	}, nil
}

func nominalWindow(horizonDays int) int {
	switch {
	case horizonDays <= 7:
		return 7
	case horizonDays <= 30:
		return 30
	case horizonDays <= 90:
		return 90
	default:
		return 365
	}
}
