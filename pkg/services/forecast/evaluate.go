package forecast

import (
	"math"

	"github.com/de-tools/sales-insights/pkg/models/domain"
)

// Evaluate measures the fitted baseline against a series: every
// prediction is the constant moving average, so the metrics quantify how
// far actual demand strays from the flat baseline. The default
// orchestration evaluates in-sample; callers may pass a held-out slice
// instead.
func Evaluate(model domain.FittedModel, series domain.DailySeries) domain.Evaluation {
	if series.Empty() {
		return domain.Evaluation{}
	}

	var absSum, sqSum float64
	for _, p := range series {
		d := p.Quantity - model.MovingAvg
		absSum += math.Abs(d)
		sqSum += d * d
	}

	n := float64(len(series))
	mse := sqSum / n
	return domain.Evaluation{
		MAE:  absSum / n,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
	}
}
