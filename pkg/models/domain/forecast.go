package domain

import (
	"fmt"
	"time"
)

// Horizon is the named forecast period requested by the caller.
type Horizon string

const (
	HorizonWeek    Horizon = "week"
	HorizonMonth   Horizon = "month"
	HorizonQuarter Horizon = "quarter"
	HorizonYear    Horizon = "year"
)

// Days maps the horizon keyword to a number of forecast days.
func (h Horizon) Days() (int, error) {
	switch h {
	case HorizonWeek:
		return 7, nil
	case HorizonMonth:
		return 30, nil
	case HorizonQuarter:
		return 90, nil
	case HorizonYear:
		return 365, nil
	default:
		return 0, fmt.Errorf("unknown horizon %q, must be one of week, month, quarter, year", string(h))
	}
}

// ForecastConfig is the full configuration surface of the forecasting
// engine. StartDate/EndDate override the default lookback window; Seed
// pins the random source for reproducible output.
type ForecastConfig struct {
	Horizon         Horizon
	StartDate       *time.Time
	EndDate         *time.Time
	Filters         map[string]string
	Confidence      bool
	ConfidenceLevel float64
	Seed            *int64
}

// FittedModel is the result of fitting the moving-average baseline.
// Immutable once produced.
type FittedModel struct {
	WindowSize     int
	MovingAvg      float64
	ResidualStd    float64
	TrendPerPeriod float64
}

// ForecastPoint is a single forecast day. Bounds are zero when the
// request did not ask for prediction intervals.
type ForecastPoint struct {
	Date         time.Time
	Quantity     float64
	LowerBound   float64
	UpperBound   float64
	Revenue      float64
	RevenueLower float64
	RevenueUpper float64
}

// Evaluation holds in-sample accuracy metrics of the fitted baseline.
type Evaluation struct {
	MAE  float64
	MSE  float64
	RMSE float64
}

// RevenueMetrics summarizes the revenue side of a forecast.
type RevenueMetrics struct {
	TotalForecastRevenue float64
	AverageDailyRevenue  float64
	// GrowthPct is the percentage change between the first and the last
	// forecast day.
	GrowthPct       float64
	AvgPricePerUnit float64
}

// TimePeriod is the historical range the forecast was fitted on.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ForecastReport is the self-contained result of one forecast request.
// When no transactions exist for the requested range, Empty is true,
// Reason says why, and all other fields besides ID and Period are zero.
type ForecastReport struct {
	ID         string
	Period     TimePeriod
	Horizon    Horizon
	Points     []ForecastPoint
	Model      FittedModel
	Evaluation Evaluation
	Stats      SeriesStats
	Revenue    RevenueMetrics
	Empty      bool
	Reason     string
}
