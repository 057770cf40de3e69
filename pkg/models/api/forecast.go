package api

import "time"

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type ForecastPoint struct {
	Date         string  `json:"date"`
	Quantity     float64 `json:"quantity"`
	LowerBound   float64 `json:"lower_bound,omitempty"`
	UpperBound   float64 `json:"upper_bound,omitempty"`
	Revenue      float64 `json:"revenue"`
	RevenueLower float64 `json:"revenue_lower_bound,omitempty"`
	RevenueUpper float64 `json:"revenue_upper_bound,omitempty"`
}

type Evaluation struct {
	MAE  float64 `json:"mae"`
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
}

type SeriesStats struct {
	Mean       float64     `json:"mean"`
	StdDev     float64     `json:"std"`
	Min        float64     `json:"min"`
	Max        float64     `json:"max"`
	Count      int         `json:"count"`
	WeekdayAvg [7]float64  `json:"weekday_avg"`
	MonthAvg   [12]float64 `json:"month_avg"`
}

type RevenueMetrics struct {
	TotalForecastRevenue float64 `json:"total_forecast_revenue"`
	AverageDailyRevenue  float64 `json:"average_daily_revenue"`
	GrowthPct            float64 `json:"revenue_growth_percentage"`
	AvgPricePerUnit      float64 `json:"average_price_per_unit"`
}

type ForecastReport struct {
	Id         string          `json:"id"`
	Period     TimePeriod      `json:"period"`
	Horizon    string          `json:"horizon"`
	Points     []ForecastPoint `json:"forecast"`
	Evaluation Evaluation      `json:"evaluation"`
	Stats      SeriesStats     `json:"patterns"`
	Revenue    RevenueMetrics  `json:"revenue_metrics"`
	Empty      bool            `json:"empty,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}
