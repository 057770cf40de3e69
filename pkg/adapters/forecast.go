package adapters

import (
	"github.com/de-tools/sales-insights/pkg/models/api"
	"github.com/de-tools/sales-insights/pkg/models/domain"
)

func MapTimePeriodDomainToApi(p domain.TimePeriod) api.TimePeriod {
	return api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration,
	}
}

func MapForecastPointDomainToApi(p domain.ForecastPoint) api.ForecastPoint {
	return api.ForecastPoint{
		Date:         p.Date.Format("2006-01-02"),
		Quantity:     p.Quantity,
		LowerBound:   p.LowerBound,
		UpperBound:   p.UpperBound,
		Revenue:      p.Revenue,
		RevenueLower: p.RevenueLower,
		RevenueUpper: p.RevenueUpper,
	}
}

func MapSeriesStatsDomainToApi(s domain.SeriesStats) api.SeriesStats {
	return api.SeriesStats{
		Mean:       s.Mean,
		StdDev:     s.StdDev,
		Min:        s.Min,
		Max:        s.Max,
		Count:      s.Count,
		WeekdayAvg: s.WeekdayAvg,
		MonthAvg:   s.MonthAvg,
	}
}

func MapForecastReportDomainToApi(r domain.ForecastReport) api.ForecastReport {
	res := api.ForecastReport{
		Id:      r.ID,
		Period:  MapTimePeriodDomainToApi(r.Period),
		Horizon: string(r.Horizon),
		Points:  make([]api.ForecastPoint, 0, len(r.Points)),
		Evaluation: api.Evaluation{
			MAE:  r.Evaluation.MAE,
			MSE:  r.Evaluation.MSE,
			RMSE: r.Evaluation.RMSE,
		},
		Stats: MapSeriesStatsDomainToApi(r.Stats),
		Revenue: api.RevenueMetrics{
			TotalForecastRevenue: r.Revenue.TotalForecastRevenue,
			AverageDailyRevenue:  r.Revenue.AverageDailyRevenue,
			GrowthPct:            r.Revenue.GrowthPct,
			AvgPricePerUnit:      r.Revenue.AvgPricePerUnit,
		},
		Empty:  r.Empty,
		Reason: r.Reason,
	}
	for _, p := range r.Points {
		res.Points = append(res.Points, MapForecastPointDomainToApi(p))
	}
	return res
}
