package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/sales-insights/pkg/models/domain"
)

type TableConfig struct {
	DateWidth     int
	QuantityWidth int
	BoundsWidth   int
	RevenueWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:     12,
		QuantityWidth: 12,
		BoundsWidth:   24,
		RevenueWidth:  14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.ForecastReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(date string, quantity interface{}, bounds string, revenue interface{}) string {
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*v |",
				c.config.DateWidth, date,
				c.config.QuantityWidth, quantity,
				c.config.BoundsWidth, bounds,
				c.config.RevenueWidth, revenue)
		},
		"formatPoint": func(p domain.ForecastPoint) string {
			bounds := ""
			if p.UpperBound != 0 || p.LowerBound != 0 {
				bounds = fmt.Sprintf("[%.2f, %.2f]", p.LowerBound, p.UpperBound)
			}
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.DateWidth, p.Date.Format("2006-01-02"),
				c.config.QuantityWidth, fmt.Sprintf("%.2f", p.Quantity),
				c.config.BoundsWidth, bounds,
				c.config.RevenueWidth, fmt.Sprintf("%.2f", p.Revenue))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DateWidth+2),
				strings.Repeat("-", c.config.QuantityWidth+2),
				strings.Repeat("-", c.config.BoundsWidth+2),
				strings.Repeat("-", c.config.RevenueWidth+2))
		},
	}

	tmpl := `
Demand Forecast {{.ID}} ({{.Horizon}})
{{- if .Empty}}

No data: {{.Reason}}
{{- else}}

History: {{.Period.Start.Format "2006-01-02"}} to {{.Period.End.Format "2006-01-02"}} ({{.Period.Duration}} days)

Model: moving average over {{.Model.WindowSize}} days
  moving avg: {{printf "%.2f" .Model.MovingAvg}}  residual std: {{printf "%.2f" .Model.ResidualStd}}  trend/day: {{printf "%.2f" .Model.TrendPerPeriod}}

Accuracy: MAE {{printf "%.2f" .Evaluation.MAE}}  MSE {{printf "%.2f" .Evaluation.MSE}}  RMSE {{printf "%.2f" .Evaluation.RMSE}}

Revenue: total {{printf "%.2f" .Revenue.TotalForecastRevenue}}  daily avg {{printf "%.2f" .Revenue.AverageDailyRevenue}}  growth {{printf "%.1f" .Revenue.GrowthPct}}%  unit price {{printf "%.2f" .Revenue.AvgPricePerUnit}}

{{separator}}
{{formatRow "Date" "Quantity" "Bounds (95%)" "Revenue"}}
{{separator}}
{{range .Points}}{{formatPoint .}}
{{end}}{{separator}}
{{- end}}
`

	t, err := template.New("forecast").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
