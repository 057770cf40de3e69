package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/de-tools/sales-insights/pkg/runtime/terminal/export"
	"github.com/de-tools/sales-insights/pkg/services/forecast"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/spf13/cobra"
)

type ForecastCmd struct {
	profilePath string
	platform    string
	period      string
	product     string
	region      string
	startDate   string
	endDate     string
	confidence  bool
	seed        int64
	registry    sales.Registry
	reporter    *export.Reporter
}

func NewForecastCmd(registry sales.Registry, reporter *export.Reporter) *cobra.Command {
	fc := &ForecastCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Generate a demand and revenue forecast",
		RunE:  fc.run,
	}

	cmd.Flags().StringVar(&fc.profilePath, "profile", "", "Path to the platform configuration profile")
	cmd.Flags().StringVar(&fc.platform, "platform", "duckdb", "Transaction store platform (duckdb, snowflake, databricks)")
	cmd.Flags().StringVar(&fc.period, "period", "month", "Forecast horizon (week, month, quarter, year)")
	cmd.Flags().StringVar(&fc.product, "product", "", "Filter by product key")
	cmd.Flags().StringVar(&fc.region, "region", "", "Filter by region key")
	cmd.Flags().StringVar(&fc.startDate, "start", "", "History start date (2006-01-02), defaults to 90 days before end")
	cmd.Flags().StringVar(&fc.endDate, "end", "", "History end date (2006-01-02), defaults to the latest transaction")
	cmd.Flags().BoolVar(&fc.confidence, "confidence", true, "Include prediction intervals")
	cmd.Flags().Int64Var(&fc.seed, "seed", 0, "Random seed for reproducible output (0 = unseeded)")

	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := fc.registry.Create(fc.platform, fc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to create a store for platform %s: %w", fc.platform, err)
	}
	defer store.Close()

	cfg := domain.ForecastConfig{
		Horizon:         domain.Horizon(fc.period),
		Filters:         map[string]string{},
		Confidence:      fc.confidence,
		ConfidenceLevel: 0.95,
	}
	if fc.product != "" {
		cfg.Filters[sales.DimensionProduct] = fc.product
	}
	if fc.region != "" {
		cfg.Filters[sales.DimensionRegion] = fc.region
	}
	if fc.seed != 0 {
		seed := fc.seed
		cfg.Seed = &seed
	}

	if cfg.StartDate, err = parseDateFlag("start", fc.startDate); err != nil {
		return err
	}
	if cfg.EndDate, err = parseDateFlag("end", fc.endDate); err != nil {
		return err
	}

	ctrl := forecast.NewController(store)
	report, err := ctrl.GenerateReport(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to generate forecast: %w", err)
	}

	return fc.reporter.Handle(report)
}

func parseDateFlag(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("--%s must be formatted as 2006-01-02: %w", name, err)
	}
	return &t, nil
}
