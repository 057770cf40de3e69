package forecast

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	storesql "github.com/de-tools/sales-insights/pkg/store/sql"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultLookbackDays is the historical window fitted when the request
// carries no explicit start date.
const defaultLookbackDays = 90

// Controller is the public entry point of the forecasting engine. One
// call produces one self-contained report; nothing is cached or shared
// between calls, so independent requests may run concurrently.
type Controller interface {
	GenerateReport(ctx context.Context, cfg domain.ForecastConfig) (*domain.ForecastReport, error)
}

type controller struct {
	store       sales.Store
	models      Registry
	holdoutDays int
}

type Option func(*controller)

// WithModelRegistry swaps the model registry; the default carries only
// the moving-average baseline.
func WithModelRegistry(r Registry) Option {
	return func(c *controller) { c.models = r }
}

// WithHoldoutDays evaluates the fitted model against only the last n
// days of the series instead of the full in-sample window. The default
// (0) reproduces the original in-sample behaviour.
func WithHoldoutDays(n int) Option {
	return func(c *controller) { c.holdoutDays = n }
}

// NewController creates a forecast controller bound to a transaction
// store. The caller owns the store handle and must close it when done.
func NewController(store sales.Store, opts ...Option) Controller {
	c := &controller{
		store:  store,
		models: NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *controller) GenerateReport(ctx context.Context, cfg domain.ForecastConfig) (*domain.ForecastReport, error) {
	logger := zerolog.Ctx(ctx)

	horizonDays, err := cfg.Horizon.Days()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	start, end, err := c.resolveRange(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if end.IsZero() {
		// store holds no transactions at all
		return noDataReport(cfg.Horizon, domain.TimePeriod{}, "transaction store is empty"), nil
	}
	period := domain.TimePeriod{
		Start:    start,
		End:      end,
		Duration: int(end.Sub(start).Hours()/24) + 1,
	}

	records, err := c.store.FetchTransactions(ctx, sales.TxnQuery{
		Start:   start,
		End:     end,
		Filters: cfg.Filters,
	})
	if err != nil {
		if errors.Is(err, storesql.ErrUnknownDimension) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	series := BuildDailySeries(records)
	if series.Empty() {
		logger.Warn().
			Time("start", start).
			Time("end", end).
			Msg("no transactions found for the requested period")
		reason := fmt.Sprintf("no transactions between %s and %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		return noDataReport(cfg.Horizon, period, reason), nil
	}

	stats := AnalyzePatterns(series)

	fit, err := c.models.Fitter(ModelMovingAverage)
	if err != nil {
		return nil, err
	}
	model, err := fit(series, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("fit %s model: %w", ModelMovingAverage, err)
	}

	var rng *rand.Rand
	if cfg.Seed != nil {
		rng = rand.New(rand.NewSource(*cfg.Seed))
	}
	points := Generate(model, series, horizonDays, cfg.Confidence, rng)

	evalSeries := series
	if c.holdoutDays > 0 && c.holdoutDays < len(series) {
		evalSeries = series[len(series)-c.holdoutDays:]
	}
	evaluation := Evaluate(model, evalSeries)

	report := &domain.ForecastReport{
		ID:         uuid.NewString(),
		Period:     period,
		Horizon:    cfg.Horizon,
		Points:     points,
		Model:      model,
		Evaluation: evaluation,
		Stats:      stats,
		Revenue:    revenueMetrics(series, model, points),
	}

	logger.Info().
		Str("report_id", report.ID).
		Str("horizon", string(cfg.Horizon)).
		Int("window", model.WindowSize).
		Int("points", len(points)).
		Msg("forecast generated")

	return report, nil
}

// resolveRange applies the explicit overrides or falls back to the
// latest transaction date minus the default lookback. A zero end time
// with a nil error means the store is empty.
func (c *controller) resolveRange(ctx context.Context, cfg domain.ForecastConfig) (time.Time, time.Time, error) {
	var end time.Time
	if cfg.EndDate != nil {
		end = *cfg.EndDate
	} else {
		latest, err := c.store.LatestTxnDate(ctx)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("resolve latest txn date: %w", err)
		}
		if latest == nil {
			return time.Time{}, time.Time{}, nil
		}
		end = *latest
	}

	var start time.Time
	if cfg.StartDate != nil {
		start = *cfg.StartDate
	} else {
		start = end.AddDate(0, 0, -defaultLookbackDays)
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidConfig, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return start, end, nil
}

func noDataReport(horizon domain.Horizon, period domain.TimePeriod, reason string) *domain.ForecastReport {
	return &domain.ForecastReport{
		ID:      uuid.NewString(),
		Period:  period,
		Horizon: horizon,
		Empty:   true,
		Reason:  reason,
	}
}

func revenueMetrics(series domain.DailySeries, model domain.FittedModel, points []domain.ForecastPoint) domain.RevenueMetrics {
	m := domain.RevenueMetrics{
		AvgPricePerUnit: avgPricePerUnit(series, model.WindowSize),
	}
	if len(points) == 0 {
		return m
	}

	for _, p := range points {
		m.TotalForecastRevenue += p.Revenue
	}
	m.AverageDailyRevenue = m.TotalForecastRevenue / float64(len(points))

	first := points[0].Revenue
	last := points[len(points)-1].Revenue
	if first != 0 {
		m.GrowthPct = (last - first) / first * 100
	}
	return m
}
