package forecast

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/sales-insights/pkg/adapters"
	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/de-tools/sales-insights/pkg/services/forecast"
	"github.com/de-tools/sales-insights/pkg/store/sales"
	"github.com/rs/zerolog"
)

const defaultHorizon = domain.HorizonMonth

type Handler struct {
	ctrl forecast.Controller
}

func NewHandler(ctrl forecast.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// GetForecast serves GET /api/v1/forecast. Query parameters: period
// (week|month|quarter|year), product, region, start_date, end_date
// (2006-01-02), confidence (bool), seed (int64).
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	cfg, err := configFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.ctrl.GenerateReport(ctx, cfg)
	if err != nil {
		if errors.Is(err, forecast.ErrInvalidConfig) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().Err(err).Msg("forecast generation failed")
		http.Error(w, "forecast generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapForecastReportDomainToApi(*report)); err != nil {
		logger.Error().
			Err(err).
			Str("report_id", report.ID).
			Msg("failed to encode forecast report")
	}
}

func configFromQuery(r *http.Request) (domain.ForecastConfig, error) {
	q := r.URL.Query()

	cfg := domain.ForecastConfig{
		Horizon:         defaultHorizon,
		Filters:         map[string]string{},
		Confidence:      true,
		ConfidenceLevel: 0.95,
	}
	if period := q.Get("period"); period != "" {
		cfg.Horizon = domain.Horizon(period)
	}
	if product := q.Get("product"); product != "" {
		cfg.Filters[sales.DimensionProduct] = product
	}
	if region := q.Get("region"); region != "" {
		cfg.Filters[sales.DimensionRegion] = region
	}

	for param, dst := range map[string]**time.Time{"start_date": &cfg.StartDate, "end_date": &cfg.EndDate} {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return cfg, errors.New(param + " must be formatted as 2006-01-02")
		}
		*dst = &t
	}

	if raw := q.Get("confidence"); raw != "" {
		confidence, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, errors.New("confidence must be a boolean")
		}
		cfg.Confidence = confidence
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, errors.New("seed must be an integer")
		}
		cfg.Seed = &seed
	}
	return cfg, nil
}
