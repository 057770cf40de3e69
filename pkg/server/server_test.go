package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/sales-insights/pkg/models/api"
	"github.com/de-tools/sales-insights/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockForecastController struct {
	mock.Mock
}

func (m *mockForecastController) GenerateReport(ctx context.Context, cfg domain.ForecastConfig) (*domain.ForecastReport, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForecastReport), args.Error(1)
}

func TestWebAPI_ForecastRoute(t *testing.T) {
	ctrl := &mockForecastController{}
	ctrl.On("GenerateReport", mock.Anything, mock.Anything).
		Return(&domain.ForecastReport{ID: "report-1", Horizon: domain.HorizonMonth}, nil)

	webAPI := NewWebAPI(zerolog.Nop(), Config{
		Addr:         ":0",
		Dependencies: Dependencies{Forecast: ctrl},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/forecast", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got api.ForecastReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "report-1", got.Id)
	ctrl.AssertExpectations(t)
}

func TestWebAPI_UnknownRoute(t *testing.T) {
	webAPI := NewWebAPI(zerolog.Nop(), Config{
		Addr:         ":0",
		Dependencies: Dependencies{Forecast: &mockForecastController{}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
