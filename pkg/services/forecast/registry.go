package forecast

import (
	"fmt"
	"sync"

	"github.com/de-tools/sales-insights/pkg/models/domain"
)

// ModelMovingAverage is the only model shipped today; the registry keeps
// the fit stage open for alternatives without touching the controller.
const ModelMovingAverage = "moving_average"

// Fitter fits a baseline model to a daily series for a given horizon.
type Fitter func(series domain.DailySeries, horizonDays int) (domain.FittedModel, error)

// Registry manages model fitters by name
type Registry interface {
	// Register adds a new model fitter
	Register(model string, fitter Fitter) error
	// Fitter returns the fitter registered under the model name
	Fitter(model string) (Fitter, error)
	// ListModels returns a list of registered model names
	ListModels() []string
}

type registry struct {
	mu      sync.RWMutex
	fitters map[string]Fitter
}

// NewRegistry creates a registry with the default moving-average model
// pre-registered.
func NewRegistry() Registry {
	r := &registry{fitters: make(map[string]Fitter)}
	_ = r.Register(ModelMovingAverage, FitMovingAverage)
	return r
}

func (r *registry) Register(model string, fitter Fitter) error {
	if model == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if fitter == nil {
		return fmt.Errorf("fitter cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.fitters[model]; exists {
		return fmt.Errorf("model %q is already registered", model)
	}

	r.fitters[model] = fitter
	return nil
}

func (r *registry) Fitter(model string) (Fitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fitter, exists := r.fitters[model]
	if !exists {
		return nil, fmt.Errorf("model %q is not registered", model)
	}
	return fitter, nil
}

func (r *registry) ListModels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.fitters))
	for model := range r.fitters {
		models = append(models, model)
	}
	return models
}
