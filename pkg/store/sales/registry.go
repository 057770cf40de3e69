package sales

import (
	"fmt"
	"sync"
)

// StoreFactory is a function type that creates a Store from a config path
type StoreFactory func(configPath string) (Store, error)

// Registry manages platform store factories
type Registry interface {
	// Register adds a new platform store factory
	Register(platform string, factory StoreFactory) error
	// Create instantiates a store for the specified platform using the provided config
	Create(platform, configPath string) (Store, error)
	// ListPlatforms returns a list of registered platforms
	ListPlatforms() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]StoreFactory
}

// NewRegistry creates a new store registry
func NewRegistry(factories map[string]StoreFactory) Registry {
	r := &registry{
		factories: make(map[string]StoreFactory),
	}
	for platform, factory := range factories {
		_ = r.Register(platform, factory)
	}
	return r
}

func (r *registry) Register(platform string, factory StoreFactory) error {
	if platform == "" {
		return fmt.Errorf("platform name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[platform]; exists {
		return fmt.Errorf("platform %q is already registered", platform)
	}

	r.factories[platform] = factory
	return nil
}

func (r *registry) Create(platform, configPath string) (Store, error) {
	r.mu.RLock()
	factory, exists := r.factories[platform]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("platform %q is not registered", platform)
	}

	return factory(configPath)
}

func (r *registry) ListPlatforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	platforms := make([]string, 0, len(r.factories))
	for platform := range r.factories {
		platforms = append(platforms, platform)
	}
	return platforms
}
