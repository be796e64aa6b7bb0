package providers

import "log/slog"

// Registry holds configured providers in a fixed priority order. Adding a new
// backend only requires registering another Provider implementation.
type Registry struct {
	logger    *slog.Logger
	providers map[string]Provider
	order     []string
}

// NewRegistry creates an empty provider registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:    logger,
		providers: make(map[string]Provider),
		order:     make([]string, 0),
	}
}

// Register adds a provider; registration order is fallback priority order.
func (r *Registry) Register(provider Provider) {
	id := provider.ID()

	if _, exists := r.providers[id]; !exists {
		r.order = append(r.order, id)
	}

	r.providers[id] = provider

	r.logger.Info("generation provider registered", "provider", id)
}

// Get returns the provider with the given id.
func (r *Registry) Get(id string) (Provider, bool) {
	provider, ok := r.providers[id]

	return provider, ok
}

// Available returns provider ids in priority order.
func (r *Registry) Available() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)

	return ids
}
