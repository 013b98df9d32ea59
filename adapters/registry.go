package adapters

import (
	"fmt"

	"github.com/prebid/prebid-mediation/mopub"
)

// Registry maps ad network names to the builders serving them.
type Registry struct {
	builders map[string]InterstitialBuilder
}

// NewRegistry indexes builders by name. Names must be unique.
func NewRegistry(builders ...InterstitialBuilder) (*Registry, error) {
	r := &Registry{builders: make(map[string]InterstitialBuilder, len(builders))}
	for _, b := range builders {
		name := b.Name()
		if _, exists := r.builders[name]; exists {
			return nil, fmt.Errorf("duplicate adapter name %q", name)
		}
		r.builders[name] = b
	}
	return r, nil
}

// NewInterstitial creates a custom event for the named network.
func (r *Registry) NewInterstitial(network string) (mopub.CustomEventInterstitial, error) {
	b, ok := r.builders[network]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for network %q", network)
	}
	return b.NewInterstitial(), nil
}
