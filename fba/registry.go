package fba

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DemandRegistry performs idempotent bulk registration of demand reactions
// for a target catalog on top of the Adapter.
type DemandRegistry struct {
	adapter *Adapter
}

// NewDemandRegistry builds a registry over the given adapter.
func NewDemandRegistry(a *Adapter) *DemandRegistry {
	return &DemandRegistry{adapter: a}
}

// EnsureAll registers a demand reaction for every catalog target that does
// not yet have one and returns the full current target -> demand mapping.
// Safe to call repeatedly; existing registrations are never duplicated.
// Targets whose pool metabolite is absent from the model are skipped with a
// warning, matching the tolerant bulk semantics expected from catalog-driven
// setup; all other registration errors abort.
func (r *DemandRegistry) EnsureAll(catalog Catalog) (map[string]DemandReaction, error) {
	for _, t := range catalog.Targets {
		if _, ok := r.adapter.Demand(t.ID); ok {
			continue
		}
		_, err := r.adapter.RegisterDemandReaction(t.ID, t.Pool, 0)
		if err != nil {
			if errors.Is(err, ErrUnknownMetabolite) {
				logrus.Warnf("skipping target %s: pool metabolite %s not in model", t.ID, t.Pool)
				continue
			}
			return nil, fmt.Errorf("registering demand for %s: %w", t.ID, err)
		}
	}
	return r.adapter.Demands(), nil
}
