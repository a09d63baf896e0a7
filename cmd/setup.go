package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sutyum/ecoli-code/fba"
	"github.com/sutyum/ecoli-code/fba/stoich"
)

// run holds the wired-up engine for one CLI invocation.
type run struct {
	catalog   fba.Catalog
	adapter   *fba.Adapter
	optimizer *fba.Optimizer
}

// setupRun loads the model and catalog, applies the medium (and cell-free
// derivation when requested), and registers demand reactions for every
// catalog target.
func setupRun() (*run, error) {
	if modelPath == "" {
		return nil, fmt.Errorf("--model is required")
	}
	network, err := stoich.LoadJSON(modelPath)
	if err != nil {
		return nil, err
	}

	catalog := fba.DefaultCatalog()
	if catalogPath != "" {
		catalog, err = fba.LoadCatalog(catalogPath)
		if err != nil {
			return nil, err
		}
	}

	medium, err := fba.SubstrateMedium(substrate)
	if err != nil {
		return nil, err
	}
	substrateExchange := carbonExchange(medium)
	if uptakeRate > 0 {
		medium[substrateExchange] = uptakeRate
	}

	adapter := fba.NewAdapter(network)
	// Tolerate medium exchanges the model does not declare; small models
	// rarely carry the full mineral salt set.
	for id := range medium {
		if !network.HasReaction(id) {
			logrus.Warnf("medium exchange %s not in model, skipping", id)
			delete(medium, id)
		}
	}
	if err := medium.Apply(adapter); err != nil {
		return nil, err
	}

	if cellFree {
		if _, err := fba.DeriveCellFree(adapter); err != nil {
			return nil, err
		}
	}

	registry := fba.NewDemandRegistry(adapter)
	demands, err := registry.EnsureAll(catalog)
	if err != nil {
		return nil, err
	}
	logrus.Infof("registered %d demand reactions for %d catalog targets", len(demands), len(catalog.Targets))

	cfg := fba.OptimizerConfig{
		BiomassReactionID:   biomassID,
		SubstrateExchangeID: substrateExchange,
	}
	if !network.HasReaction(cfg.SubstrateExchangeID) {
		cfg.SubstrateExchangeID = ""
	}
	return &run{
		catalog:   catalog,
		adapter:   adapter,
		optimizer: fba.NewOptimizer(adapter, catalog, cfg),
	}, nil
}

// carbonExchange picks the carbon-source exchange out of a substrate
// medium: the one entry that is not oxygen or a mineral salt.
func carbonExchange(m fba.Medium) string {
	for id, rate := range m {
		if id != "EX_o2_e" && rate < 1000 {
			return id
		}
	}
	return ""
}
