package fba

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// OptimizerConfig points the optimizer at well-known reactions so that
// growth and substrate figures can be read off the flux distribution. Both
// fields are optional; empty identifiers disable the corresponding fields
// in ProductionResult.
type OptimizerConfig struct {
	// BiomassReactionID is the model's growth reaction
	// (e.g. BIOMASS_Ec_iML1515_core_75p37M).
	BiomassReactionID string
	// SubstrateExchangeID is the primary carbon-source exchange reaction
	// (e.g. EX_glc__D_e); uptake is the magnitude of its negative flux.
	SubstrateExchangeID string
}

// Optimizer computes the maximum achievable production rate for catalog
// targets under the model's current constraints.
type Optimizer struct {
	adapter *Adapter
	catalog Catalog
	cfg     OptimizerConfig
}

// NewOptimizer builds an optimizer over the adapter and target catalog.
func NewOptimizer(a *Adapter, catalog Catalog, cfg OptimizerConfig) *Optimizer {
	return &Optimizer{adapter: a, catalog: catalog, cfg: cfg}
}

// Adapter exposes the underlying adapter, for composition with the
// screener.
func (o *Optimizer) Adapter() *Adapter { return o.adapter }

// Optimize maximizes flux through the target's demand reaction and packages
// the solve into a ProductionResult. Fails with ErrUnregisteredTarget,
// leaving the model's objective untouched, when no demand reaction is
// registered for the target. Non-optimal solver statuses are reported in
// the result, never as errors.
func (o *Optimizer) Optimize(targetID string) (ProductionResult, error) {
	demand, ok := o.adapter.Demand(targetID)
	if !ok {
		return ProductionResult{}, fmt.Errorf("%w: %q", ErrUnregisteredTarget, targetID)
	}
	if err := o.adapter.SetObjective(demand.ReactionID); err != nil {
		return ProductionResult{}, err
	}
	sol, err := o.adapter.Solve()
	if err != nil {
		return ProductionResult{}, fmt.Errorf("solving for %s: %w", targetID, err)
	}

	res := ProductionResult{
		TargetID:  targetID,
		Status:    sol.Status,
		Objective: sol.Objective,
	}
	if sol.Status != StatusOptimal {
		logrus.Warnf("optimization for %s finished %s", targetID, sol.Status)
		return res, nil
	}

	res.Rate = sol.Fluxes[demand.ReactionID]
	if t, ok := o.catalog.Target(targetID); ok && t.MolarMass > 0 {
		res.MassRate = MassRate(res.Rate, t.MolarMass)
	}
	if o.cfg.BiomassReactionID != "" {
		res.GrowthRate = sol.Fluxes[o.cfg.BiomassReactionID]
	}
	if o.cfg.SubstrateExchangeID != "" {
		res.SubstrateUptake = math.Abs(sol.Fluxes[o.cfg.SubstrateExchangeID])
		if res.SubstrateUptake > 0 {
			res.Yield = res.Rate / res.SubstrateUptake
		}
	}
	logrus.Debugf("optimized %s: %.4f mmol/gDW/h", targetID, res.Rate)
	return res, nil
}

// OptimizeAll evaluates each target independently and in the given order.
// A failure on one target never aborts the rest: input errors are recorded
// inline as failure markers (Status StatusFailed, Err set).
func (o *Optimizer) OptimizeAll(targetIDs []string) []ProductionResult {
	results := make([]ProductionResult, 0, len(targetIDs))
	for _, id := range targetIDs {
		res, err := o.Optimize(id)
		if err != nil {
			logrus.Warnf("skipping target %s: %v", id, err)
			res = ProductionResult{TargetID: id, Status: StatusFailed, Err: err}
		}
		results = append(results, res)
	}
	return results
}
