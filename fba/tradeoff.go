package fba

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TradeoffPoint is one point on the growth-vs-production frontier: the
// production result obtained with growth constrained to at least
// GrowthConstraint.
type TradeoffPoint struct {
	GrowthConstraint float64 // 1/h, forced lower bound on the biomass reaction
	ProductionResult
}

// GrowthGrid returns evenly spaced growth constraints from 0 to maxRate
// inclusive.
func GrowthGrid(maxRate float64, points int) []float64 {
	if points <= 1 {
		return []float64{0}
	}
	out := make([]float64, points)
	step := maxRate / float64(points-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// GrowthTradeoff traces the trade-off between growth and production for one
// target: the biomass reaction's lower bound is forced to each growth rate
// in turn and the target's production is re-optimized under that
// constraint. Points are returned in input order. A constraint the network
// cannot satisfy is an infeasible point, not an error; the biomass bounds
// are restored after every point, so the sweep leaves the model untouched.
func (o *Optimizer) GrowthTradeoff(targetID string, growthRates []float64) ([]TradeoffPoint, error) {
	if o.cfg.BiomassReactionID == "" {
		return nil, fmt.Errorf("growth tradeoff needs a configured biomass reaction")
	}
	base, err := o.adapter.Bounds(o.cfg.BiomassReactionID)
	if err != nil {
		return nil, err
	}

	points := make([]TradeoffPoint, 0, len(growthRates))
	for _, rate := range growthRates {
		var res ProductionResult
		err := o.adapter.WithTemporaryBounds(o.cfg.BiomassReactionID,
			Bounds{Lower: rate, Upper: base.Upper}, func() error {
				var optErr error
				res, optErr = o.Optimize(targetID)
				return optErr
			})
		if err != nil {
			return nil, fmt.Errorf("tradeoff point at growth %.4f: %w", rate, err)
		}
		logrus.Debugf("growth >= %.2f: %s production %.4f (%s)", rate, targetID, res.Rate, res.Status)
		points = append(points, TradeoffPoint{GrowthConstraint: rate, ProductionResult: res})
	}
	return points, nil
}
