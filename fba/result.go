package fba

// ProductionResult is the immutable record of one optimization run for a
// single target metabolite. Rate is the flux through the target's demand
// reaction in mmol/gDW/h and is meaningful only when Status is optimal; for
// any other status it is zero with the status flagged.
type ProductionResult struct {
	TargetID  string
	Status    Status
	Rate      float64
	Objective float64

	// MassRate is the derived space-time yield in g/L/h, computed from the
	// target's molar mass. Zero when the catalog carries no molar mass.
	MassRate float64

	// GrowthRate, SubstrateUptake and Yield are populated when the
	// optimizer is configured with biomass and substrate exchange reaction
	// identifiers. Yield is mol product per mol substrate.
	GrowthRate      float64
	SubstrateUptake float64
	Yield           float64

	// Err is the failure marker for batch evaluation: when non-nil the run
	// could not be performed (Status is StatusFailed) and all numeric
	// fields are zero.
	Err error
}

// Optimal reports whether the run reached an optimal solution.
func (r ProductionResult) Optimal() bool { return r.Status == StatusOptimal }

// KnockoutResult is a ProductionResult obtained under a single knockout,
// plus the delta against the unperturbed baseline for the same target.
type KnockoutResult struct {
	Candidate KnockoutCandidate
	ProductionResult

	// Delta is knockout rate minus baseline rate, defined only when both
	// runs reached optimal status.
	Delta        float64
	DeltaDefined bool

	// Improvement is Delta as a percentage of the baseline rate, zero when
	// Delta is undefined or the baseline rate is zero.
	Improvement float64
}

// MassRate converts a molar production rate (mmol/gDW/h) into a space-time
// yield (g/L/h) using the target's molar mass (g/mol). The conversion
// assumes 1 gDW per litre of reactor volume; it is pure configuration, not
// derived from the model.
func MassRate(rate, molarMass float64) float64 {
	return rate * molarMass / 1000.0
}
