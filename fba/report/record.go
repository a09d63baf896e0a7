// Package report holds the ordered result records handed to the export
// collaborator. It stores pure data types and has no dependency on fba/ or
// the model backend.
package report

// Record is one row of the tabular result structure: a production run for
// a target, optionally under a knockout. Insertion order is preserved by
// ResultSet for deterministic export.
type Record struct {
	TargetID    string
	DisplayName string

	// Knockout identifies the perturbation ("" for an unperturbed run);
	// KnockoutKind is "gene" or "reaction" when Knockout is set.
	Knockout     string
	KnockoutKind string

	Status    string
	Rate      float64 // mmol/gDW/h; meaningful only when Status is "optimal"
	MassRate  float64 // g/L/h
	Objective float64

	GrowthRate      float64 // 1/h
	SubstrateUptake float64 // mmol/gDW/h
	Yield           float64 // mol product per mol substrate

	// Delta relative to the unperturbed baseline, defined only for
	// knockout rows where both runs were optimal.
	Delta        float64
	DeltaDefined bool
	Improvement  float64 // Delta as percent of baseline rate

	// Error carries the failure marker for rows that could not be
	// evaluated.
	Error string
}
