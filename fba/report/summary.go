package report

// Summary condenses a ResultSet for logging and the exported run header.
type Summary struct {
	TotalRecords int            `yaml:"total_records"`
	StatusCounts map[string]int `yaml:"status_counts"`

	// Best unperturbed production run across all targets.
	BestTarget   string  `yaml:"best_target,omitempty"`
	BestRate     float64 `yaml:"best_rate,omitempty"`      // mmol/gDW/h
	BestMassRate float64 `yaml:"best_mass_rate,omitempty"` // g/L/h

	// Best knockout by delta, when any knockout row has a defined delta.
	BestKnockout      string  `yaml:"best_knockout,omitempty"`
	BestKnockoutDelta float64 `yaml:"best_knockout_delta,omitempty"`
}

// Summarize folds the result set into a Summary. Baseline rows (no
// knockout) compete for the best target; knockout rows with a defined
// delta compete for the best knockout. Ties keep the earliest record.
func (rs *ResultSet) Summarize() Summary {
	s := Summary{
		TotalRecords: len(rs.Records),
		StatusCounts: make(map[string]int),
	}
	haveBest, haveKO := false, false
	for _, r := range rs.Records {
		s.StatusCounts[r.Status]++
		if r.Knockout == "" {
			if r.Status == "optimal" && (!haveBest || r.Rate > s.BestRate) {
				s.BestTarget, s.BestRate, s.BestMassRate = r.TargetID, r.Rate, r.MassRate
				haveBest = true
			}
			continue
		}
		if r.DeltaDefined && (!haveKO || r.Delta > s.BestKnockoutDelta) {
			s.BestKnockout, s.BestKnockoutDelta = r.Knockout, r.Delta
			haveKO = true
		}
	}
	return s
}

// ImprovementFactor returns how many times the best mass rate must grow to
// reach the given space-time-yield target (g/L/h). Zero when no optimal
// run produced mass.
func (s Summary) ImprovementFactor(targetMassRate float64) float64 {
	if s.BestMassRate <= 0 {
		return 0
	}
	return targetMassRate / s.BestMassRate
}
