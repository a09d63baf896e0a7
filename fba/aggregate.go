package fba

import "github.com/sutyum/ecoli-code/fba/report"

// productionRecord folds one production run into a report row.
func productionRecord(catalog Catalog, res ProductionResult) report.Record {
	rec := report.Record{
		TargetID:        res.TargetID,
		Status:          string(res.Status),
		Rate:            res.Rate,
		MassRate:        res.MassRate,
		Objective:       res.Objective,
		GrowthRate:      res.GrowthRate,
		SubstrateUptake: res.SubstrateUptake,
		Yield:           res.Yield,
	}
	if t, ok := catalog.Target(res.TargetID); ok {
		rec.DisplayName = t.DisplayName
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	return rec
}

// Aggregate folds per-target production results into a ResultSet, one row
// per target, preserving input order.
func Aggregate(catalog Catalog, results []ProductionResult) *report.ResultSet {
	rs := report.NewResultSet()
	for _, res := range results {
		rs.Add(productionRecord(catalog, res))
	}
	return rs
}

// AggregateScreen folds a knockout screen into a ResultSet: the baseline
// row first, then one row per candidate in screening order.
func AggregateScreen(catalog Catalog, baseline ProductionResult, results []KnockoutResult) *report.ResultSet {
	rs := report.NewResultSet()
	rs.Add(productionRecord(catalog, baseline))
	for _, kr := range results {
		rec := productionRecord(catalog, kr.ProductionResult)
		rec.Knockout = kr.Candidate.ID
		rec.KnockoutKind = string(kr.Candidate.Kind)
		rec.Delta = kr.Delta
		rec.DeltaDefined = kr.DeltaDefined
		rec.Improvement = kr.Improvement
		rs.Add(rec)
	}
	return rs
}
