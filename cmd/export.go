package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sutyum/ecoli-code/fba/report"
)

// CSV column headers for the results export.
var resultColumns = []string{
	"target", "display_name", "knockout", "knockout_kind", "status",
	"rate_mmol_gdw_h", "mass_rate_g_l_h", "objective",
	"growth_rate", "substrate_uptake", "yield_mol_mol",
	"delta", "improvement_pct", "error",
}

// writeResultsCSV writes the result set to a CSV file, one row per record,
// in record order.
func writeResultsCSV(path string, rs *report.ResultSet) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(resultColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rs.Records {
		delta := ""
		improvement := ""
		if r.DeltaDefined {
			delta = formatFloat(r.Delta)
			improvement = formatFloat(r.Improvement)
		}
		row := []string{
			r.TargetID,
			r.DisplayName,
			r.Knockout,
			r.KnockoutKind,
			r.Status,
			formatFloat(r.Rate),
			formatFloat(r.MassRate),
			formatFloat(r.Objective),
			formatFloat(r.GrowthRate),
			formatFloat(r.SubstrateUptake),
			formatFloat(r.Yield),
			delta,
			improvement,
			r.Error,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	return writer.Error()
}

// writeSummaryYAML writes the condensed run summary to a YAML file.
func writeSummaryYAML(path string, rs *report.ResultSet) error {
	data, err := yaml.Marshal(rs.Summarize())
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
