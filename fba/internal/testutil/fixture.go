// Package testutil provides the shared network fixture used across fba and
// cmd test packages: a miniature aerobic E. coli-like network with lumped
// glycolysis, fermentation branches, respiration, and C8 fatty-acid
// synthesis, small enough that every optimal rate is checkable by hand.
package testutil

import (
	"fmt"

	"github.com/sutyum/ecoli-code/fba"
	"github.com/sutyum/ecoli-code/fba/stoich"
)

// MiniNetwork builds the fixture network. With the default bounds
// (glucose uptake 10, oxygen uptake 20, ATP maintenance >= 1) the maximum
// octanoyl-CoA drain is exactly 5.0 mmol/gDW/h: 10 glucose -> 20 pyruvate
// -> 20 acetyl-CoA, 4 acetyl-CoA per C8 unit. ATP (20 made, 15+1 needed)
// and NADH (40 made, 30 consumed, remainder respired) are slack.
func MiniNetwork() *stoich.Network {
	n := stoich.NewNetwork("mini_fa_core")

	mets := []struct{ id, name, comp string }{
		{"glc__D_e", "D-Glucose", "e"},
		{"o2_e", "O2", "e"},
		{"glc__D_c", "D-Glucose", "c"},
		{"pyr_c", "Pyruvate", "c"},
		{"nadh_c", "NADH", "c"},
		{"atp_c", "ATP", "c"},
		{"accoa_c", "Acetyl-CoA", "c"},
		{"actp_c", "Acetyl phosphate", "c"},
		{"ac_c", "Acetate", "c"},
		{"etoh_c", "Ethanol", "c"},
		{"lac__D_c", "D-Lactate", "c"},
		{"occoa_c", "Octanoyl-CoA", "c"},
	}
	for _, m := range mets {
		mustAdd(n.AddMetabolite(m.id, m.name, m.comp))
	}

	type rxn struct {
		id, name string
		stoich   map[string]float64
		lb, ub   float64
		rule     string
	}
	reactions := []rxn{
		{"EX_glc__D_e", "Glucose exchange", map[string]float64{"glc__D_e": -1}, -10, 1000, ""},
		{"EX_o2_e", "Oxygen exchange", map[string]float64{"o2_e": -1}, -20, 1000, ""},
		{"EX_ac_e", "Acetate exchange", map[string]float64{"ac_c": -1}, 0, 1000, ""},
		{"EX_etoh_e", "Ethanol exchange", map[string]float64{"etoh_c": -1}, 0, 1000, ""},
		{"EX_lac__D_e", "D-Lactate exchange", map[string]float64{"lac__D_c": -1}, 0, 1000, ""},
		{"GLCt", "Glucose transport", map[string]float64{"glc__D_e": -1, "glc__D_c": 1}, 0, 1000, "b2415 and b2416"},
		{"PYK", "Glycolysis (lumped)", map[string]float64{"glc__D_c": -1, "pyr_c": 2, "nadh_c": 2, "atp_c": 2}, 0, 1000, "b1854 or b1676"},
		{"PDH", "Pyruvate dehydrogenase", map[string]float64{"pyr_c": -1, "accoa_c": 1, "nadh_c": 1}, 0, 1000, "b0114 and b0115"},
		{"LDH_D", "D-Lactate dehydrogenase", map[string]float64{"pyr_c": -1, "nadh_c": -1, "lac__D_c": 1}, 0, 1000, "b1380"},
		{"ACALD", "Acetaldehyde path (lumped)", map[string]float64{"accoa_c": -1, "nadh_c": -2, "etoh_c": 1}, 0, 1000, "b0351 or b1241"},
		{"PTAr", "Phosphotransacetylase", map[string]float64{"accoa_c": -1, "actp_c": 1}, 0, 1000, "b2297"},
		{"ACKr", "Acetate kinase", map[string]float64{"actp_c": -1, "ac_c": 1, "atp_c": 1}, 0, 1000, "b2296 or b1849"},
		{"NADHOX", "NADH oxidation (lumped)", map[string]float64{"nadh_c": -1, "o2_e": -0.5}, 0, 1000, ""},
		{"FASYN8", "C8 fatty-acyl synthesis (lumped)", map[string]float64{"accoa_c": -4, "nadh_c": -6, "atp_c": -3, "occoa_c": 1}, 0, 1000, "b1288 and b2323"},
		{"ATPM", "ATP maintenance", map[string]float64{"atp_c": -1}, 1, 1000, ""},
		{"BIOMASS_mini", "Biomass (lumped)", map[string]float64{"pyr_c": -1, "accoa_c": -1, "atp_c": -1}, 0, 1000, ""},
	}
	for _, r := range reactions {
		mustAdd(n.AddReactionWithRule(r.id, r.name, r.stoich, r.lb, r.ub, r.rule))
	}
	return n
}

// Catalog returns a fixture catalog: octanoic_acid resolves to the
// network's pool, hexanoic_acid deliberately points at a pool the fixture
// does not carry.
func Catalog() fba.Catalog {
	return fba.Catalog{Targets: []fba.Target{
		{ID: "octanoic_acid", Pool: "occoa_c", DisplayName: "Octanoyl-CoA", MolarMass: 144.21},
		{ID: "hexanoic_acid", Pool: "hxcoa_c", DisplayName: "Hexanoyl-CoA", MolarMass: 116.16},
	}}
}

// OptimizerConfig points the optimizer at the fixture's biomass and
// substrate reactions.
func OptimizerConfig() fba.OptimizerConfig {
	return fba.OptimizerConfig{
		BiomassReactionID:   "BIOMASS_mini",
		SubstrateExchangeID: "EX_glc__D_e",
	}
}

func mustAdd(err error) {
	if err != nil {
		panic(fmt.Sprintf("building fixture network: %v", err))
	}
}
