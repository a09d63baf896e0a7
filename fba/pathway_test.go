package fba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKeyPathways(t *testing.T) {
	active := map[string]float64{
		"PYK":     10,
		"CS":      2,
		"FASYN8":  5,
		"EX_o2_e": -20,
	}
	assert.Equal(t, []string{"Glycolysis", "TCA Cycle", "Fatty Acid Synthesis"},
		detectKeyPathways(active))
}

func TestDetectKeyPathways_Empty(t *testing.T) {
	assert.Empty(t, detectKeyPathways(map[string]float64{"EX_glc__D_e": -10}))
}

func TestAnalyzePathways(t *testing.T) {
	m := newFakeModel()
	m.addMet("occoa_c")
	m.addRxn(t, "PYK", map[string]float64{"pyr_c": 2}, 0, 1000)
	m.addRxn(t, "FASYN8", map[string]float64{"occoa_c": 1}, 0, 1000)
	a := NewAdapter(m)
	_, err := a.RegisterDemandReaction("octanoic_acid", "occoa_c", 0)
	require.NoError(t, err)

	sol := Solution{
		Status: StatusOptimal,
		Fluxes: map[string]float64{
			"PYK":        10,
			"FASYN8":     5,
			"DM_occoa_c": 5,
			"ATPM":       1e-9, // below the activity threshold
		},
	}
	usage := AnalyzePathways(a, "octanoic_acid", sol)

	assert.Equal(t, 5.0, usage.ProductionRate)
	assert.Len(t, usage.ActiveReactions, 3)
	assert.NotContains(t, usage.ActiveReactions, "ATPM")
	assert.Equal(t, map[string]float64{"FASYN8": 5, "DM_occoa_c": 5}, usage.TargetReactions)
	assert.Contains(t, usage.KeyPathways, "Glycolysis")
	assert.Contains(t, usage.KeyPathways, "Fatty Acid Synthesis")
}

func TestAnalyzePathways_NonOptimal(t *testing.T) {
	m := newFakeModel()
	a := NewAdapter(m)

	usage := AnalyzePathways(a, "octanoic_acid", Solution{Status: StatusInfeasible})
	assert.Empty(t, usage.ActiveReactions)
	assert.Empty(t, usage.TargetReactions)
	assert.Empty(t, usage.KeyPathways)
	assert.Zero(t, usage.ProductionRate)
}
