package fba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthGrid(t *testing.T) {
	assert.InDeltaSlice(t, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}, GrowthGrid(0.8, 9), 1e-12)
	assert.Equal(t, []float64{0, 0.8}, GrowthGrid(0.8, 2))
	assert.Equal(t, []float64{0}, GrowthGrid(0.8, 1))
	assert.Equal(t, []float64{0}, GrowthGrid(0.8, 0))
}

func TestGrowthTradeoff_ConstrainsBiomass(t *testing.T) {
	m, opt := optimizerFixture(t)
	m.solution = Solution{
		Status: StatusOptimal,
		Fluxes: map[string]float64{"DM_occoa_c": 5},
	}

	points, err := opt.GrowthTradeoff("octanoic_acid", []float64{0, 0.4})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 0.0, points[0].GrowthConstraint)
	assert.Equal(t, 0.4, points[1].GrowthConstraint)
	assert.Equal(t, 5.0, points[1].Rate)

	// sweep over, biomass bounds back where they started
	assert.Equal(t, Bounds{Lower: 0, Upper: 1000}, m.bounds(t, "BIOMASS_mini"))
}

func TestGrowthTradeoff_RequiresBiomassReaction(t *testing.T) {
	m := newFakeModel()
	m.addMet("occoa_c")
	a := NewAdapter(m)
	_, err := a.RegisterDemandReaction("octanoic_acid", "occoa_c", 0)
	require.NoError(t, err)
	opt := NewOptimizer(a, Catalog{}, OptimizerConfig{})

	_, err = opt.GrowthTradeoff("octanoic_acid", []float64{0})
	assert.ErrorContains(t, err, "biomass reaction")
}

func TestGrowthTradeoff_UnregisteredTargetAborts(t *testing.T) {
	_, opt := optimizerFixture(t)
	_, err := opt.GrowthTradeoff("decanoic_acid", []float64{0})
	assert.ErrorIs(t, err, ErrUnregisteredTarget)
}
