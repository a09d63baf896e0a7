package stoich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutyum/ecoli-code/fba"
)

const solveTol = 1e-6

func TestSolve_NoObjective(t *testing.T) {
	n := twoStepNetwork(t)
	_, err := n.Solve()
	assert.ErrorContains(t, err, "no objective")
}

func TestSolve_LinearChain(t *testing.T) {
	// max DM_b_c subject to A uptake <= 5: every unit of A becomes one B
	n := twoStepNetwork(t)
	require.NoError(t, n.SetObjective("DM_b_c"))

	sol, err := n.Solve()
	require.NoError(t, err)
	require.Equal(t, fba.StatusOptimal, sol.Status)
	assert.InDelta(t, 5.0, sol.Objective, solveTol)
	assert.InDelta(t, 5.0, sol.Fluxes["DM_b_c"], solveTol)
	assert.InDelta(t, 5.0, sol.Fluxes["CONV"], solveTol)
	assert.InDelta(t, -5.0, sol.Fluxes["EX_a_e"], solveTol)
}

func TestSolve_RespectsInternalBound(t *testing.T) {
	n := twoStepNetwork(t)
	require.NoError(t, n.SetBounds("CONV", fba.Bounds{Lower: 0, Upper: 2}))
	require.NoError(t, n.SetObjective("DM_b_c"))

	sol, err := n.Solve()
	require.NoError(t, err)
	require.Equal(t, fba.StatusOptimal, sol.Status)
	assert.InDelta(t, 2.0, sol.Objective, solveTol)
}

func TestSolve_StoichiometricYield(t *testing.T) {
	// 2 A -> 1 B halves the achievable drain rate
	n := NewNetwork("yield")
	require.NoError(t, n.AddMetabolite("a_c", "A", "c"))
	require.NoError(t, n.AddMetabolite("b_c", "B", "c"))
	require.NoError(t, n.AddReaction("EX_a_e", "", map[string]float64{"a_c": -1}, -10, 1000))
	require.NoError(t, n.AddReaction("CONV2", "", map[string]float64{"a_c": -2, "b_c": 1}, 0, 1000))
	require.NoError(t, n.AddReaction("DM_b_c", "", map[string]float64{"b_c": -1}, 0, 1000))
	require.NoError(t, n.SetObjective("DM_b_c"))

	sol, err := n.Solve()
	require.NoError(t, err)
	require.Equal(t, fba.StatusOptimal, sol.Status)
	assert.InDelta(t, 5.0, sol.Objective, solveTol)
}

func TestSolve_Infeasible(t *testing.T) {
	// forced drain with no possible supply
	n := twoStepNetwork(t)
	require.NoError(t, n.SetBounds("CONV", fba.Bounds{Lower: 0, Upper: 0}))
	require.NoError(t, n.SetBounds("DM_b_c", fba.Bounds{Lower: 1, Upper: 1000}))
	require.NoError(t, n.SetObjective("DM_b_c"))

	sol, err := n.Solve()
	require.NoError(t, err, "infeasibility is a status, not an error")
	assert.Equal(t, fba.StatusInfeasible, sol.Status)
	assert.Zero(t, sol.Objective)
}

func TestSolve_RedundantBalanceRows(t *testing.T) {
	// a_c and its mirror met appear with proportional rows; the solver
	// must drop the dependent balance instead of failing
	n := NewNetwork("redundant")
	require.NoError(t, n.AddMetabolite("a_c", "A", "c"))
	require.NoError(t, n.AddMetabolite("a2_c", "A doubled", "c"))
	require.NoError(t, n.AddReaction("EX_a_e", "", map[string]float64{"a_c": -1, "a2_c": -2}, -4, 1000))
	require.NoError(t, n.AddReaction("DM_a_c", "", map[string]float64{"a_c": -1, "a2_c": -2}, 0, 1000))
	require.NoError(t, n.SetObjective("DM_a_c"))

	sol, err := n.Solve()
	require.NoError(t, err)
	require.Equal(t, fba.StatusOptimal, sol.Status)
	assert.InDelta(t, 4.0, sol.Objective, solveTol)
}

func TestSolve_ReversibleReactionCarriesNegativeFlux(t *testing.T) {
	// drain on A forces the reversible CONV to run backwards (B -> A)
	n := NewNetwork("reverse")
	require.NoError(t, n.AddMetabolite("a_c", "A", "c"))
	require.NoError(t, n.AddMetabolite("b_c", "B", "c"))
	require.NoError(t, n.AddReaction("EX_b_e", "", map[string]float64{"b_c": -1}, -3, 1000))
	require.NoError(t, n.AddReaction("CONV", "", map[string]float64{"a_c": -1, "b_c": 1}, -1000, 1000))
	require.NoError(t, n.AddReaction("DM_a_c", "", map[string]float64{"a_c": -1}, 0, 1000))
	require.NoError(t, n.SetObjective("DM_a_c"))

	sol, err := n.Solve()
	require.NoError(t, err)
	require.Equal(t, fba.StatusOptimal, sol.Status)
	assert.InDelta(t, 3.0, sol.Objective, solveTol)
	assert.InDelta(t, -3.0, sol.Fluxes["CONV"], solveTol)
}

func TestSolve_DoesNotMutateBounds(t *testing.T) {
	n := twoStepNetwork(t)
	require.NoError(t, n.SetObjective("DM_b_c"))
	before, err := n.Bounds("EX_a_e")
	require.NoError(t, err)

	_, err = n.Solve()
	require.NoError(t, err)

	after, err := n.Bounds("EX_a_e")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReduceRows_InconsistentSystem(t *testing.T) {
	rows := [][]float64{{1, 1}, {2, 2}}
	b := []float64{1, 3} // second row demands twice the first plus one
	_, _, consistent := reduceRows(rows, b, 1e-9)
	assert.False(t, consistent)
}

func TestReduceRows_DropsDependentRow(t *testing.T) {
	rows := [][]float64{{1, 1}, {2, 2}}
	b := []float64{1, 2}
	kept, keptB, consistent := reduceRows(rows, b, 1e-9)
	require.True(t, consistent)
	assert.Len(t, kept, 1)
	assert.Len(t, keptB, 1)
}
