package fba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMassRate(t *testing.T) {
	// 5 mmol/gDW/h of octanoyl-CoA at 144.21 g/mol
	assert.InDelta(t, 0.72105, MassRate(5, 144.21), 1e-9)
	assert.Zero(t, MassRate(0, 144.21))
	assert.Zero(t, MassRate(5, 0))
}

func TestProductionResultOptimal(t *testing.T) {
	assert.True(t, ProductionResult{Status: StatusOptimal}.Optimal())
	assert.False(t, ProductionResult{Status: StatusInfeasible}.Optimal())
	assert.False(t, ProductionResult{Status: StatusFailed}.Optimal())
}
