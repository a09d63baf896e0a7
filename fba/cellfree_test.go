package fba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCellFree(t *testing.T) {
	m := newFakeModel()
	m.addRxn(t, "BIOMASS_Ec_iML1515_core_75p37M", nil, 0, 1000)
	m.addRxn(t, "ATPM", nil, 6.86, 1000)
	m.addRxn(t, "PYK", nil, 0, 1000)
	a := NewAdapter(m)

	clamped, err := DeriveCellFree(a)
	require.NoError(t, err)
	assert.Equal(t, []string{"BIOMASS_Ec_iML1515_core_75p37M", "ATPM"}, clamped)

	assert.Equal(t, Bounds{}, m.bounds(t, "BIOMASS_Ec_iML1515_core_75p37M"))
	assert.Equal(t, Bounds{Lower: 0, Upper: 1}, m.bounds(t, "ATPM"))
	assert.Equal(t, Bounds{Lower: 0, Upper: 1000}, m.bounds(t, "PYK"))
}

func TestDeriveCellFree_KeepsTighterMaintenance(t *testing.T) {
	m := newFakeModel()
	m.addRxn(t, "ATPM", nil, 0, 0.5)
	a := NewAdapter(m)

	_, err := DeriveCellFree(a)
	require.NoError(t, err)
	assert.Equal(t, Bounds{Lower: 0, Upper: 0.5}, m.bounds(t, "ATPM"))
}

func TestDeriveCellFree_CaseInsensitiveMatch(t *testing.T) {
	m := newFakeModel()
	m.addRxn(t, "BIOMASS_mini", nil, 0, 1000)
	m.addRxn(t, "biomass_wt", nil, 0, 1000)
	a := NewAdapter(m)

	clamped, err := DeriveCellFree(a)
	require.NoError(t, err)
	assert.Equal(t, []string{"BIOMASS_mini", "biomass_wt"}, clamped)
	assert.Equal(t, Bounds{}, m.bounds(t, "biomass_wt"))
}
