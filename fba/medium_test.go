package fba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mediumFixture(t *testing.T) (*fakeModel, *Adapter) {
	t.Helper()
	m := newFakeModel()
	m.addRxn(t, "EX_glc__D_e", map[string]float64{"glc__D_e": -1}, -5, 1000)
	m.addRxn(t, "EX_o2_e", map[string]float64{"o2_e": -1}, -20, 1000)
	m.addRxn(t, "EX_ac_e", map[string]float64{"ac_e": -1}, 0, 1000)
	m.addRxn(t, "ATPM", map[string]float64{"atp_c": -1}, 1, 1000)
	m.exchanges = []string{"EX_glc__D_e", "EX_o2_e", "EX_ac_e"}
	return m, NewAdapter(m)
}

func TestMediumApply(t *testing.T) {
	m, a := mediumFixture(t)
	med := Medium{"EX_glc__D_e": 10}
	require.NoError(t, med.Apply(a))

	// listed exchange opened at the requested rate
	assert.Equal(t, Bounds{Lower: -10, Upper: 1000}, m.bounds(t, "EX_glc__D_e"))
	// unlisted exchanges have uptake closed, secretion untouched
	assert.Equal(t, Bounds{Lower: 0, Upper: 1000}, m.bounds(t, "EX_o2_e"))
	assert.Equal(t, Bounds{Lower: 0, Upper: 1000}, m.bounds(t, "EX_ac_e"))
	// non-exchange reactions are never touched
	assert.Equal(t, Bounds{Lower: 1, Upper: 1000}, m.bounds(t, "ATPM"))
}

func TestMediumApply_UnknownExchange(t *testing.T) {
	_, a := mediumFixture(t)
	err := Medium{"EX_xyl__D_e": 5}.Apply(a)
	assert.ErrorIs(t, err, ErrUnknownReaction)
}

func TestGlucoseMinimalMedium(t *testing.T) {
	m := GlucoseMinimalMedium()
	assert.Equal(t, 10.0, m["EX_glc__D_e"])
	assert.Equal(t, 20.0, m["EX_o2_e"])
	assert.Equal(t, 1000.0, m["EX_nh4_e"])
	assert.Equal(t, 1000.0, m["EX_pi_e"])
}

func TestSubstrateMedium(t *testing.T) {
	cases := []struct {
		substrate string
		exchange  string
		uptake    float64
	}{
		{"glucose", "EX_glc__D_e", 10},
		{"formate", "EX_for_e", 20},
		{"acetate", "EX_ac_e", 15},
	}
	for _, tc := range cases {
		t.Run(tc.substrate, func(t *testing.T) {
			m, err := SubstrateMedium(tc.substrate)
			require.NoError(t, err)
			assert.Equal(t, tc.uptake, m[tc.exchange])
			assert.Equal(t, 20.0, m["EX_o2_e"])
		})
	}
}

func TestSubstrateMedium_Unknown(t *testing.T) {
	_, err := SubstrateMedium("sucrose")
	assert.ErrorContains(t, err, "unknown substrate")
}
