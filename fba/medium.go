package fba

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Medium maps exchange reaction identifiers to maximum uptake rates in
// mmol/gDW/h. Applying a medium closes uptake on every exchange reaction
// first, then opens only the listed ones, so leftover uptake routes from a
// previous configuration cannot survive.
type Medium map[string]float64

// mineralSalts are the exchange reactions opened without practical limit in
// every minimal medium.
var mineralSalts = []string{
	"EX_pi_e", "EX_nh4_e", "EX_so4_e", "EX_mg2_e", "EX_k_e", "EX_fe2_e",
	"EX_ca2_e", "EX_mn2_e", "EX_zn2_e", "EX_cu2_e", "EX_cobalt2_e", "EX_mobd_e",
}

func minimalMedium(substrateExchange string, uptake float64) Medium {
	m := Medium{
		substrateExchange: uptake,
		"EX_o2_e":         20.0,
	}
	for _, ex := range mineralSalts {
		m[ex] = 1000.0
	}
	return m
}

// GlucoseMinimalMedium is the default aerobic glucose minimal medium:
// 10 mmol/gDW/h glucose, 20 mmol/gDW/h oxygen, unconstrained mineral salts.
func GlucoseMinimalMedium() Medium {
	return minimalMedium("EX_glc__D_e", 10.0)
}

// SubstrateMedium returns a minimal medium for a named carbon source.
// Recognized substrates: glucose (10), formate (20), acetate (15).
func SubstrateMedium(substrate string) (Medium, error) {
	switch substrate {
	case "glucose":
		return GlucoseMinimalMedium(), nil
	case "formate":
		return minimalMedium("EX_for_e", 20.0), nil
	case "acetate":
		return minimalMedium("EX_ac_e", 15.0), nil
	default:
		return nil, fmt.Errorf("unknown substrate %q (want glucose, formate or acetate)", substrate)
	}
}

// Apply configures the model's exchange bounds for this medium through the
// adapter. Uptake (negative lower bound) is closed on all exchange
// reactions, then opened at -rate for each listed exchange. Fails with
// ErrUnknownReaction when a listed exchange is absent from the model.
func (m Medium) Apply(a *Adapter) error {
	for _, id := range a.ExchangeReactionIDs() {
		b, err := a.Bounds(id)
		if err != nil {
			return err
		}
		if b.Lower < 0 {
			if err := a.SetBounds(id, Bounds{Lower: 0, Upper: b.Upper}); err != nil {
				return err
			}
		}
	}
	// deterministic application order for reproducible logs
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		b, err := a.Bounds(id)
		if err != nil {
			return fmt.Errorf("medium exchange %s: %w", id, err)
		}
		if err := a.SetBounds(id, Bounds{Lower: -m[id], Upper: b.Upper}); err != nil {
			return err
		}
	}
	logrus.Debugf("applied medium with %d open exchanges", len(m))
	return nil
}
