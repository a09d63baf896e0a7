package fba

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// maintenanceCap is the residual ATP maintenance allowed in a cell-free
// configuration, mmol/gDW/h.
const maintenanceCap = 1.0

// DeriveCellFree reconfigures the model in place for a cell-free enzymatic
// system: biomass reactions are clamped shut and ATP maintenance is relaxed
// to at most maintenanceCap, since there is no cell to grow or maintain.
// Returns the identifiers of the reactions whose bounds were changed, in
// model order. All other bounds are left untouched.
func DeriveCellFree(a *Adapter) ([]string, error) {
	var clamped []string
	for _, id := range a.ReactionIDs() {
		upper := strings.ToUpper(id)
		switch {
		case strings.Contains(upper, "BIOMASS"):
			if err := a.SetBounds(id, Bounds{}); err != nil {
				return nil, err
			}
			clamped = append(clamped, id)
		case strings.Contains(upper, "ATPM"):
			b, err := a.Bounds(id)
			if err != nil {
				return nil, err
			}
			if err := a.SetBounds(id, Bounds{Lower: 0, Upper: math.Min(b.Upper, maintenanceCap)}); err != nil {
				return nil, err
			}
			clamped = append(clamped, id)
		}
	}
	logrus.Infof("cell-free derivation clamped %d reactions: %v", len(clamped), clamped)
	return clamped, nil
}
