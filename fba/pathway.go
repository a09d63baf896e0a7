package fba

import (
	"math"
	"sort"
	"strings"
)

// activeFluxThreshold separates carried flux from solver noise, mmol/gDW/h.
const activeFluxThreshold = 1e-3

// keyPathwayReactions names pathways by the reactions that signal their
// use. Matching is by substring over reaction identifiers.
var keyPathwayReactions = []struct {
	name     string
	keywords []string
}{
	{"Glycolysis", []string{"PGI", "PFK", "FBA", "TPI", "GAPD", "PGK", "PGM", "ENO", "PYK"}},
	{"TCA Cycle", []string{"CS", "ACONTa", "ACONTb", "ICDHyr", "AKGDH", "SUCOAS", "SUCDi", "FUM", "MDH"}},
	{"Fatty Acid Synthesis", []string{"FACOAL", "ACCOAL", "FASYN"}},
	{"Acetyl-CoA", []string{"PDH", "PTA", "ACK", "ACCOAL"}},
}

// PathwayUsage summarizes which parts of the network carry flux in one
// optimal solution.
type PathwayUsage struct {
	// ActiveReactions maps reaction identifiers with |flux| above the
	// activity threshold to their flux values.
	ActiveReactions map[string]float64
	// TargetReactions is the subset of active reactions whose stoichiometry
	// involves the target pool metabolite.
	TargetReactions map[string]float64
	// KeyPathways lists recognized pathway names with at least one active
	// signature reaction, in a fixed canonical order.
	KeyPathways []string
	// ProductionRate is the flux through the demand reaction.
	ProductionRate float64
}

// AnalyzePathways inspects an optimal solution for the given target and
// reports active reactions, the ones touching the target pool, and the key
// pathways in use. The solution must come from an optimize run for the
// same target; a non-optimal solution yields an empty usage.
func AnalyzePathways(a *Adapter, targetID string, sol Solution) PathwayUsage {
	usage := PathwayUsage{
		ActiveReactions: make(map[string]float64),
		TargetReactions: make(map[string]float64),
	}
	if sol.Status != StatusOptimal {
		return usage
	}
	for id, flux := range sol.Fluxes {
		if math.Abs(flux) > activeFluxThreshold {
			usage.ActiveReactions[id] = flux
		}
	}
	if demand, ok := a.Demand(targetID); ok {
		usage.ProductionRate = sol.Fluxes[demand.ReactionID]
		for _, id := range a.ReactionsWithMetabolite(demand.Pool) {
			if flux, active := usage.ActiveReactions[id]; active {
				usage.TargetReactions[id] = flux
			}
		}
	}
	usage.KeyPathways = detectKeyPathways(usage.ActiveReactions)
	return usage
}

func detectKeyPathways(active map[string]float64) []string {
	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var found []string
	for _, p := range keyPathwayReactions {
		for _, id := range ids {
			if containsAny(id, p.keywords) {
				found = append(found, p.name)
				break
			}
		}
	}
	return found
}

func containsAny(id string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}
