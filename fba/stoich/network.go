package stoich

import (
	"fmt"
	"math"
	"strings"

	"github.com/sutyum/ecoli-code/fba"
)

// DefaultBound caps flux magnitudes: infinite or wider bounds are clamped
// to ±DefaultBound at ingestion so every LP stays bounded.
const DefaultBound = 1000.0

// Metabolite is one internal or external species pool.
type Metabolite struct {
	ID          string
	Name        string
	Compartment string
}

// Reaction is one stoichiometric conversion with flux bounds and an
// optional gene-reaction rule.
type Reaction struct {
	ID     string
	Name   string
	Stoich map[string]float64 // metabolite ID -> coefficient (negative consumes)
	Lower  float64
	Upper  float64
	Rule   string // gene-reaction rule source text, "" when none

	rule ruleNode // parsed form of Rule, nil when none
}

// boundary reports whether the reaction crosses the system boundary
// (exactly one participating metabolite).
func (r *Reaction) boundary() bool { return len(r.Stoich) == 1 }

// Network is an in-memory stoichiometric model satisfying fba.Model. It is
// not safe for concurrent mutation; parallel workers must operate on
// Clone()s.
type Network struct {
	ID string

	mets     map[string]*Metabolite
	metOrder []string

	reactions map[string]*Reaction
	rxnOrder  []string

	genes map[string]bool

	objectiveID string
}

// NewNetwork creates an empty network.
func NewNetwork(id string) *Network {
	return &Network{
		ID:        id,
		mets:      make(map[string]*Metabolite),
		reactions: make(map[string]*Reaction),
		genes:     make(map[string]bool),
	}
}

// AddMetabolite registers a species pool. Duplicate identifiers error.
func (n *Network) AddMetabolite(id, name, compartment string) error {
	if id == "" {
		return fmt.Errorf("stoich: empty metabolite id")
	}
	if _, ok := n.mets[id]; ok {
		return fmt.Errorf("stoich: duplicate metabolite %q", id)
	}
	n.mets[id] = &Metabolite{ID: id, Name: name, Compartment: compartment}
	n.metOrder = append(n.metOrder, id)
	return nil
}

// AddReactionWithRule adds a reaction with a gene-reaction rule. Every
// metabolite in the stoichiometry must already exist. Bounds are clamped
// to ±DefaultBound.
func (n *Network) AddReactionWithRule(id, name string, stoich map[string]float64, lower, upper float64, rule string) error {
	if id == "" {
		return fmt.Errorf("stoich: empty reaction id")
	}
	if _, ok := n.reactions[id]; ok {
		return fmt.Errorf("stoich: duplicate reaction %q", id)
	}
	if len(stoich) == 0 {
		return fmt.Errorf("stoich: reaction %q has empty stoichiometry", id)
	}
	for metID := range stoich {
		if _, ok := n.mets[metID]; !ok {
			return fmt.Errorf("stoich: reaction %q references unknown metabolite %q", id, metID)
		}
	}
	lower, upper = clampBound(lower), clampBound(upper)
	if lower > upper {
		return fmt.Errorf("stoich: reaction %q has lower bound %g above upper bound %g", id, lower, upper)
	}
	r := &Reaction{
		ID:     id,
		Name:   name,
		Stoich: copyStoich(stoich),
		Lower:  lower,
		Upper:  upper,
		Rule:   rule,
	}
	if rule != "" {
		node, genes, err := parseRule(rule)
		if err != nil {
			return fmt.Errorf("stoich: reaction %q: %w", id, err)
		}
		r.rule = node
		for _, g := range genes {
			n.genes[g] = true
		}
	}
	n.reactions[id] = r
	n.rxnOrder = append(n.rxnOrder, id)
	return nil
}

// AddReaction adds a reaction without a gene-reaction rule (fba.Model).
func (n *Network) AddReaction(id, name string, stoich map[string]float64, lower, upper float64) error {
	return n.AddReactionWithRule(id, name, stoich, lower, upper, "")
}

// AddGene registers a gene identifier (used for genes declared by a model
// file even when no rule mentions them yet).
func (n *Network) AddGene(id string) {
	if id != "" {
		n.genes[id] = true
	}
}

// HasMetabolite implements fba.Model.
func (n *Network) HasMetabolite(id string) bool {
	_, ok := n.mets[id]
	return ok
}

// HasReaction implements fba.Model.
func (n *Network) HasReaction(id string) bool {
	_, ok := n.reactions[id]
	return ok
}

// HasGene reports whether the gene appears in the model.
func (n *Network) HasGene(id string) bool { return n.genes[id] }

// ReactionIDs implements fba.Model.
func (n *Network) ReactionIDs() []string {
	out := make([]string, len(n.rxnOrder))
	copy(out, n.rxnOrder)
	return out
}

// MetaboliteIDs returns metabolite identifiers in insertion order.
func (n *Network) MetaboliteIDs() []string {
	out := make([]string, len(n.metOrder))
	copy(out, n.metOrder)
	return out
}

// ExchangeReactionIDs implements fba.Model: boundary reactions carrying the
// conventional EX_ prefix, in insertion order. Demand (DM_) and sink (SK_)
// boundary reactions are not medium exchanges and are excluded.
func (n *Network) ExchangeReactionIDs() []string {
	var out []string
	for _, id := range n.rxnOrder {
		if strings.HasPrefix(id, "EX_") && n.reactions[id].boundary() {
			out = append(out, id)
		}
	}
	return out
}

// ReactionsWithMetabolite implements fba.Model.
func (n *Network) ReactionsWithMetabolite(metaboliteID string) []string {
	var out []string
	for _, id := range n.rxnOrder {
		if _, ok := n.reactions[id].Stoich[metaboliteID]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Bounds implements fba.Model.
func (n *Network) Bounds(reactionID string) (fba.Bounds, error) {
	r, ok := n.reactions[reactionID]
	if !ok {
		return fba.Bounds{}, fmt.Errorf("stoich: unknown reaction %q", reactionID)
	}
	return fba.Bounds{Lower: r.Lower, Upper: r.Upper}, nil
}

// SetBounds implements fba.Model. Bounds are clamped to ±DefaultBound.
func (n *Network) SetBounds(reactionID string, b fba.Bounds) error {
	r, ok := n.reactions[reactionID]
	if !ok {
		return fmt.Errorf("stoich: unknown reaction %q", reactionID)
	}
	lower, upper := clampBound(b.Lower), clampBound(b.Upper)
	if lower > upper {
		return fmt.Errorf("stoich: reaction %q: lower bound %g above upper bound %g", reactionID, lower, upper)
	}
	r.Lower, r.Upper = lower, upper
	return nil
}

// SetObjective implements fba.Model: the reaction becomes the sole
// objective with coefficient 1; any previous objective is replaced.
func (n *Network) SetObjective(reactionID string) error {
	if _, ok := n.reactions[reactionID]; !ok {
		return fmt.Errorf("stoich: unknown reaction %q", reactionID)
	}
	n.objectiveID = reactionID
	return nil
}

// Objective returns the current objective reaction ("" when unset).
func (n *Network) Objective() string { return n.objectiveID }

// ReactionsDisabledBy implements fba.Model: evaluates every gene-reaction
// rule with the gene deleted and returns the reactions left without
// support, in insertion order. Reactions without a rule are never disabled.
func (n *Network) ReactionsDisabledBy(geneID string) ([]string, error) {
	if !n.genes[geneID] {
		return nil, fmt.Errorf("stoich: unknown gene %q", geneID)
	}
	deleted := map[string]bool{geneID: true}
	var out []string
	for _, id := range n.rxnOrder {
		r := n.reactions[id]
		if r.rule != nil && !r.rule.eval(deleted) {
			out = append(out, id)
		}
	}
	return out, nil
}

// Clone returns an independent deep copy of the network.
func (n *Network) Clone() *Network {
	c := NewNetwork(n.ID)
	for _, id := range n.metOrder {
		m := n.mets[id]
		c.mets[id] = &Metabolite{ID: m.ID, Name: m.Name, Compartment: m.Compartment}
		c.metOrder = append(c.metOrder, id)
	}
	for _, id := range n.rxnOrder {
		r := n.reactions[id]
		c.reactions[id] = &Reaction{
			ID:     r.ID,
			Name:   r.Name,
			Stoich: copyStoich(r.Stoich),
			Lower:  r.Lower,
			Upper:  r.Upper,
			Rule:   r.Rule,
			rule:   r.rule, // parsed rules are immutable, safe to share
		}
		c.rxnOrder = append(c.rxnOrder, id)
	}
	for g := range n.genes {
		c.genes[g] = true
	}
	c.objectiveID = n.objectiveID
	return c
}

// CloneModel implements fba.ClonableModel.
func (n *Network) CloneModel() fba.Model { return n.Clone() }

func clampBound(v float64) float64 {
	if math.IsInf(v, -1) || v < -DefaultBound {
		return -DefaultBound
	}
	if math.IsInf(v, 1) || v > DefaultBound {
		return DefaultBound
	}
	return v
}

func copyStoich(s map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
