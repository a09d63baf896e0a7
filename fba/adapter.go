package fba

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultDemandBound is the upper flux bound applied to demand reactions
// registered without an explicit bound.
const DefaultDemandBound = 1000.0

// DemandReaction describes a synthetic drain reaction added to quantify a
// target metabolite's net production rate. Created once per target; never
// mutated after creation.
type DemandReaction struct {
	TargetID   string
	ReactionID string
	Pool       string
	UpperBound float64
}

// CandidateKind tags a knockout candidate as a gene or a reaction.
type CandidateKind string

const (
	CandidateReaction CandidateKind = "reaction"
	CandidateGene     CandidateKind = "gene"
)

// KnockoutCandidate identifies a gene or reaction to be disabled.
type KnockoutCandidate struct {
	Kind CandidateKind
	ID   string
}

// ReactionKnockout builds a reaction-level knockout candidate.
func ReactionKnockout(reactionID string) KnockoutCandidate {
	return KnockoutCandidate{Kind: CandidateReaction, ID: reactionID}
}

// GeneKnockout builds a gene-level knockout candidate.
func GeneKnockout(geneID string) KnockoutCandidate {
	return KnockoutCandidate{Kind: CandidateGene, ID: geneID}
}

func (c KnockoutCandidate) String() string {
	return fmt.Sprintf("%s:%s", c.Kind, c.ID)
}

// Adapter is the single choke point for all mutation of the shared model,
// so that no two optimization runs can leak state into one another. It owns
// the target -> demand reaction mapping and enforces scoped apply/restore
// discipline for bounds and knockouts.
type Adapter struct {
	model   Model
	demands map[string]DemandReaction
	order   []string // demand registration order, for deterministic iteration
}

// NewAdapter wraps a model. The adapter assumes sole mutation rights over
// the model for its lifetime; the model must not be mutated elsewhere.
func NewAdapter(m Model) *Adapter {
	return &Adapter{
		model:   m,
		demands: make(map[string]DemandReaction),
	}
}

// RegisterDemandReaction adds a drain reaction DM_<pool> consuming one unit
// of the pool metabolite, bounded [0, upperBound]. A non-positive
// upperBound selects DefaultDemandBound. At most one demand reaction may
// exist per target: re-registration fails with ErrDuplicateDemand.
func (a *Adapter) RegisterDemandReaction(targetID, poolMetaboliteID string, upperBound float64) (DemandReaction, error) {
	if _, ok := a.demands[targetID]; ok {
		return DemandReaction{}, fmt.Errorf("%w: target %q", ErrDuplicateDemand, targetID)
	}
	if !a.model.HasMetabolite(poolMetaboliteID) {
		return DemandReaction{}, fmt.Errorf("%w: %q (target %q)", ErrUnknownMetabolite, poolMetaboliteID, targetID)
	}
	if upperBound <= 0 {
		upperBound = DefaultDemandBound
	}
	reactionID := "DM_" + poolMetaboliteID
	if !a.model.HasReaction(reactionID) {
		err := a.model.AddReaction(reactionID, targetID+" demand",
			map[string]float64{poolMetaboliteID: -1}, 0, upperBound)
		if err != nil {
			return DemandReaction{}, fmt.Errorf("adding demand reaction %s: %w", reactionID, err)
		}
		logrus.Debugf("registered demand %s for target %s", reactionID, targetID)
	} else {
		// the model shipped its own drain; the descriptor must report the
		// bound actually in force
		b, err := a.model.Bounds(reactionID)
		if err != nil {
			return DemandReaction{}, err
		}
		upperBound = b.Upper
	}
	d := DemandReaction{
		TargetID:   targetID,
		ReactionID: reactionID,
		Pool:       poolMetaboliteID,
		UpperBound: upperBound,
	}
	a.demands[targetID] = d
	a.order = append(a.order, targetID)
	return d, nil
}

// Demand returns the registered demand reaction for a target, if any.
func (a *Adapter) Demand(targetID string) (DemandReaction, bool) {
	d, ok := a.demands[targetID]
	return d, ok
}

// Demands returns the current target -> demand mapping. The map is a copy;
// mutating it does not affect the adapter.
func (a *Adapter) Demands() map[string]DemandReaction {
	out := make(map[string]DemandReaction, len(a.demands))
	for k, v := range a.demands {
		out[k] = v
	}
	return out
}

// DemandOrder returns target identifiers in registration order.
func (a *Adapter) DemandOrder() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// SetObjective makes reactionID the sole objective. Idempotent; objective
// terms never accumulate across calls.
func (a *Adapter) SetObjective(reactionID string) error {
	if !a.model.HasReaction(reactionID) {
		return fmt.Errorf("%w: %q", ErrUnknownReaction, reactionID)
	}
	return a.model.SetObjective(reactionID)
}

// Bounds returns a reaction's current flux bounds.
func (a *Adapter) Bounds(reactionID string) (Bounds, error) {
	if !a.model.HasReaction(reactionID) {
		return Bounds{}, fmt.Errorf("%w: %q", ErrUnknownReaction, reactionID)
	}
	return a.model.Bounds(reactionID)
}

// SetBounds permanently replaces a reaction's flux bounds. Setup-phase
// mutation (medium application, cell-free derivation); per-run mutation
// must go through WithTemporaryBounds or WithKnockout instead.
func (a *Adapter) SetBounds(reactionID string, b Bounds) error {
	if !a.model.HasReaction(reactionID) {
		return fmt.Errorf("%w: %q", ErrUnknownReaction, reactionID)
	}
	return a.model.SetBounds(reactionID, b)
}

// WithTemporaryBounds applies bounds to a reaction, runs body, and restores
// the original bounds on every exit path, so transient mutations cannot
// contaminate later runs.
func (a *Adapter) WithTemporaryBounds(reactionID string, b Bounds, body func() error) error {
	if !a.model.HasReaction(reactionID) {
		return fmt.Errorf("%w: %q", ErrUnknownReaction, reactionID)
	}
	saved, err := a.model.Bounds(reactionID)
	if err != nil {
		return err
	}
	if err := a.model.SetBounds(reactionID, b); err != nil {
		return err
	}
	defer func() {
		if rerr := a.model.SetBounds(reactionID, saved); rerr != nil {
			logrus.Errorf("restoring bounds of %s: %v", reactionID, rerr)
		}
	}()
	return body()
}

// WithKnockout disables the candidate's reaction set (bounds forced to
// zero), runs body, and restores the original bounds unconditionally.
// Gene candidates resolve through the model's own gene-reaction rule
// evaluation: reactions with surviving OR-alternatives stay active.
func (a *Adapter) WithKnockout(candidate KnockoutCandidate, body func() error) error {
	reactionIDs, err := a.resolveCandidate(candidate)
	if err != nil {
		return err
	}
	saved := make([]Bounds, len(reactionIDs))
	for i, id := range reactionIDs {
		b, err := a.model.Bounds(id)
		if err != nil {
			return err
		}
		saved[i] = b
	}
	for i, id := range reactionIDs {
		if err := a.model.SetBounds(id, Bounds{}); err != nil {
			// roll back the reactions already disabled
			for j := 0; j < i; j++ {
				_ = a.model.SetBounds(reactionIDs[j], saved[j])
			}
			return err
		}
	}
	defer func() {
		for i, id := range reactionIDs {
			if rerr := a.model.SetBounds(id, saved[i]); rerr != nil {
				logrus.Errorf("restoring bounds of %s after knockout %s: %v", id, candidate, rerr)
			}
		}
	}()
	return body()
}

func (a *Adapter) resolveCandidate(c KnockoutCandidate) ([]string, error) {
	switch c.Kind {
	case CandidateReaction:
		if !a.model.HasReaction(c.ID) {
			return nil, fmt.Errorf("%w: reaction %q", ErrUnknownCandidate, c.ID)
		}
		return []string{c.ID}, nil
	case CandidateGene:
		ids, err := a.model.ReactionsDisabledBy(c.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: gene %q: %v", ErrUnknownCandidate, c.ID, err)
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownCandidate, c.Kind)
	}
}

// Solve runs a single LP solve against the model's current bounds and
// objective. Infeasibility and unboundedness are statuses, not errors.
func (a *Adapter) Solve() (Solution, error) {
	return a.model.Solve()
}

// ReactionIDs lists the model's reactions in insertion order.
func (a *Adapter) ReactionIDs() []string { return a.model.ReactionIDs() }

// ExchangeReactionIDs lists the model's exchange reactions in insertion order.
func (a *Adapter) ExchangeReactionIDs() []string { return a.model.ExchangeReactionIDs() }

// ReactionsWithMetabolite lists reactions touching the given metabolite.
func (a *Adapter) ReactionsWithMetabolite(metaboliteID string) []string {
	return a.model.ReactionsWithMetabolite(metaboliteID)
}

// HasMetabolite reports whether the metabolite exists in the model.
func (a *Adapter) HasMetabolite(id string) bool { return a.model.HasMetabolite(id) }

// clone produces an adapter over an independent copy of the model with the
// same demand registrations. Returns false when the backend cannot clone.
func (a *Adapter) clone() (*Adapter, bool) {
	cm, ok := a.model.(ClonableModel)
	if !ok {
		return nil, false
	}
	na := NewAdapter(cm.CloneModel())
	for k, v := range a.demands {
		na.demands[k] = v
	}
	na.order = append(na.order, a.order...)
	return na, true
}
