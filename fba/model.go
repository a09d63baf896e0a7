package fba

// Status is the outcome of a single LP solve. Non-optimal statuses are
// first-class results: callers must branch on Status, never on the numeric
// rate alone.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusInfeasible Status = "infeasible"
	StatusUnbounded  Status = "unbounded"
	// StatusFailed marks a batch item that could not be evaluated at all
	// (a caller-input error recorded inline so the batch can continue).
	StatusFailed Status = "failed"
)

// Bounds is a reaction's allowed flux interval in mmol/gDW/h.
type Bounds struct {
	Lower float64
	Upper float64
}

// Solution is the outcome of one LP solve: status, objective value, and the
// flux carried by every reaction when the status is optimal.
type Solution struct {
	Status    Status
	Objective float64
	Fluxes    map[string]float64
}

// Model is the capability set required from the metabolic-model
// collaborator. The stoich package provides the reference implementation;
// any stoichiometric backend satisfying this interface can be driven by the
// Adapter. Identifiers are opaque strings in the model's own namespace.
type Model interface {
	// HasMetabolite reports whether the metabolite exists in the model.
	HasMetabolite(id string) bool
	// HasReaction reports whether the reaction exists in the model.
	HasReaction(id string) bool
	// ReactionIDs returns all reaction identifiers in insertion order.
	ReactionIDs() []string
	// ExchangeReactionIDs returns boundary exchange reactions (medium
	// interface) in insertion order.
	ExchangeReactionIDs() []string
	// ReactionsWithMetabolite returns reactions whose stoichiometry
	// involves the given metabolite, in insertion order.
	ReactionsWithMetabolite(metaboliteID string) []string
	// AddReaction adds a reaction with the given stoichiometry (negative
	// coefficients consume, positive produce) and flux bounds.
	AddReaction(id, name string, stoich map[string]float64, lower, upper float64) error
	// Bounds returns the reaction's current flux bounds.
	Bounds(reactionID string) (Bounds, error)
	// SetBounds replaces the reaction's flux bounds.
	SetBounds(reactionID string, b Bounds) error
	// SetObjective makes the reaction the sole objective (coefficient 1,
	// all others 0). Replaces any previous objective; never accumulates.
	SetObjective(reactionID string) error
	// Solve runs one LP solve against the current bounds and objective.
	// Infeasibility and unboundedness are reported through Solution.Status;
	// the error return is reserved for solver plumbing failures.
	Solve() (Solution, error)
	// ReactionsDisabledBy evaluates gene-reaction rules and returns the
	// reactions that lose all support when the given gene is deleted.
	ReactionsDisabledBy(geneID string) ([]string, error)
}

// ClonableModel is satisfied by model backends that can produce an
// independent deep copy, enabling per-worker models for parallel screening.
type ClonableModel interface {
	Model
	CloneModel() Model
}
