package fba

import "errors"

// Sentinel errors for caller-input failures. All are fail-fast and
// non-retriable; match with errors.Is. Solver outcomes (infeasible,
// unbounded) are Status values, never errors.
var (
	// ErrUnknownMetabolite is returned when a demand reaction references a
	// pool metabolite that is absent from the model.
	ErrUnknownMetabolite = errors.New("fba: unknown metabolite")

	// ErrUnknownReaction is returned when an operation references a reaction
	// identifier that is absent from the model.
	ErrUnknownReaction = errors.New("fba: unknown reaction")

	// ErrDuplicateDemand is returned when a demand reaction is registered
	// for a target that already has one.
	ErrDuplicateDemand = errors.New("fba: duplicate demand reaction")

	// ErrUnregisteredTarget is returned when optimization is requested for a
	// target with no registered demand reaction.
	ErrUnregisteredTarget = errors.New("fba: unregistered target")

	// ErrUnknownCandidate is returned when a knockout candidate's gene or
	// reaction identifier cannot be resolved against the model.
	ErrUnknownCandidate = errors.New("fba: unknown knockout candidate")
)
