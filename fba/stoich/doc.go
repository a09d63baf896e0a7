// Package stoich is the reference metabolic-model backend for the fba
// engine: an in-memory stoichiometric network with COBRA JSON loading,
// gene-reaction rule evaluation, and steady-state LP solving on gonum's
// simplex implementation.
//
// The package satisfies fba.Model (and fba.ClonableModel via Clone), so the
// engine never touches the network representation directly. A Network is
// not safe for concurrent mutation; fan-out callers clone per worker.
package stoich
