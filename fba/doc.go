// Package fba implements flux-balance production optimization and knockout
// screening over a genome-scale metabolic model.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - model.go: the capability set required from the metabolic-model collaborator
//   - adapter.go: the single mutation choke point with scoped apply/restore
//   - optimizer.go: objective setup, solve, and result packaging per target
//
// # Architecture
//
// The fba package never owns the stoichiometric network; it drives it
// through the Model interface. Implementations live in sub-packages:
//   - fba/stoich/: in-memory network with gonum LP solving and COBRA JSON loading
//   - fba/report/: ordered result records handed to the export collaborator
//
// Control flow for a full run: DemandRegistry.EnsureAll registers drain
// reactions for the target catalog, Optimizer.OptimizeAll computes per-target
// production rates, Screener.Screen evaluates knockout candidates against an
// unperturbed baseline, and Aggregate/AggregateScreen fold everything into a
// report.ResultSet.
//
// # Isolation
//
// The shared model is a single mutable resource. Adapter.WithTemporaryBounds
// and Adapter.WithKnockout restore original bounds on every exit path, so no
// two logical runs observe each other's transient mutations and knockouts
// never compound. Screener.ScreenParallel trades the single shared model for
// per-worker deep copies while keeping the sequential output ordering.
package fba
