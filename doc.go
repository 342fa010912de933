// Package energyflow is a feature-computation toolkit for particle
// physics: Energy Flow Polynomials and Energy Flow Moments over events of
// particle four-vectors.
//
// 🚀 What is EnergyFlow?
//
//	A library that turns collections of particle four-vectors into
//	numeric observables:
//	  • Measures: pluggable event → (energy fraction, angle) strategies
//	  • EFPs: multigraph-indexed polynomial correlators
//	  • EFMs: moment tensors over unit momentum directions
//	  • Batch evaluation: ordered, bounded-parallel fan-out over events
//
// ✨ Why choose EnergyFlow?
//
//   - Deterministic – batch output order always matches input order,
//     at every worker count
//   - Explicit errors – sentinel errors matched with errors.Is, no panics
//     on user input
//   - Composable – observables are thin layers over a shared core;
//     bring your own arithmetic by embedding it
//
// Everything is organized under five subpackages:
//
//	measure/ — measure kinds, coordinate systems & conversions
//	core/    — measure holder, batch evaluator, EFP/EFM capability layers
//	efp/     — Energy Flow Polynomials (multigraph correlators)
//	efm/     — Energy Flow Moments (tensors & moment sets)
//	gen/     — synthetic event generation for tests and demos
//
// Quick example:
//
//	obs, _ := efp.New(efp.Graph{{0, 1}}, core.Params{"measure": "hadr"})
//	vals, _ := obs.BatchCompute(events, -1)
//
// See cmd/efphist for an end-to-end batch computation with plotting.
//
//	go get github.com/SebastianMacaluso/EnergyFlow
package energyflow
