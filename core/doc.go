// Package core holds the shared machinery every energy-flow observable is
// built from: measure ownership, batch-parallel evaluation, and the
// event-or-explicit-data entry points for polynomial- and moment-type
// computations.
//
// 🚀 Capability layering:
//
//	MeasureHolder        — owns zero-or-one measure.Measure and exposes its
//	                       configuration read-only
//	BatchEvaluator[T]    — maps a single-event compute function across a
//	                       sequence of events, sequentially or on a bounded
//	                       worker pool, with output order always matching
//	                       input order
//	EFPCore              — polynomial-type layer: weight-set-driven
//	                       (zs, θ^w) tables and the bridge to moment sets
//	EFMCore              — moment-type layer: (zs, phats) resolution with
//	                       the moment-measure requirement and beta clearing
//
// Concrete observables (package efp, package efm) embed these layers and
// supply the arithmetic.
//
// ✨ Guarantees:
//   - BatchCompute output ordering matches input event ordering at every
//     worker count; chunked ordered dispatch, never unordered completion
//   - the worker pool is joined on every exit path; a worker failure
//     propagates to the caller after teardown, with no partial results
//   - events are read-only; the per-event compute function must be a pure
//     function of its event
//
// ⚙️ Configuration is a flat Params mapping validated against the measure
// package's recognized keys; unknown keys fail construction with an error
// naming them.
package core
