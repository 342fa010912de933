// Package efm computes Energy Flow Moments: per-event tensors
//
//	M^{i1..iv} = Σ_p z_p · p̂_p^{i1} ··· p̂_p^{iv}
//
// of rank v over the unit momentum directions a moment-capable measure
// produces. EFM is a single-rank observable; Set evaluates a whole
// collection of ranks on one event, reusing each particle's lower-rank
// outer products while building the higher ones.
//
// Both types embed the core moment layer: they require a moment-capable
// measure (hadrefm, eeefm), clear its beta exponent at construction, and
// accept either a raw event or explicit (zs, phats). Batch evaluation over
// many events goes through the embedded batch evaluator:
//
//	m, err := efm.New(2, core.Params{"measure": "hadrefm"})
//	tensors, err := m.BatchCompute(events, -1) // one flattened 3×3 per event
//
// Tensors are returned flattened in row-major order; a rank-v tensor over
// d-dimensional directions has length d^v.
package efm
