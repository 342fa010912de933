// Package efp computes Energy Flow Polynomials: multigraph-indexed
// correlators of the form
//
//	EFP_G = Σ_{i1..iN} z_{i1} ··· z_{iN} · Π_{(a,b)∈G} θ_{ia ib}
//
// where G is a multigraph on N vertices, z are per-particle energy
// fractions and θ the pairwise angular weights the configured measure
// produces. An edge of multiplicity w contributes θ^w, so the observable's
// weight set is the set of distinct edge multiplicities; single-event
// evaluation raises the θ matrix to each required power once and reuses
// the table across the vertex sum.
//
// ⚙️ Usage:
//
//	// the triangle graph d=3 correlator
//	obs, err := efp.New([][2]int{{0, 1}, {1, 2}, {0, 2}}, core.Params{
//	  "measure": "hadr",
//	  "beta":    0.5,
//	})
//	val, err := obs.Compute(event)
//	vals, err := obs.BatchCompute(events, -1) // ordered, parallel
//
// Complexity: O(M^N · E) per event for M particles, N vertices, E distinct
// edges — the direct vertex sum, practical for the low-order graphs this
// package targets.
package efp
