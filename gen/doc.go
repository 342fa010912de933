// Package gen produces synthetic particle events for tests, examples and
// benchmarks. Events are random but fully deterministic for a given
// *rand.Rand, so batch-evaluation checks can compare runs bit-for-bit.
package gen
