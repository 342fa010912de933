package efp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/core"
	"github.com/SebastianMacaluso/EnergyFlow/efp"
	"github.com/SebastianMacaluso/EnergyFlow/gen"
	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// dumbbell is the two-point correlator graph.
var dumbbell = efp.Graph{{0, 1}}

// TestNew_Validation verifies graph-shape errors.
func TestNew_Validation(t *testing.T) {
	_, err := efp.New(nil, core.Params{})
	assert.ErrorIs(t, err, efp.ErrEmptyGraph)

	_, err = efp.New(efp.Graph{{0, -1}}, core.Params{})
	assert.ErrorIs(t, err, efp.ErrBadEdge)

	_, err = efp.New(efp.Graph{{2, 2}}, core.Params{})
	assert.ErrorIs(t, err, efp.ErrSelfLoop)
}

// TestNew_RejectsMomentMeasure verifies the configuration error fires at
// construction when a moment-capable kind is configured.
func TestNew_RejectsMomentMeasure(t *testing.T) {
	_, err := efp.New(dumbbell, core.Params{"measure": "hadrefm"})
	assert.ErrorIs(t, err, efp.ErrMomentMeasure)
}

// TestNew_UnknownKey verifies holder validation reaches the constructor.
func TestNew_UnknownKey(t *testing.T) {
	_, err := efp.New(dumbbell, core.Params{"foo": 1})
	require.ErrorIs(t, err, measure.ErrUnknownParam)
	assert.Contains(t, err.Error(), "foo")
}

// TestEFP_Structure verifies vertex count and weight set derivation from
// a multigraph with repeated edges.
func TestEFP_Structure(t *testing.T) {
	obs, err := efp.New(efp.Graph{{0, 1}, {1, 0}, {1, 2}}, core.Params{})
	require.NoError(t, err)

	assert.Equal(t, 3, obs.NumVertices())
	assert.Equal(t, []int{1, 2}, obs.WeightSet(), "multiplicities 2 and 1")
	assert.Nil(t, obs.EFMSet())
}

// TestEFP_Dumbbell verifies the two-point correlator against the closed
// form Σ_{i≠j} z_i z_j θ_ij on a hand-computed event.
func TestEFP_Dumbbell(t *testing.T) {
	obs, err := efp.New(dumbbell, core.Params{})
	require.NoError(t, err)

	// Two particles: z = (0.25, 0.75), θ12 = sqrt(1.25).
	event := measure.Event{{1, 0, 0}, {3, 1, 0.5}}
	got, err := obs.Compute(event)
	require.NoError(t, err)

	want := 2 * 0.25 * 0.75 * math.Sqrt(1.25)
	assert.InDelta(t, want, got, 1e-12)
}

// TestEFP_BruteForce verifies the vertex-sum kernel against a direct
// triple loop for the triangle graph on a random-ish event.
func TestEFP_BruteForce(t *testing.T) {
	triangle := efp.Graph{{0, 1}, {1, 2}, {0, 2}}
	obs, err := efp.New(triangle, core.Params{})
	require.NoError(t, err)

	event := measure.Event{
		{1.2, -0.4, 0.3},
		{0.7, 0.9, 2.8},
		{2.5, 0.1, 4.4},
		{0.4, -1.1, 1.0},
	}
	zs, thetas, err := obs.Measure().Evaluate(event)
	require.NoError(t, err)

	want := 0.0
	for i := range zs {
		for j := range zs {
			for k := range zs {
				want += zs[i] * zs[j] * zs[k] *
					thetas.At(i, j) * thetas.At(j, k) * thetas.At(i, k)
			}
		}
	}

	got, err := obs.Compute(event)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
}

// TestEFP_MultiEdgePowers verifies a doubled edge squares the angle.
func TestEFP_MultiEdgePowers(t *testing.T) {
	obs, err := efp.New(efp.Graph{{0, 1}, {0, 1}}, core.Params{})
	require.NoError(t, err)
	require.Equal(t, []int{2}, obs.WeightSet())

	zs := []float64{0.5, 0.5}
	thetas := mat.NewSymDense(2, nil)
	thetas.SetSym(0, 1, 3)

	got, err := obs.ComputeFrom(zs, thetas)
	require.NoError(t, err)
	assert.InDelta(t, 2*0.25*9, got, 1e-12, "θ² enters each of the two orderings")
}

// TestEFP_ComputeFromMatchesEvent verifies the explicit-coordinate path
// reproduces the event path.
func TestEFP_ComputeFromMatchesEvent(t *testing.T) {
	obs, err := efp.New(dumbbell, core.Params{"beta": 0.5})
	require.NoError(t, err)

	event := measure.Event{{1, 0, 0}, {2, 1, 1}, {3, -1, 2}}
	fromEvent, err := obs.Compute(event)
	require.NoError(t, err)

	zs, thetas, err := obs.Measure().Evaluate(event)
	require.NoError(t, err)
	fromExplicit, err := obs.ComputeFrom(zs, thetas)
	require.NoError(t, err)

	assert.Equal(t, fromEvent, fromExplicit)
}

// TestEFP_MissingInput verifies the argument error surfaces through both
// entry points.
func TestEFP_MissingInput(t *testing.T) {
	obs, err := efp.New(dumbbell, core.Params{})
	require.NoError(t, err)

	_, err = obs.Compute(nil)
	assert.ErrorIs(t, err, core.ErrMissingInput)

	_, err = obs.ComputeFrom(nil, nil)
	assert.ErrorIs(t, err, core.ErrMissingInput)
}

// TestEFP_EmptyEvent verifies an empty event evaluates to zero.
func TestEFP_EmptyEvent(t *testing.T) {
	obs, err := efp.New(dumbbell, core.Params{})
	require.NoError(t, err)

	got, err := obs.Compute(measure.Event{})
	require.NoError(t, err)
	assert.Zero(t, got)
}

// TestEFP_BatchOrderAndParallelism verifies batch output matches
// per-event computes, in order, and that worker counts do not change the
// bits.
func TestEFP_BatchOrderAndParallelism(t *testing.T) {
	obs, err := efp.New(dumbbell, core.Params{})
	require.NoError(t, err)

	events := gen.RandomHadrEvents(rand.New(rand.NewSource(7)), 100, 6)

	seq, err := obs.BatchCompute(events, 1)
	require.NoError(t, err)
	require.Len(t, seq, 100)
	for i, ev := range events {
		single, err := obs.Compute(ev)
		require.NoError(t, err)
		assert.Equal(t, single, seq[i], "index %d", i)
	}

	for _, nJobs := range []int{2, 4, core.AutoJobs} {
		par, err := obs.BatchCompute(events, nJobs)
		require.NoError(t, err)
		assert.Equal(t, seq, par, "nJobs=%d must be bit-identical to sequential", nJobs)
	}
}

// TestEFP_BatchWorkerFailure verifies a malformed event inside a batch
// propagates a descriptive error with no partial results.
func TestEFP_BatchWorkerFailure(t *testing.T) {
	obs, err := efp.New(dumbbell, core.Params{})
	require.NoError(t, err)

	events := gen.RandomHadrEvents(rand.New(rand.NewSource(7)), 16, 3)
	events[11] = measure.Event{{1, 0}} // too narrow

	for _, nJobs := range []int{1, 4} {
		got, err := obs.BatchCompute(events, nJobs)
		require.ErrorIs(t, err, measure.ErrBadEvent, "nJobs=%d", nJobs)
		assert.Contains(t, err.Error(), "11")
		assert.Nil(t, got)
	}
}
