package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/SebastianMacaluso/EnergyFlow/core"
	"github.com/SebastianMacaluso/EnergyFlow/measure"
)

// TestNewEFMCore_RequiresMomentMeasure verifies the kind assertion fires
// at construction, before any computation.
func TestNewEFMCore_RequiresMomentMeasure(t *testing.T) {
	_, err := core.NewEFMCore(core.Params{"measure": "hadr"})
	require.ErrorIs(t, err, core.ErrNotMomentMeasure)

	_, err = core.NewEFMCore(core.Params{"measure": "ee"})
	assert.ErrorIs(t, err, core.ErrNotMomentMeasure)
}

// TestNewEFMCore_DefaultKind verifies the moment layer defaults to
// hadrefm.
func TestNewEFMCore_DefaultKind(t *testing.T) {
	c, err := core.NewEFMCore(core.Params{})
	require.NoError(t, err)

	kind, ok := c.MeasureKind()
	require.True(t, ok)
	assert.Equal(t, measure.HadrEFM, kind)
}

// TestNewEFMCore_ClearsBeta verifies beta reports absence regardless of
// the configured value.
func TestNewEFMCore_ClearsBeta(t *testing.T) {
	c, err := core.NewEFMCore(core.Params{"measure": "eeefm", "beta": 3.0})
	require.NoError(t, err)

	_, ok := c.Beta()
	assert.False(t, ok, "moment evaluables fold beta into their ranks")
}

// TestNewEFMCore_UnknownKey verifies configuration validation still runs.
func TestNewEFMCore_UnknownKey(t *testing.T) {
	_, err := core.NewEFMCore(core.Params{"foo": 1})
	require.ErrorIs(t, err, measure.ErrUnknownParam)
	assert.Contains(t, err.Error(), "foo")
}

// TestZsPhats_Duality verifies the event-or-explicit contract of the
// moment layer.
func TestZsPhats_Duality(t *testing.T) {
	c, err := core.NewEFMCore(core.Params{})
	require.NoError(t, err)

	_, _, err = c.ZsPhats(nil, nil, nil)
	assert.ErrorIs(t, err, core.ErrMissingInput)

	_, _, err = c.ZsPhats(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, core.ErrMissingInput, "phats still missing")

	// Explicit pair passes through untouched.
	zs := []float64{0.25, 0.75}
	phats := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0})
	gotZs, gotPhats, err := c.ZsPhats(nil, zs, phats)
	require.NoError(t, err)
	assert.Equal(t, zs, gotZs)
	assert.Same(t, phats, gotPhats)

	// Event path resolves through the measure.
	gotZs, gotPhats, err = c.ZsPhats(measure.Event{{1, 0, 0}, {1, 0, 1}}, nil, nil)
	require.NoError(t, err)
	require.Len(t, gotZs, 2)
	r, cdim := gotPhats.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, cdim)
}

// TestZsPhats_NoMeasure verifies the moment layer built with no_measure
// accepts explicit coordinates only.
func TestZsPhats_NoMeasure(t *testing.T) {
	c, err := core.NewEFMCore(core.Params{"no_measure": true})
	require.NoError(t, err)
	assert.False(t, c.HasMeasure())

	_, _, err = c.ZsPhats(measure.Event{{1, 0, 0}}, nil, nil)
	assert.ErrorIs(t, err, core.ErrNoMeasure)
}
