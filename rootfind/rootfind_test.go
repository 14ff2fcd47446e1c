package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibermodes/rootfind"
)

func TestBrent(t *testing.T) {
	z, err := rootfind.Brent(func(x float64) float64 { return x*x - 2 }, 1, 2, 1e-14)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, z, 1e-12, "x²−2 on [1,2]")

	z, err = rootfind.Brent(math.Cos, 1, 2, 1e-14)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, z, 1e-12, "cos on [1,2]")

	_, err = rootfind.Brent(func(x float64) float64 { return x*x + 1 }, 0, 1, 1e-14)
	assert.ErrorIs(t, err, rootfind.ErrBracket, "no sign change, no root")
}

func TestFirstRoot_Polynomial(t *testing.T) {
	f := func(x float64) float64 { return (x - 1.37) * (x - 3.21) / (x - 2.05) }

	o := rootfind.DefaultOptions()
	o.Start = 0.5
	o.Bound = 4

	z, err := rootfind.FirstRoot(f, o)
	require.NoError(t, err)
	assert.InDelta(t, 1.37, z, 1e-9, "first zero above the start point")
}

// TestFirstRoot_SkipsPole scans across a pole where the function flips
// sign through ±Inf; the residual test must reject it and carry on to the
// genuine zero beyond.
func TestFirstRoot_SkipsPole(t *testing.T) {
	f := func(x float64) float64 { return (x - 1.37) * (x - 3.21) / (x - 2.05) }

	o := rootfind.DefaultOptions()
	o.Start = 1.5
	o.Bound = 4

	z, err := rootfind.FirstRoot(f, o)
	require.NoError(t, err)
	assert.InDelta(t, 3.21, z, 1e-9, "pole at 2.05 is not a root")
}

// TestFirstRoot_UndefinedRegion starts inside a NaN region; NaN probes
// never form a sign change, so the scan walks through to the zero.
func TestFirstRoot_UndefinedRegion(t *testing.T) {
	f := func(x float64) float64 {
		if x < 1 {
			return math.NaN()
		}
		return x - 2
	}

	o := rootfind.DefaultOptions()
	o.Start = 0
	o.Bound = 3

	z, err := rootfind.FirstRoot(f, o)
	require.NoError(t, err)
	assert.InDelta(t, 2, z, 1e-9)
}

// TestFirstRoot_StepReduction uses a root pair narrower than the initial
// step: the first bounded pass sees no sign change and must restart with
// a tenfold finer grid.
func TestFirstRoot_StepReduction(t *testing.T) {
	f := func(x float64) float64 { return (x - 1.11) * (x - 1.23) }

	o := rootfind.DefaultOptions()
	o.Start = 1.0
	o.Bound = 1.5

	z, err := rootfind.FirstRoot(f, o)
	require.NoError(t, err)
	assert.InDelta(t, 1.11, z, 1e-6, "fine pass resolves the narrow dip")
}

func TestFirstRoot_ExactZeroAtStart(t *testing.T) {
	o := rootfind.DefaultOptions()
	o.Start = 2
	o.Bound = 5

	z, err := rootfind.FirstRoot(func(x float64) float64 { return x - 2 }, o)
	require.NoError(t, err)
	assert.Equal(t, 2.0, z, "start point already a zero")
}

// TestFirstRoot_InitialPoints probes an explicit abscissa sequence
// instead of a uniform grid.
func TestFirstRoot_InitialPoints(t *testing.T) {
	o := rootfind.DefaultOptions()
	o.Start = 0
	o.InitialPoints = []float64{1.0, 1.5}

	z, err := rootfind.FirstRoot(func(x float64) float64 { return x*x - 2 }, o)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, z, 1e-12)
}

// TestFirstRoot_BoundCrossing: a probe past the bound fails the scan at
// once instead of silently extrapolating.
func TestFirstRoot_BoundCrossing(t *testing.T) {
	o := rootfind.DefaultOptions()
	o.Start = 0
	o.Bound = 1
	o.InitialPoints = []float64{0.5, 1.5}

	_, err := rootfind.FirstRoot(func(x float64) float64 { return x - 5 }, o)
	assert.ErrorIs(t, err, rootfind.ErrNoRoot)
}

func TestFirstRoot_OptionValidation(t *testing.T) {
	f := func(x float64) float64 { return x }

	o := rootfind.DefaultOptions()
	o.Delta = 0
	_, err := rootfind.FirstRoot(f, o)
	assert.ErrorIs(t, err, rootfind.ErrInvalidStep, "zero step")

	o = rootfind.DefaultOptions()
	o.Start = 2
	o.Bound = 1
	_, err = rootfind.FirstRoot(f, o)
	assert.ErrorIs(t, err, rootfind.ErrInvalidStep, "step points away from bound")

	o = rootfind.DefaultOptions()
	_, err = rootfind.FirstRoot(f, o)
	assert.ErrorIs(t, err, rootfind.ErrUnbounded, "unbounded scan needs a budget")
}

func TestRootInRange(t *testing.T) {
	o := rootfind.DefaultOptions()

	z, err := rootfind.RootInRange(math.Cos, 1, 2, o)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, z, 1e-12, "endpoints already bracket")

	// Same-sign endpoints: the bisection update must expose the interior
	// sign change before Brent can run.
	f := func(x float64) float64 { return (x - 1) * (x - 6) }
	z, err = rootfind.RootInRange(f, 0, 10, o)
	require.NoError(t, err)
	assert.InDelta(t, 6, z, 1e-9, "interior root behind same-sign endpoints")

	_, err = rootfind.RootInRange(func(x float64) float64 { return x*x + 1 }, -1, 1, o)
	assert.ErrorIs(t, err, rootfind.ErrNoRoot, "no zero anywhere in range")
}
