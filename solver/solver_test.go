// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fibermodes/fiber"
	"github.com/katalvlaran/fibermodes/solver"
)

// smf is the reference two-layer fiber used throughout: 4.5 µm core,
// n = 1.448918 / 1.444418.
func smf(t *testing.T) fiber.Stack {
	t.Helper()
	s, err := fiber.StepIndex([]float64{4.5e-6}, []float64{1.448918, 1.444418})
	require.NoError(t, err)
	return s
}

func TestFundamental(t *testing.T) {
	w := fiber.NewWavelength(1550e-9)
	s := smf(t)

	o := solver.DefaultOptions()
	o.MaxModes = 1

	he, err := solver.FindModes(fiber.HE, 1, w, s, o)
	require.NoError(t, err)
	require.Len(t, he, 1, "single-mode fiber at 1550 nm")
	assert.Equal(t, fiber.Mode{Family: fiber.HE, Nu: 1, M: 1}, he[0].Mode)
	assert.InDelta(t, 1.4464045, he[0].Neff, 1e-5)

	lp, err := solver.FindModes(fiber.LP, 0, w, s, o)
	require.NoError(t, err)
	require.Len(t, lp, 1)
	assert.InDelta(t, he[0].Neff, lp[0].Neff, 1e-5,
		"weak guidance: LP(0,1) tracks HE(1,1)")
}

func TestVectorModes(t *testing.T) {
	w := fiber.NewWavelength(800e-9)
	s := smf(t)

	modes, err := solver.VectorModes(w, s, solver.DefaultOptions())
	require.NoError(t, err)

	want := []struct {
		name string
		neff float64
	}{
		{"HE(1,1)", 1.4479082},
		{"TE(0,1)", 1.44643},
		{"HE(2,1)", 1.446427},
		{"TM(0,1)", 1.4464268},
		{"EH(1,1)", 1.444673},
		{"HE(3,1)", 1.444669},
		{"HE(1,2)", 1.4444531},
	}
	require.Len(t, modes, len(want))
	for i, tc := range want {
		assert.Equal(t, tc.name, modes[i].Mode.String(), "rank %d", i)
		assert.InDelta(t, tc.neff, modes[i].Neff, 1e-6, "rank %d", i)
	}
}

func TestLPModes(t *testing.T) {
	w := fiber.NewWavelength(800e-9)
	s := smf(t)

	modes, err := solver.LPModes(w, s, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, modes, 4, "LP01, LP11, LP21, LP02 at 800 nm")
}

// TestBures3_6 reproduces the strongly guiding example of Bures §3.6:
// Δ = 0.3, V = 5; the reduced arguments u = k₀ρ·sqrt(n1²−neff²) of every
// vector mode match the published table to three decimals.
func TestBures3_6(t *testing.T) {
	w := fiber.NewWavelength(1.55e-6)
	n2 := 1.444
	n1 := math.Sqrt(n2 * n2 / (1 - 2*0.3))
	rho := 5 / (math.Sqrt(n1*n1-n2*n2) * w.K0())

	s, err := fiber.StepIndex([]float64{rho}, []float64{n1, n2})
	require.NoError(t, err)

	o := solver.DefaultOptions()
	o.Delta = 1e-3
	modes, err := solver.VectorModes(w, s, o)
	require.NoError(t, err)

	want := map[string]float64{
		"HE(1,1)": 2.119,
		"TE(0,1)": 3.153,
		"TM(0,1)": 3.446,
		"HE(2,1)": 3.377,
		"EH(1,1)": 4.235,
		"HE(3,1)": 4.507,
		"HE(1,2)": 4.638,
	}
	require.Len(t, modes, len(want))
	for _, m := range modes {
		u := w.K0() * rho * math.Sqrt(n1*n1-m.Neff*m.Neff)
		wantU, ok := want[m.Mode.String()]
		require.True(t, ok, "unexpected mode %s", m.Mode)
		assert.InDelta(t, wantU, u, 5e-4, "%s", m.Mode)
	}
}

// TestBures4_2_8 checks the 15-mode LP spectrum of Bures §4.2.8.
func TestBures4_2_8(t *testing.T) {
	n1, n2 := 1.462420, 1.457420
	rho := 8.335e-6
	w := fiber.NewWavelength(0.6328e-6)

	s, err := fiber.StepIndex([]float64{rho}, []float64{n1, n2})
	require.NoError(t, err)

	modes, err := solver.LPModes(w, s, solver.DefaultOptions())
	require.NoError(t, err)

	want := map[string]float64{
		"LP(0,1)": 2.1845, "LP(0,2)": 4.9966, "LP(0,3)": 7.7642,
		"LP(1,1)": 3.4770, "LP(1,2)": 6.3310, "LP(1,3)": 9.0463,
		"LP(2,1)": 4.6544, "LP(2,2)": 7.5667,
		"LP(3,1)": 5.7740, "LP(3,2)": 8.7290,
		"LP(4,1)": 6.8560, "LP(4,2)": 9.8153,
		"LP(5,1)": 7.9096,
		"LP(6,1)": 8.9390,
		"LP(7,1)": 9.9451,
	}
	require.Len(t, modes, len(want))
	for _, m := range modes {
		u := w.K0() * rho * math.Sqrt(n1*n1-m.Neff*m.Neff)
		wantU, ok := want[m.Mode.String()]
		require.True(t, ok, "unexpected mode %s", m.Mode)
		assert.InDelta(t, wantU, u, 5e-4, "%s", m.Mode)
	}
}

// TestGuidedContainment: every returned effective index lies strictly
// between the stack's extreme layer indices.
func TestGuidedContainment(t *testing.T) {
	w := fiber.NewWavelength(800e-9)
	s := smf(t)

	modes, err := solver.VectorModes(w, s, solver.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, modes)
	for _, m := range modes {
		assert.Greater(t, m.Neff, s.MinIndex(w), "%s above cladding", m.Mode)
		assert.Less(t, m.Neff, s.MaxIndex(w), "%s below core", m.Mode)
	}
}

// TestIdempotence: the characteristic evaluation is a pure function;
// repeated calls are bit-identical.
func TestIdempotence(t *testing.T) {
	w := fiber.NewWavelength(1550e-9)
	s := smf(t)

	for _, m := range []fiber.Mode{
		{Family: fiber.LP, Nu: 0, M: 1},
		{Family: fiber.TE, Nu: 0, M: 1},
		{Family: fiber.TM, Nu: 0, M: 1},
		{Family: fiber.HE, Nu: 1, M: 1},
	} {
		a := solver.SolveCharacteristic(1.4464, w, m, s)
		b := solver.SolveCharacteristic(1.4464, w, m, s)
		assert.Equal(t, a, b, "%s", m)
	}
}

// TestMonotonicEnumeration: successive radial orders have strictly
// decreasing effective indices.
func TestMonotonicEnumeration(t *testing.T) {
	n1, n2 := 1.462420, 1.457420
	w := fiber.NewWavelength(0.6328e-6)
	s, err := fiber.StepIndex([]float64{8.335e-6}, []float64{n1, n2})
	require.NoError(t, err)

	modes, err := solver.FindModes(fiber.LP, 0, w, s, solver.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, modes, 3, "three LP(0,m) orders guided")
	for i := 1; i < len(modes); i++ {
		assert.Less(t, modes[i].Neff, modes[i-1].Neff,
			"radial order %d below order %d", i+1, i)
		assert.Equal(t, i+1, modes[i].Mode.M)
	}
}

func TestFindModes_Validation(t *testing.T) {
	w := fiber.NewWavelength(1550e-9)
	s := smf(t)

	_, err := solver.FindModes(fiber.TE, 1, w, s, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrInvalidMode, "TE requires ν = 0")

	_, err = solver.FindModes(fiber.HE, 0, w, s, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrInvalidMode, "HE requires ν ≥ 1")

	_, err = solver.FindModes(fiber.HE, 1, fiber.NewWavelength(-1), s, solver.DefaultOptions())
	assert.ErrorIs(t, err, fiber.ErrNonPositiveWavelength)
}

func TestReconstructFields(t *testing.T) {
	w := fiber.NewWavelength(1550e-9)
	s := smf(t)

	o := solver.DefaultOptions()
	o.MaxModes = 1
	he, err := solver.FindModes(fiber.HE, 1, w, s, o)
	require.NoError(t, err)
	require.Len(t, he, 1)
	sol := he[0]

	// Axis sample: closed-form limits, no NaN, nonzero azimuthal pair.
	axis, err := solver.ReconstructFields(sol, w, s, 0)
	require.NoError(t, err)
	assert.Zero(t, axis.Ez, "Ez vanishes on axis for ν=1")
	assert.Zero(t, axis.Hz, "Hz vanishes on axis for ν=1")
	assert.False(t, math.IsNaN(axis.EPhi) || math.IsNaN(axis.HPhi), "axis limits are finite")
	assert.NotZero(t, axis.EPhi)

	// Tangential continuity across the core/cladding interface.
	const rho = 4.5e-6
	in, err := solver.ReconstructFields(sol, w, s, rho)
	require.NoError(t, err)
	out, err := solver.ReconstructFields(sol, w, s, rho*(1+1e-12))
	require.NoError(t, err)

	tol := func(v float64) float64 { return math.Abs(v)*1e-6 + 1e-12 }
	assert.InDelta(t, in.Ez, out.Ez, tol(in.Ez), "Ez continuous at interface")
	assert.InDelta(t, in.Hz, out.Hz, tol(in.Hz), "Hz continuous at interface")
	assert.InDelta(t, in.EPhi, out.EPhi, tol(in.EPhi), "Eφ continuous at interface")
	assert.InDelta(t, in.HPhi, out.HPhi, tol(in.HPhi), "Hφ continuous at interface")

	// LP reconstruction: scalar ψ in the Ez slot, positive at the core
	// center and decayed but nonzero in the cladding.
	lp, err := solver.FindModes(fiber.LP, 0, w, s, o)
	require.NoError(t, err)
	require.Len(t, lp, 1)
	center, err := solver.ReconstructFields(lp[0], w, s, 0)
	require.NoError(t, err)
	tail, err := solver.ReconstructFields(lp[0], w, s, 2*rho)
	require.NoError(t, err)
	assert.Equal(t, 1.0, center.Ez, "ψ(0) = J0(0) with unit core excitation")
	assert.Greater(t, tail.Ez, 0.0)
	assert.Less(t, tail.Ez, center.Ez, "cladding tail decays")

	// Input validation.
	_, err = solver.ReconstructFields(sol, w, s, -1e-6)
	assert.ErrorIs(t, err, solver.ErrNegativeRadius)

	bad := sol
	bad.Neff = 1.5
	_, err = solver.ReconstructFields(bad, w, s, 0)
	assert.ErrorIs(t, err, solver.ErrInvalidNeff)
}
