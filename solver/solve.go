// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/fibermodes/fiber"
	"github.com/katalvlaran/fibermodes/rootfind"
)

// Offsets keeping the scan strictly inside the guided-index interval and
// strictly below an accepted root before the next-rank search resumes.
const (
	boundNudge = 1e-12
	rootNudge  = 1e-9
)

// FindModes enumerates the guided modes of one family and azimuthal order
// at wavelength w, ordered by strictly decreasing effective index. The
// scan walks the effective index downward from just below the highest
// layer index; enumeration stops naturally when no further root exists.
// An empty result is not an error.
func FindModes(family fiber.Family, nu int, w fiber.Wavelength, s fiber.Stack, o Options) ([]ModeSolution, error) {
	if err := w.Check(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch family {
	case fiber.LP:
		if nu < 0 {
			return nil, ErrInvalidMode
		}
	case fiber.TE, fiber.TM:
		if nu != 0 {
			return nil, ErrInvalidMode
		}
	case fiber.HE, fiber.EH:
		if nu < 1 {
			return nil, ErrInvalidMode
		}
	default:
		return nil, ErrInvalidMode
	}
	if o.Delta <= 0 {
		o.Delta = DefaultOptions().Delta
	}

	f := func(neff float64) float64 {
		return SolveCharacteristic(neff, w, fiber.Mode{Family: family, Nu: nu, M: 1}, s)
	}

	hybrid := family == fiber.HE || family == fiber.EH
	lo := s.MinIndex(w) + boundNudge
	start := s.MaxIndex(w) - boundNudge

	var out []ModeSolution
	for rank := 1; start > lo; rank++ {
		ro := rootfind.Options{
			Start: start,
			Bound: lo,
			Delta: -o.Delta,
			Tol:   o.Tol,
		}
		z, err := rootfind.FirstRoot(f, ro)
		if err != nil {
			break // domain exhausted: the natural stop condition
		}
		start = z - rootNudge

		m, keep := radialOrder(family, rank)
		if !keep {
			continue
		}
		sol := ModeSolution{
			Mode: fiber.Mode{Family: family, Nu: nu, M: m},
			Neff: z,
		}
		if hybrid {
			_, sol.Alpha = hybridChar(s, w, nu, z)
		}
		out = append(out, sol)
		if o.MaxModes > 0 && len(out) >= o.MaxModes {
			break
		}
	}
	return out, nil
}

// radialOrder maps a root's rank in the downward scan to the radial order
// of the requested family. HE and EH share one characteristic whose roots
// alternate between the families: odd ranks are HE(ν,m), even ranks
// EH(ν,m).
func radialOrder(family fiber.Family, rank int) (m int, keep bool) {
	switch family {
	case fiber.HE:
		return (rank + 1) / 2, rank%2 == 1
	case fiber.EH:
		return rank / 2, rank%2 == 0
	default:
		return rank, true
	}
}

// VectorModes enumerates every guided vector mode at wavelength w: the
// ν = 0 transverse classes plus all hybrid orders, stopping at the first
// azimuthal order with no fundamental HE root. Results are sorted by
// decreasing effective index.
func VectorModes(w fiber.Wavelength, s fiber.Stack, o Options) ([]ModeSolution, error) {
	out, err := FindModes(fiber.TE, 0, w, s, o)
	if err != nil {
		return nil, err
	}
	tm, err := FindModes(fiber.TM, 0, w, s, o)
	if err != nil {
		return nil, err
	}
	out = append(out, tm...)

	for nu := 1; ; nu++ {
		he, err := FindModes(fiber.HE, nu, w, s, o)
		if err != nil {
			return nil, err
		}
		if len(he) == 0 {
			Logger().Debug("azimuthal enumeration exhausted", zap.Int("nu", nu))
			break
		}
		out = append(out, he...)

		eh, err := FindModes(fiber.EH, nu, w, s, o)
		if err != nil {
			return nil, err
		}
		out = append(out, eh...)
	}

	sortByNeff(out)
	return out, nil
}

// LPModes enumerates every guided scalar mode at wavelength w, stopping
// at the first azimuthal order with no fundamental root. Results are
// sorted by decreasing effective index.
func LPModes(w fiber.Wavelength, s fiber.Stack, o Options) ([]ModeSolution, error) {
	var out []ModeSolution
	for nu := 0; ; nu++ {
		lp, err := FindModes(fiber.LP, nu, w, s, o)
		if err != nil {
			return nil, err
		}
		if len(lp) == 0 {
			Logger().Debug("azimuthal enumeration exhausted", zap.Int("nu", nu))
			break
		}
		out = append(out, lp...)
	}

	sortByNeff(out)
	return out, nil
}

func sortByNeff(sols []ModeSolution) {
	sort.SliceStable(sols, func(i, j int) bool {
		return sols[i].Neff > sols[j].Neff
	})
}

// guidedRange reports whether neff lies strictly inside the stack's
// guided interval.
func guidedRange(neff float64, w fiber.Wavelength, s fiber.Stack) bool {
	lo, hi := s.MinIndex(w), s.MaxIndex(w)
	return !math.IsNaN(neff) && neff > lo && neff < hi
}
