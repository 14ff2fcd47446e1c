// SPDX-License-Identifier: MIT

// Package boundary implements the per-layer radial field model and the
// interface boundary matcher of the mode solver.
//
// The field model evaluates, for one layer and one trial effective index,
// the dimensionless radial argument u = k₀·r·sqrt(|n² − neff²|) and the
// Bessel-basis combinations ψ, ψ̇ appropriate to the layer's regime
// (oscillatory J/Y below the layer index, evanescent I/K at or above it).
//
// The matcher enforces tangential-field continuity at each interface:
//   - ν = 0, innermost layer: the coefficient vector is a direct unit
//     excitation (the singular basis member is excluded by construction).
//   - ν = 0, interior layer: a 2×2 linear system per polarization class.
//   - ν ≠ 0, innermost layer: two independent unit excitations (Ez and Hz).
//   - ν ≠ 0, interior layer: a 4×4 linear system whose entries are basis
//     ratios against the layer's outer-radius values (conditioning) and the
//     physical constants η₀, Y₀·n² and the cross-coupling term neff·ν/u.
//
// Solved coefficients reproduce the prescribed interface field vector to
// solver tolerance; vanishing-argument ratios fall back to their exact
// closed-form limits instead of dividing by a vanishing basis value.
//
// Everything here is a pure function of its inputs: coefficient vectors are
// transient, owned by one evaluation pass, never cached across layers.
package boundary
