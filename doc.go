// Package fibermodes computes guided optical modes of step-index fibers —
// the effective indices satisfying the electromagnetic boundary conditions
// of a layered cylindrical waveguide, and the transverse field coefficients
// of each mode.
//
// 🚀 What is fibermodes?
//
//	A numerical library that brings together:
//		• Data model: wavelengths, materials, coaxial layer stacks, mode descriptors
//		• Special functions: ordinary & modified Bessel families with derivatives
//		• Boundary matching: the 2×2 and 4×4 interface continuity systems
//		• Dispersion equations: scalar LP and full vector TE/TM/HE/EH characteristics
//		• Root search: bracket-and-refine with pole rejection for oscillatory
//		  characteristic functions
//		• Mode solver: ordered enumeration of all guided modes per family & order
//
// ✨ Why choose fibermodes?
//
//   - Pure functions at component boundaries – independent solves are safely
//     parallelizable across wavelengths and mode descriptors, no locking
//   - Strict sentinels – every failure mode has a named error or a NaN sentinel
//   - Reference-validated – mode tables from Bures, "Optique Guidée : Fibres
//     Optiques et Composants Passifs Tout-Fibre", ship as tests
//
// Everything is organized under five subpackages:
//
//	fiber/    — Wavelength, Material, Layer, Stack, Mode + physical constants
//	bessel/   — Bessel/modified-Bessel evaluation, oscillatory/evanescent basis
//	boundary/ — per-layer field model and interface coefficient solves
//	rootfind/ — scanning root search with discontinuity rejection
//	solver/   — characteristic functions, mode enumeration, field reconstruction
//
// Quick ASCII example (two-layer step-index fiber, cross-section):
//
//	    ┌─────────────┐
//	    │   cladding  │   n₂, unbounded
//	    │  ┌───────┐  │
//	    │  │ core  │  │   n₁ > n₂, radius ρ
//	    │  └───────┘  │
//	    └─────────────┘
//
//	go get github.com/katalvlaran/fibermodes/solver
package fibermodes
