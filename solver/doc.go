// SPDX-License-Identifier: MIT

// Package solver enumerates the guided modes of a step-index fiber and
// reconstructs their fields. It is the external surface of the module:
// everything below it (bessel, boundary, rootfind) is plumbing it drives.
//
// What it offers:
//
//   - 📈 SolveCharacteristic: the dispersion mismatch of one mode family
//     at a trial effective index — zero exactly at a guided mode.
//   - 🔍 FindModes: all radial orders of one family and azimuthal order,
//     found by scanning the effective index downward from the highest
//     layer index, strictly decreasing.
//   - 🌐 VectorModes / LPModes: the whole guided spectrum at a
//     wavelength, sorted by decreasing effective index.
//   - 🧲 ReconstructFields: the (Ez, Hz, Eφ, Hφ) sample of a solved mode
//     at any radius, axis included.
//
// The hybrid HE and EH families share one characteristic equation; its
// roots alternate between the families as the index decreases, and the
// mixing ratio α of the two independent boundary solutions is captured
// at each accepted root for field reconstruction.
//
// Every function is pure: the layer stack and wavelength are read-only,
// all working state is transient, and independent solves may run
// concurrently without locking.
package solver
