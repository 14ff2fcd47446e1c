// Package rootfind provides the scalar root-search primitives behind the
// mode solver: a scanning first-root locator, a range-restricted variant,
// and Brent refinement.
//
// The functions handed to this package are dispersion evaluations: they
// are expensive, riddled with poles that flip sign without crossing zero,
// and undefined (NaN) over whole sub-ranges. The search strategy is built
// around those traits:
//
//   - 🔎 Scan, don't assume: FirstRoot walks a grid from a start point,
//     looking for sign changes between consecutive finite probes.
//   - 🎯 Refine with Brent: every bracket is polished to tolerance by
//     inverse-quadratic interpolation with a bisection guard.
//   - 🚫 Reject poles: a refined candidate counts only when |f| there is
//     smaller than at both bracket ends; a pole fails that test.
//   - 🔁 Retry finer: a bounded scan that comes up empty restarts with a
//     tenfold smaller step before giving up.
//
// All routines are pure and goroutine-safe; logging goes through a
// package-level zap logger that defaults to a no-op.
package rootfind
