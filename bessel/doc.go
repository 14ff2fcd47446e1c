// Package bessel evaluates the cylinder functions the mode solver is built
// from: ordinary Bessel functions J and Y of integer order (delegated to the
// standard library), modified Bessel functions I and K (implemented here;
// neither the standard library nor gonum's public API provides them), and
// the first derivatives of all four via the standard recurrence identities.
//
// The package also defines Basis, the explicit two-variant selection between
// the oscillatory pair (J, Y) and the evanescent pair (I, K) that a layer's
// radial field uses depending on whether the trial effective index lies
// below or above the layer's refractive index.
//
// All functions are pure: no caches, no global state, safe for concurrent use.
package bessel
