// Package fiber defines the immutable data model shared by every solver
// component: wavelengths (with their derived vacuum wavenumber), material
// models, coaxial layers, validated layer stacks, and mode descriptors.
//
// The model is deliberately value-based. A Stack is frozen for the duration
// of one solve; every quantity derived from a trial effective index is
// recomputed from these values on each evaluation, so concurrent solves over
// the same Stack need no synchronization.
//
// Errors:
//
//	ErrEmptyStack          - stack has fewer than two layers.
//	ErrInnerRadius         - innermost layer does not start at radius 0.
//	ErrRadiiOrder          - radii not strictly increasing / not contiguous.
//	ErrNilMaterial         - a layer has no material model.
//	ErrUnboundedInterior   - a non-outermost layer is flagged unbounded.
//	ErrNonPositiveWavelength - wavelength is zero, negative, or not finite.
package fiber
