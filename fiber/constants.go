package fiber

// Free-space impedance and admittance, η₀ = sqrt(μ₀/ε₀) and Y₀ = 1/η₀.
// These scale the magnetic terms of the boundary-condition systems.
const (
	// Eta0 is the impedance of free space, in ohms.
	Eta0 = 376.73031346177066

	// Y0 is the admittance of free space, in siemens.
	Y0 = 1.0 / Eta0
)
