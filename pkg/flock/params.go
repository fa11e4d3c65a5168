package flock

// Params bundles every tunable the force rules read. Radii are in
// world units, speeds and forces in units per tick. Passing this into
// Tick allows the rules to change dynamically at runtime.
type Params struct {
	CohesionRadius    float64 // How far can they see the school?
	CohesionStrength  float64
	AvoidanceRadius   float64 // Personal space radius
	AvoidanceStrength float64
	AlignmentRadius   float64
	AlignmentStrength float64

	MaxSpeed float64 // Per-axis velocity cap
	MaxForce float64 // Per-axis steering cap

	BoundaryMargin   float64
	BoundaryStrength float64
	FishSize         float64

	// BoundaryAvoidance adds an inward push near the domain edge.
	// Off by default, fish then rely on the reflection wrap alone.
	BoundaryAvoidance bool
}

// CohesionRange is the effective cohesion radius. Body size widens it
// so bigger fish notice the school from further away.
func (p Params) CohesionRange() float64 {
	return p.CohesionRadius + 2*p.FishSize
}

// DefaultParams is tuned for a few hundred fish in an 800x600 window.
func DefaultParams() Params {
	return Params{
		CohesionRadius:    80,
		CohesionStrength:  1.0,
		AvoidanceRadius:   25,
		AvoidanceStrength: 1.5,
		AlignmentRadius:   60,
		AlignmentStrength: 1.0,
		MaxSpeed:          4,
		MaxForce:          0.1,
		BoundaryMargin:    60,
		BoundaryStrength:  2.0,
		FishSize:          4,
		BoundaryAvoidance: false,
	}
}
