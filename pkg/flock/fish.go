package flock

import "github.com/its-ben-jammin/go-flocking/pkg/geometry"

// Fish is one member of the school.
// Pos and Vel are world-space values the renderer reads between ticks.
// Acc is scratch for the force pass and is zero on entry and exit of
// every tick. Heading trails Vel so a fish that stalls keeps pointing
// the way it last swam.
type Fish struct {
	Pos     geometry.Vector2D
	Vel     geometry.Vector2D
	Acc     geometry.Vector2D
	Heading float64
}
