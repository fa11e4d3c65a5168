package flock

import (
	"math"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

// steerTowards turns a desired direction into a bounded steering force
// in the Reynolds fashion: stretch the direction to maxSpeed, subtract
// the current velocity, then hold each component to +-maxForce.
func steerTowards(desired, vel geometry.Vector2D, maxSpeed, maxForce float64) geometry.Vector2D {
	return desired.SetLength(maxSpeed).Sub(vel).Clamp(maxForce)
}

// forcesOn computes the combined steering force on fish i from the
// candidate indices, reading only pre-tick state. Candidates may
// include i itself and fish outside every radius, both are skipped.
func (fl *Flock) forcesOn(i int, p Params, candidates []int) geometry.Vector2D {
	self := &fl.Fish[i]

	// Pre-calculate squared ranges to avoid Sqrt() calls in the loop.
	cohesionRange := p.CohesionRange()
	ranges := struct {
		cohesionSq  float64
		avoidanceSq float64
		alignmentSq float64
	}{
		cohesionSq:  cohesionRange * cohesionRange,
		avoidanceSq: p.AvoidanceRadius * p.AvoidanceRadius,
		alignmentSq: p.AlignmentRadius * p.AlignmentRadius,
	}

	// Force accumulators, one set per rule.
	var (
		posSum    geometry.Vector2D
		posCount  int
		awaySum   geometry.Vector2D
		awayCount int
		velSum    geometry.Vector2D
		velCount  int
	)

	for _, j := range candidates {
		if j == i {
			continue
		}
		other := &fl.Fish[j]

		distSq := self.Pos.DistanceSquaredTo(other.Pos)
		if distSq <= 0 {
			// Coincident fish give no direction to steer by.
			continue
		}

		// 1. Cohesion: gather positions of the visible school.
		if distSq < ranges.cohesionSq {
			posSum = posSum.Add(other.Pos)
			posCount++
		}

		// 2. Avoidance: weight by inverse distance so the closest
		// intruders dominate.
		if distSq < ranges.avoidanceSq {
			d := math.Sqrt(distSq)
			awaySum = awaySum.Add(self.Pos.Sub(other.Pos).Normalize().Mul(1 / d))
			awayCount++
		}

		// 3. Alignment: gather neighbor velocities.
		if distSq < ranges.alignmentSq {
			velSum = velSum.Add(other.Vel)
			velCount++
		}
	}

	var force geometry.Vector2D

	// Apply Cohesion: steer towards the local center of mass.
	if posCount > 0 {
		center := posSum.Mul(1 / float64(posCount))
		cohere := steerTowards(center.Sub(self.Pos), self.Vel, p.MaxSpeed, p.MaxForce)
		force = force.Add(cohere.Mul(p.CohesionStrength))
	}

	// Apply Avoidance. A symmetric ring of intruders can cancel to a
	// zero average, that case contributes nothing rather than the
	// -velocity steer the clamp path would produce.
	if awayCount > 0 {
		away := awaySum.Mul(1 / float64(awayCount))
		if away.Len() > 0 {
			avoid := steerTowards(away, self.Vel, p.MaxSpeed, p.MaxForce)
			force = force.Add(avoid.Mul(p.AvoidanceStrength))
		}
	}

	// Apply Alignment: steer towards the average neighbor velocity.
	if velCount > 0 {
		align := steerTowards(velSum.Mul(1/float64(velCount)), self.Vel, p.MaxSpeed, p.MaxForce)
		force = force.Add(align.Mul(p.AlignmentStrength))
	}

	if p.BoundaryAvoidance {
		force = force.Add(fl.boundaryForce(self.Pos, p).Mul(p.BoundaryStrength))
	}

	return force
}

// boundaryForce pushes a fish back towards open water once it is
// within BoundaryMargin of an edge. One inward unit vector per nearby
// edge, summed and held to +-MaxForce.
func (fl *Flock) boundaryForce(pos geometry.Vector2D, p Params) geometry.Vector2D {
	var push geometry.Vector2D
	if pos.X > fl.Width-p.BoundaryMargin {
		push.X -= 1
	}
	if pos.X < -fl.Width+p.BoundaryMargin {
		push.X += 1
	}
	if pos.Y > fl.Height-p.BoundaryMargin {
		push.Y -= 1
	}
	if pos.Y < -fl.Height+p.BoundaryMargin {
		push.Y += 1
	}
	return push.Clamp(p.MaxForce)
}
