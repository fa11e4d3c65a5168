package flock

import (
	"math"
	"testing"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

func TestSteerTowards(t *testing.T) {
	maxSpeed, maxForce := 4.0, 0.1

	// A desired direction well off the current course saturates both
	// axes at the force cap.
	got := steerTowards(geometry.NewVector(10, 10), geometry.NewVector(-1, 0), maxSpeed, maxForce)
	want := geometry.NewVector(maxForce, maxForce)
	if !vecCloseTo(got, want) {
		t.Errorf("steerTowards = %v; want %v", got, want)
	}

	// A zero desired direction decays the current velocity.
	got = steerTowards(geometry.Vector2D{}, geometry.NewVector(0.05, -0.02), maxSpeed, maxForce)
	want = geometry.NewVector(-0.05, 0.02)
	if !vecCloseTo(got, want) {
		t.Errorf("steerTowards with zero direction = %v; want %v", got, want)
	}
}

func TestForcesOn_NoNeighbors(t *testing.T) {
	p := DefaultParams()
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(0, 0), Vel: geometry.NewVector(2, 1)},
		Fish{Pos: geometry.NewVector(350, -250)},
	)

	force := fl.forcesOn(0, p, []int{0, 1})
	if !vecCloseTo(force, geometry.Vector2D{}) {
		t.Errorf("Expected zero force with nobody in range, got %v", force)
	}
}

func TestForcesOn_CohesionCentroid(t *testing.T) {
	p := DefaultParams()
	p.AvoidanceStrength = 0
	p.AlignmentStrength = 0

	// All three fish see each other. The local center of mass for the
	// fish at the origin is (5, 5).
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(0, 0)},
		Fish{Pos: geometry.NewVector(10, 0)},
		Fish{Pos: geometry.NewVector(0, 10)},
	)

	force := fl.forcesOn(0, p, []int{0, 1, 2})

	// From a standing start the steer saturates at MaxForce per axis.
	want := geometry.NewVector(p.MaxForce, p.MaxForce)
	if !vecCloseTo(force, want) {
		t.Errorf("Expected cohesion steer %v, got %v", want, force)
	}
	if !closeTo(force.Angle(), math.Pi/4) {
		t.Errorf("Expected steer towards (5,5) at 45 degrees, got angle %v", force.Angle())
	}
}

func TestForcesOn_CohesionRangeGrowsWithFishSize(t *testing.T) {
	p := DefaultParams()
	p.AvoidanceStrength = 0
	p.AlignmentStrength = 0
	p.CohesionRadius = 50
	p.FishSize = 0

	// 55 apart: invisible to plain 50-unit cohesion, visible once a
	// body size of 4 widens the range to 58.
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(0, 0)},
		Fish{Pos: geometry.NewVector(55, 0)},
	)

	if force := fl.forcesOn(0, p, []int{0, 1}); !vecCloseTo(force, geometry.Vector2D{}) {
		t.Errorf("Expected no cohesion at distance 55 with range 50, got %v", force)
	}

	p.FishSize = 4
	if force := fl.forcesOn(0, p, []int{0, 1}); force.X <= 0 {
		t.Errorf("Expected cohesion pull towards +x with range 58, got %v", force)
	}
}

func TestForcesOn_AvoidancePushesApart(t *testing.T) {
	p := DefaultParams()
	p.CohesionStrength = 0
	p.AlignmentStrength = 0

	// Two fish half an avoidance radius apart, dead in the water.
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(-p.AvoidanceRadius/4, 0)},
		Fish{Pos: geometry.NewVector(p.AvoidanceRadius/4, 0)},
	)

	fl.Tick(p)

	left, right := fl.Fish[0].Vel, fl.Fish[1].Vel
	if left.X >= 0 || right.X <= 0 {
		t.Errorf("Expected the fish to move apart, got %v and %v", left, right)
	}
	if !closeTo(left.Y, 0) || !closeTo(right.Y, 0) {
		t.Errorf("Expected the push along the connecting line, got %v and %v", left, right)
	}
	limit := p.MaxForce * p.AvoidanceStrength
	if left.Len() > limit+tolerance || right.Len() > limit+tolerance {
		t.Errorf("Expected avoidance magnitude at most %v, got %v and %v", limit, left.Len(), right.Len())
	}
}

func TestForcesOn_AvoidanceSymmetricRingCancels(t *testing.T) {
	p := DefaultParams()
	p.CohesionStrength = 0
	p.AlignmentStrength = 0

	// Four intruders on a symmetric ring inside the avoidance radius.
	// Their contributions cancel exactly, and the zero average must
	// yield a zero force rather than a -velocity steer.
	r := p.AvoidanceRadius / 2
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(0, 0), Vel: geometry.NewVector(2, 0)},
		Fish{Pos: geometry.NewVector(r, 0)},
		Fish{Pos: geometry.NewVector(-r, 0)},
		Fish{Pos: geometry.NewVector(0, r)},
		Fish{Pos: geometry.NewVector(0, -r)},
	)

	force := fl.forcesOn(0, p, []int{0, 1, 2, 3, 4})
	if !vecCloseTo(force, geometry.Vector2D{}) {
		t.Errorf("Expected zero force from a symmetric ring, got %v", force)
	}
}

func TestForcesOn_AlignmentMatchesNeighbors(t *testing.T) {
	p := DefaultParams()
	p.CohesionStrength = 0
	p.AvoidanceStrength = 0

	// Neighbors all swim +x, the still fish should steer that way.
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(0, 0)},
		Fish{Pos: geometry.NewVector(30, 0), Vel: geometry.NewVector(2, 0)},
		Fish{Pos: geometry.NewVector(0, 30), Vel: geometry.NewVector(3, 0)},
	)

	force := fl.forcesOn(0, p, []int{0, 1, 2})
	want := geometry.NewVector(p.MaxForce, 0)
	if !vecCloseTo(force, want) {
		t.Errorf("Expected alignment steer %v, got %v", want, force)
	}
}

func TestForcesOn_CoincidentFishSkipped(t *testing.T) {
	p := DefaultParams()

	// Two fish stacked on the same point have no direction between
	// them and must not blow up any rule.
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(7, -3)},
		Fish{Pos: geometry.NewVector(7, -3)},
	)

	force := fl.forcesOn(0, p, []int{0, 1})
	if math.IsNaN(force.X) || math.IsNaN(force.Y) {
		t.Fatalf("Coincident fish produced NaN force %v", force)
	}
	if !vecCloseTo(force, geometry.Vector2D{}) {
		t.Errorf("Expected coincident fish to be skipped, got %v", force)
	}
}

func TestForcesOn_BoundaryAvoidanceOptIn(t *testing.T) {
	p := DefaultParams()
	fl := testFlock(400, 300, Fish{Pos: geometry.NewVector(390, 290)})

	// Alone in the corner margin: off by default, nothing acts.
	if force := fl.forcesOn(0, p, []int{0}); !vecCloseTo(force, geometry.Vector2D{}) {
		t.Errorf("Expected zero force with boundary avoidance off, got %v", force)
	}

	p.BoundaryAvoidance = true
	want := geometry.NewVector(-p.MaxForce, -p.MaxForce).Mul(p.BoundaryStrength)
	if force := fl.forcesOn(0, p, []int{0}); !vecCloseTo(force, want) {
		t.Errorf("Expected inward push %v, got %v", want, force)
	}
}

func TestBoundaryForce(t *testing.T) {
	p := DefaultParams()
	fl := testFlock(400, 300)

	tests := []struct {
		name string
		pos  geometry.Vector2D
		want geometry.Vector2D
	}{
		{"open water", geometry.NewVector(0, 0), geometry.NewVector(0, 0)},
		{"near right edge", geometry.NewVector(380, 0), geometry.NewVector(-p.MaxForce, 0)},
		{"near left edge", geometry.NewVector(-380, 0), geometry.NewVector(p.MaxForce, 0)},
		{"near top edge", geometry.NewVector(0, 280), geometry.NewVector(0, -p.MaxForce)},
		{"corner", geometry.NewVector(380, -280), geometry.NewVector(-p.MaxForce, p.MaxForce)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := fl.boundaryForce(tc.pos, p)
			if !vecCloseTo(got, tc.want) {
				t.Errorf("boundaryForce(%v) = %v; want %v", tc.pos, got, tc.want)
			}
		})
	}
}
