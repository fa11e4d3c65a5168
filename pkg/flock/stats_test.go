package flock

import (
	"testing"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

func TestMeasure_Polarization(t *testing.T) {
	// Everyone swimming the same way, at whatever speed.
	aligned := testFlock(400, 300,
		Fish{Vel: geometry.NewVector(2, 0)},
		Fish{Pos: geometry.NewVector(50, 0), Vel: geometry.NewVector(4, 0)},
		Fish{Pos: geometry.NewVector(0, 50), Vel: geometry.NewVector(1, 0)},
	)
	if got := aligned.Measure().Polarization; !closeTo(got, 1) {
		t.Errorf("Expected polarization 1.0 for an aligned school, got %v", got)
	}

	// Two fish head to head cancel out.
	opposed := testFlock(400, 300,
		Fish{Vel: geometry.NewVector(3, 0)},
		Fish{Pos: geometry.NewVector(50, 0), Vel: geometry.NewVector(-3, 0)},
	)
	if got := opposed.Measure().Polarization; !closeTo(got, 0) {
		t.Errorf("Expected polarization 0 for opposed fish, got %v", got)
	}
}

func TestMeasure_SpeedMoments(t *testing.T) {
	fl := testFlock(400, 300,
		Fish{Vel: geometry.NewVector(3, 0)},
		Fish{Pos: geometry.NewVector(50, 0), Vel: geometry.NewVector(0, 4)},
		Fish{Pos: geometry.NewVector(0, 50), Vel: geometry.NewVector(-5, 0)},
	)

	s := fl.Measure()
	if !closeTo(s.MeanSpeed, 4) {
		t.Errorf("Expected mean speed 4, got %v", s.MeanSpeed)
	}
	if !closeTo(s.SpeedStdDev, 1) {
		t.Errorf("Expected speed deviation 1, got %v", s.SpeedStdDev)
	}
}

func TestMeasure_MeanNeighborDist(t *testing.T) {
	// Nearest pairs on a line at 0, 10 and 25: 10, 10 and 15.
	fl := testFlock(400, 300,
		Fish{Pos: geometry.NewVector(0, 0)},
		Fish{Pos: geometry.NewVector(10, 0)},
		Fish{Pos: geometry.NewVector(25, 0)},
	)

	want := (10.0 + 10.0 + 15.0) / 3
	if got := fl.Measure().MeanNeighborDist; !closeTo(got, want) {
		t.Errorf("Expected mean neighbor distance %v, got %v", want, got)
	}
}

func TestMeasure_DegenerateFlocks(t *testing.T) {
	empty := testFlock(400, 300)
	if s := empty.Measure(); s != (Stats{}) {
		t.Errorf("Expected zero stats for an empty flock, got %+v", s)
	}

	lone := testFlock(400, 300, Fish{Vel: geometry.NewVector(3, 4)})
	s := lone.Measure()
	if !closeTo(s.MeanSpeed, 5) {
		t.Errorf("Expected mean speed 5, got %v", s.MeanSpeed)
	}
	if !closeTo(s.SpeedStdDev, 0) {
		t.Errorf("Expected zero deviation for one fish, got %v", s.SpeedStdDev)
	}
	if !closeTo(s.MeanNeighborDist, 0) {
		t.Errorf("Expected zero neighbor distance for one fish, got %v", s.MeanNeighborDist)
	}
}
