package flock

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

// Stats summarizes the school at one instant.
type Stats struct {
	// Polarization is the length of the mean unit heading: 1.0 when
	// every fish swims the same way, near 0 for incoherent motion.
	// Stalled fish count towards the denominator.
	Polarization     float64
	MeanSpeed        float64
	SpeedStdDev      float64
	MeanNeighborDist float64
}

// Measure computes the order parameters over the current flock state.
func (fl *Flock) Measure() Stats {
	n := len(fl.Fish)
	if n == 0 {
		return Stats{}
	}

	speeds := make([]float64, n)
	var headingSum geometry.Vector2D
	for i := range fl.Fish {
		v := fl.Fish[i].Vel
		speeds[i] = v.Len()
		if speeds[i] > geometry.Epsilon {
			headingSum = headingSum.Add(v.Mul(1 / speeds[i]))
		}
	}

	mean, std := stat.MeanStdDev(speeds, nil)
	if math.IsNaN(std) {
		// Sample deviation needs at least two fish.
		std = 0
	}

	return Stats{
		Polarization:     headingSum.Len() / float64(n),
		MeanSpeed:        mean,
		SpeedStdDev:      std,
		MeanNeighborDist: fl.meanNeighborDist(),
	}
}

// meanNeighborDist averages the distance from each fish to its nearest
// other fish. The scan is quadratic but runs once per tick, far below
// the cost of the force pass.
func (fl *Flock) meanNeighborDist() float64 {
	n := len(fl.Fish)
	if n < 2 {
		return 0
	}
	var total float64
	for i := range fl.Fish {
		best := math.Inf(1)
		for j := range fl.Fish {
			if i == j {
				continue
			}
			if d := fl.Fish[i].Pos.DistanceSquaredTo(fl.Fish[j].Pos); d < best {
				best = d
			}
		}
		total += math.Sqrt(best)
	}
	return total / float64(n)
}
