// Package flock implements the planar boid model: a fixed population
// of fish steered each tick by cohesion, avoidance and alignment.
// Boids is an artificial life program, developed by Craig Reynolds in
// 1986, which simulates the flocking behaviour of birds and related
// group motion. https://en.wikipedia.org/wiki/Boids
package flock

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

// Flock owns the whole school. Width and Height are half extents: fish
// live in [-Width, Width] x [-Height, Height] with the origin at the
// center of the domain. The population is fixed for the flock's
// lifetime, no fish is ever added or removed.
type Flock struct {
	Fish   []Fish
	Width  float64
	Height float64

	// Workers caps the goroutines used for the force pass. Zero or
	// one keeps the pass on the calling goroutine.
	Workers int

	grid *grid
}

// New builds a flock of n fish scattered uniformly over the domain,
// each with a unit-speed velocity in a random direction and zero
// acceleration.
func New(n int, width, height float64) *Flock {
	fl := &Flock{
		Fish:   make([]Fish, n),
		Width:  width,
		Height: height,
		grid:   newGrid(),
	}
	for i := range fl.Fish {
		f := &fl.Fish[i]
		f.Pos = geometry.NewVector(
			(rand.Float64()*2-1)*width,
			(rand.Float64()*2-1)*height,
		)
		f.Vel = geometry.NewVectorPolar(1, rand.Float64()*2*math.Pi)
		f.Heading = f.Vel.Angle()
	}
	return fl
}

// Tick advances the whole flock by one step.
//
// The tick is two-phase: first every force is computed from the
// pre-tick state into Acc, then every fish integrates. Neighbor reads
// never observe a partially updated flock, which also means splitting
// phase one across workers cannot change the result.
func (fl *Flock) Tick(p Params) {
	// 1. Re-bin the spatial grid for this tick's positions.
	fl.grid.rebuild(fl.Fish, cellSizeFor(p))

	// 2. Force pass, writes only Acc.
	workers := fl.Workers
	if workers > len(fl.Fish) {
		workers = len(fl.Fish)
	}
	if workers > 1 {
		fl.forcePassParallel(p, workers)
	} else {
		fl.forcePass(p, 0, len(fl.Fish))
	}

	// 3. Integration pass.
	for i := range fl.Fish {
		fl.integrate(&fl.Fish[i], p)
	}
}

// forcePass fills Acc for fish in [lo, hi). It writes nothing else, so
// passes over disjoint ranges are race free.
func (fl *Flock) forcePass(p Params, lo, hi int) {
	var buf []int
	for i := lo; i < hi; i++ {
		buf = fl.grid.appendNeighbors(fl.Fish[i].Pos, buf[:0])
		fl.Fish[i].Acc = fl.forcesOn(i, p, buf)
	}
}

func (fl *Flock) forcePassParallel(p Params, workers int) {
	var wg sync.WaitGroup
	chunk := (len(fl.Fish) + workers - 1) / workers
	for lo := 0; lo < len(fl.Fish); lo += chunk {
		hi := lo + chunk
		if hi > len(fl.Fish) {
			hi = len(fl.Fish)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fl.forcePass(p, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// integrate applies the accumulated force and moves one fish.
func (fl *Flock) integrate(f *Fish, p Params) {
	// Velocity is capped per axis, not by magnitude, so a diagonal
	// fish can reach MaxSpeed*sqrt(2).
	f.Vel = f.Vel.Add(f.Acc).Clamp(p.MaxSpeed)
	f.Pos = f.Pos.Add(f.Vel)
	f.Acc = geometry.Vector2D{}

	// A stalled fish keeps its last heading instead of snapping to
	// whatever Atan2(0, 0) returns.
	if f.Vel.Len() > geometry.Epsilon {
		f.Heading = f.Vel.Angle()
	}

	// Leaving the domain reflects the coordinate through the origin.
	// This carries the fish to the opposite edge, it is not a bounce.
	if math.Abs(f.Pos.X) > fl.Width {
		f.Pos.X = -f.Pos.X
	}
	if math.Abs(f.Pos.Y) > fl.Height {
		f.Pos.Y = -f.Pos.Y
	}
}
