package flock

import (
	"math"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

// Clamp to a minimum of 10 to avoid tiny cells when all radii shrink.
const minCellSize = 10.0

type gridKey struct {
	x, y int
}

// grid is a spatial hash over fish indices. Cells are sized to the
// largest interaction radius, so the 3x3 block around any fish covers
// every neighbor a force rule can see.
type grid struct {
	cells map[gridKey][]int
	size  float64
}

func newGrid() *grid {
	return &grid{cells: make(map[gridKey][]int)}
}

func (g *grid) keyFor(pos geometry.Vector2D) gridKey {
	// Floor, not truncation: positions go negative on both axes and
	// plain int() would fold the cells around zero into one.
	return gridKey{x: int(math.Floor(pos.X / g.size)), y: int(math.Floor(pos.Y / g.size))}
}

// rebuild re-bins every fish for the coming tick.
func (g *grid) rebuild(fish []Fish, cellSize float64) {
	g.size = cellSize

	// Reset slices to length 0, but keep capacity! This reuses the
	// underlying arrays, so steady-state rebuilds allocate almost
	// nothing.
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for i := range fish {
		key := g.keyFor(fish[i].Pos)
		g.cells[key] = append(g.cells[key], i)
	}
}

// appendNeighbors appends every fish index in the 3x3 block around pos
// to buf and returns the extended slice. Cells are visited in a fixed
// order and fish are binned in index order, so the candidate sequence
// for a given flock state is always the same.
func (g *grid) appendNeighbors(pos geometry.Vector2D, buf []int) []int {
	center := g.keyFor(pos)
	for i := center.x - 1; i <= center.x+1; i++ {
		for j := center.y - 1; j <= center.y+1; j++ {
			buf = append(buf, g.cells[gridKey{x: i, y: j}]...)
		}
	}
	return buf
}

// cellSizeFor picks the cell edge for a parameter set. Using the
// largest radius ensures the 3x3 check misses nothing.
func cellSizeFor(p Params) float64 {
	size := math.Max(p.CohesionRange(), math.Max(p.AvoidanceRadius, p.AlignmentRadius))
	return math.Max(size, minCellSize)
}
