package flock

import (
	"testing"

	"github.com/its-ben-jammin/go-flocking/pkg/geometry"
)

func TestGrid_Rebuild(t *testing.T) {
	// Cell size 100: fish at +-50 land in the four cells around the
	// origin. Floor keeps the negative side apart from cell zero.
	fish := []Fish{
		{Pos: geometry.NewVector(50, 50)},   // cell 0,0
		{Pos: geometry.NewVector(-50, 50)},  // cell -1,0
		{Pos: geometry.NewVector(50, -50)},  // cell 0,-1
		{Pos: geometry.NewVector(150, 250)}, // cell 1,2
	}
	g := newGrid()
	g.rebuild(fish, 100)

	tests := []struct {
		key  gridKey
		want int
	}{
		{gridKey{x: 0, y: 0}, 0},
		{gridKey{x: -1, y: 0}, 1},
		{gridKey{x: 0, y: -1}, 2},
		{gridKey{x: 1, y: 2}, 3},
	}
	for _, tc := range tests {
		cell := g.cells[tc.key]
		if len(cell) != 1 || cell[0] != tc.want {
			t.Errorf("Expected fish %d alone in cell %v, got %v", tc.want, tc.key, cell)
		}
	}
}

func TestGrid_RebuildEmptiesStaleCells(t *testing.T) {
	g := newGrid()
	g.rebuild([]Fish{{Pos: geometry.NewVector(10, 10)}}, 100)
	g.rebuild(nil, 100)

	if got := g.cells[gridKey{x: 0, y: 0}]; len(got) != 0 {
		t.Errorf("Expected the cell emptied after rebuild, got %v", got)
	}
}

func TestGrid_AppendNeighbors(t *testing.T) {
	// The query fish sits in cell 1,1. Everything in the 3x3 block
	// around it must come back, the fish two cells away must not.
	fish := []Fish{
		{Pos: geometry.NewVector(150, 150)}, // cell 1,1
		{Pos: geometry.NewVector(50, 50)},   // cell 0,0
		{Pos: geometry.NewVector(250, 250)}, // cell 2,2
		{Pos: geometry.NewVector(350, 350)}, // cell 3,3
	}
	g := newGrid()
	g.rebuild(fish, 100)

	got := g.appendNeighbors(fish[0].Pos, nil)

	contains := func(idx int) bool {
		for _, j := range got {
			if j == idx {
				return true
			}
		}
		return false
	}
	for _, idx := range []int{0, 1, 2} {
		if !contains(idx) {
			t.Errorf("Expected fish %d in the 3x3 block, got %v", idx, got)
		}
	}
	if contains(3) {
		t.Errorf("Did not expect fish 3 from cell 3,3, got %v", got)
	}
}

func TestCellSizeFor(t *testing.T) {
	p := DefaultParams()
	// Cohesion range 80 + 2*4 = 88 is the widest rule.
	if got := cellSizeFor(p); !closeTo(got, 88) {
		t.Errorf("cellSizeFor = %v; want 88", got)
	}

	p.CohesionRadius, p.FishSize = 1, 0
	p.AvoidanceRadius, p.AlignmentRadius = 2, 3
	if got := cellSizeFor(p); !closeTo(got, minCellSize) {
		t.Errorf("Expected the minimum cell size, got %v", got)
	}
}

func TestForcesOn_GridMatchesFullScan(t *testing.T) {
	p := DefaultParams()
	fl := testFlock(400, 300, schoolFixture(80)...)
	fl.grid.rebuild(fl.Fish, cellSizeFor(p))

	all := make([]int, len(fl.Fish))
	for i := range all {
		all[i] = i
	}

	// The grid hands back a superset of the true neighbors in a
	// different order, the resulting force must match a full scan.
	var buf []int
	for i := range fl.Fish {
		buf = fl.grid.appendNeighbors(fl.Fish[i].Pos, buf[:0])
		viaGrid := fl.forcesOn(i, p, buf)
		viaScan := fl.forcesOn(i, p, all)
		if !vecCloseTo(viaGrid, viaScan) {
			t.Errorf("Fish %d: grid candidates give %v, full scan gives %v", i, viaGrid, viaScan)
		}
	}
}

func BenchmarkGrid_Rebuild(b *testing.B) {
	fl := testFlock(400, 300, schoolFixture(1000)...)
	cellSize := cellSizeFor(DefaultParams())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fl.grid.rebuild(fl.Fish, cellSize)
	}
}

func BenchmarkGrid_AppendNeighbors(b *testing.B) {
	fl := testFlock(400, 300, schoolFixture(1000)...)
	fl.grid.rebuild(fl.Fish, cellSizeFor(DefaultParams()))

	b.ResetTimer()
	var buf []int
	for i := 0; i < b.N; i++ {
		buf = fl.grid.appendNeighbors(fl.Fish[i%1000].Pos, buf[:0])
	}
}
