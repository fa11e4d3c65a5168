package main

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/its-ben-jammin/go-flocking/pkg/flock"
)

const (
	screenWidth  = 800
	screenHeight = 600
	numFish      = 250
)

type Game struct {
	school *flock.Flock
	params flock.Params
}

func (g *Game) Update() error {
	g.school.Tick(g.params)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	// World coordinates are origin centered, shift into screen space
	for i := range g.school.Fish {
		f := &g.school.Fish[i]
		drawFish(screen, f.Pos.X+screenWidth/2, f.Pos.Y+screenHeight/2, f.Heading, g.params.FishSize)
	}
}

func drawFish(screen *ebiten.Image, x, y, angle, size float64) {
	// Visual geometry logic remains in main because it's specific to this view
	tipX := x + math.Cos(angle)*size*1.5
	tipY := y + math.Sin(angle)*size*1.5
	rightX := x + math.Cos(angle+2.5)*size*1.25
	rightY := y + math.Sin(angle+2.5)*size*1.25
	leftX := x + math.Cos(angle-2.5)*size*1.25
	leftY := y + math.Sin(angle-2.5)*size*1.25

	// Define the 3 vertices of the triangle
	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}

	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

func (g *Game) Layout(w, h int) (int, int) {
	return screenWidth, screenHeight
}

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 140, G: 200, B: 255, A: 255})
}

func main() {
	// 1. Stock steering parameters, with edge turning on because this
	// demo has no UI to toggle it
	params := flock.DefaultParams()
	params.BoundaryAvoidance = true

	// 2. Initialize the school
	school := flock.New(numFish, screenWidth/2, screenHeight/2)

	g := &Game{
		school: school,
		params: params,
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Flocking (No Actors)")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
