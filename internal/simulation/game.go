package simulation

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/its-ben-jammin/go-flocking/pb"
	"github.com/its-ben-jammin/go-flocking/pkg/ui"
)

// Texture for the batched triangle drawing, tinted fish-silver
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 140, G: 200, B: 255, A: 255})
}

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot
	paused     bool

	// UI Controls
	panel *ui.UIPanel

	// Widget references for easy access
	widgetCohesionRadius    *ui.Slider
	widgetCohesionStrength  *ui.Slider
	widgetAvoidanceRadius   *ui.Slider
	widgetAvoidanceStrength *ui.Slider
	widgetAlignmentRadius   *ui.Slider
	widgetAlignmentStrength *ui.Slider
	widgetMaxSpeed          *ui.Slider
	widgetMaxForce          *ui.Slider
	widgetFishSize          *ui.Slider
	widgetBoundaryMargin    *ui.Slider
	widgetBoundaryStrength  *ui.Slider
	widgetBoundaryAvoidance *ui.Checkbox
	widgetShowCohesion      *ui.Checkbox
	widgetShowAvoidance     *ui.Checkbox
	widgetPause             *ui.Button

	cfg *Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem) *Game {
	// 1. Create the channel the world pushes snapshots through
	snapshotCh := make(chan *pb.FlockSnapshot, 10) // Buffer to avoid blocking

	// 2. Spawn the world actor
	worldActor := NewWorldActor(snapshotCh, cfg)
	worldPID, err := system.Spawn(ctx, "world", worldActor)
	if err != nil {
		panic(fmt.Sprintf("Failed to spawn world: %v", err))
	}

	// 3. Ask for the initial state so the first frame already has fish
	lastState := &pb.FlockSnapshot{}
	if reply, err := actor.Ask(ctx, worldPID, &pb.GetSnapshot{}, time.Second); err == nil {
		if snap, ok := reply.(*pb.FlockSnapshot); ok {
			lastState = snap
		}
	}

	// 4. Initialize UI panel with all steering widgets
	panel := ui.NewUIPanel(10, 10, 250, 2*cfg.Height-20, "Flocking Controls")

	panel.AddSection("Cohesion")
	widgetCohesionRadius := panel.AddSlider("Radius", 10, 300, cfg.CohesionRadius)
	widgetCohesionStrength := panel.AddSlider("Strength", 0, 5, cfg.CohesionStrength)

	panel.AddSection("Avoidance")
	widgetAvoidanceRadius := panel.AddSlider("Radius", 5, 150, cfg.AvoidanceRadius)
	widgetAvoidanceStrength := panel.AddSlider("Strength", 0, 5, cfg.AvoidanceStrength)

	panel.AddSection("Alignment")
	widgetAlignmentRadius := panel.AddSlider("Radius", 10, 300, cfg.AlignmentRadius)
	widgetAlignmentStrength := panel.AddSlider("Strength", 0, 5, cfg.AlignmentStrength)

	panel.AddSection("Limits")
	widgetMaxSpeed := panel.AddSlider("Max Speed", 0.5, 15, cfg.MaxSpeed)
	widgetMaxForce := panel.AddSlider("Max Force", 0.01, 2, cfg.MaxForce)
	widgetFishSize := panel.AddSlider("Fish Size", 1, 12, cfg.FishSize)

	panel.AddSection("Boundary")
	widgetBoundaryAvoidance := panel.AddCheckbox("Avoid Edges", cfg.BoundaryAvoidance)
	widgetBoundaryMargin := panel.AddSlider("Margin", 10, 200, cfg.BoundaryMargin)
	widgetBoundaryStrength := panel.AddSlider("Strength", 0, 10, cfg.BoundaryStrength)

	panel.AddSection("Visualization")
	widgetShowCohesion := panel.AddCheckbox("Show Cohesion Range", cfg.ShowCohesionRange)
	widgetShowAvoidance := panel.AddCheckbox("Show Avoidance Range", cfg.ShowAvoidanceRange)

	g := &Game{
		ctx:                     ctx,
		System:                  system,
		worldPID:                worldPID,
		snapshotCh:              snapshotCh,
		lastState:               lastState,
		panel:                   panel,
		widgetCohesionRadius:    widgetCohesionRadius,
		widgetCohesionStrength:  widgetCohesionStrength,
		widgetAvoidanceRadius:   widgetAvoidanceRadius,
		widgetAvoidanceStrength: widgetAvoidanceStrength,
		widgetAlignmentRadius:   widgetAlignmentRadius,
		widgetAlignmentStrength: widgetAlignmentStrength,
		widgetMaxSpeed:          widgetMaxSpeed,
		widgetMaxForce:          widgetMaxForce,
		widgetFishSize:          widgetFishSize,
		widgetBoundaryMargin:    widgetBoundaryMargin,
		widgetBoundaryStrength:  widgetBoundaryStrength,
		widgetBoundaryAvoidance: widgetBoundaryAvoidance,
		widgetShowCohesion:      widgetShowCohesion,
		widgetShowAvoidance:     widgetShowAvoidance,
		cfg:                     cfg,
	}

	// 5. Buttons capture the game pointer, so they come last
	panel.AddSection("Controls")
	g.widgetPause = panel.AddButton("Pause", func() {
		g.paused = !g.paused
		if g.paused {
			g.widgetPause.Label = "Resume"
		} else {
			g.widgetPause.Label = "Pause"
		}
	})
	panel.AddButton("Restart Flock", func() {
		actor.Tell(g.ctx, g.worldPID, &pb.Reset{})
	})

	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI panel
	g.panel.Update()

	// 2. Retrieve latest state (non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// Pausing freezes the school in place, the world stops getting Ticks
	if g.paused {
		return nil
	}

	// 3. Send all updated steering values to the world
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateParams{Params: g.widgetParams()})

	// 4. Trigger simulation step
	actor.Tell(g.ctx, g.worldPID, &pb.Tick{})

	return nil
}

// widgetParams collects the current slider values into wire form.
func (g *Game) widgetParams() *pb.Params {
	return &pb.Params{
		CohesionRadius:    g.widgetCohesionRadius.Value,
		CohesionStrength:  g.widgetCohesionStrength.Value,
		AvoidanceRadius:   g.widgetAvoidanceRadius.Value,
		AvoidanceStrength: g.widgetAvoidanceStrength.Value,
		AlignmentRadius:   g.widgetAlignmentRadius.Value,
		AlignmentStrength: g.widgetAlignmentStrength.Value,
		MaxSpeed:          g.widgetMaxSpeed.Value,
		MaxForce:          g.widgetMaxForce.Value,
		BoundaryMargin:    g.widgetBoundaryMargin.Value,
		BoundaryStrength:  g.widgetBoundaryStrength.Value,
		FishSize:          g.widgetFishSize.Value,
		BoundaryAvoidance: g.widgetBoundaryAvoidance.Value,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	// 1. Draw the school from the last known snapshot.
	// World coordinates are centered on the origin, the screen is not.
	if g.lastState != nil {
		size := g.widgetFishSize.Value
		for _, fish := range g.lastState.Fish {
			sx := fish.Pos.X + g.cfg.Width
			sy := fish.Pos.Y + g.cfg.Height

			if g.widgetShowCohesion.Value {
				clr := color.RGBA{R: 50, G: 100, B: 255, A: 50}
				vector.StrokeCircle(
					screen,
					float32(sx),
					float32(sy),
					float32(g.widgetCohesionRadius.Value+2*size),
					1,
					clr,
					true,
				)
			}
			if g.widgetShowAvoidance.Value {
				clr := color.RGBA{R: 255, G: 80, B: 80, A: 60}
				vector.StrokeCircle(
					screen,
					float32(sx),
					float32(sy),
					float32(g.widgetAvoidanceRadius.Value),
					1,
					clr,
					true,
				)
			}

			drawFish(screen, sx, sy, fish.Heading, size)
		}
	}

	// 2. Draw UI panel
	g.panel.Draw(screen)

	// 3. Draw the stats bar
	g.drawStatsBar(screen)

	// 4. Pause overlay
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(g.cfg.Width)-24, int(g.cfg.Height))
	}

	// Display timing breakdown for performance analysis (right side,
	// below the stats bar to avoid overlap)
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms\nTotal:  %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg,
		g.updateAvg+g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(2*g.cfg.Width)-150, 110)
}

// drawStatsBar renders the polarization gauge top right. Full bar means
// the whole school swims the same way, empty means chaos.
func (g *Game) drawStatsBar(screen *ebiten.Image) {
	if g.lastState == nil || g.lastState.Stats == nil {
		return
	}
	s := g.lastState.Stats

	barWidth := float32(200.0)
	barHeight := float32(14.0)
	marginTop := float32(10.0)
	marginRight := float32(10.0)

	screenW := float32(screen.Bounds().Dx())
	x := screenW - barWidth - marginRight
	y := marginTop

	// 1. Track
	vector.FillRect(screen, x, y, barWidth, barHeight, color.RGBA{R: 40, G: 50, B: 70, A: 255}, true)

	// 2. Fill proportional to polarization
	vector.FillRect(screen, x, y, barWidth*float32(s.Polarization), barHeight, color.RGBA{R: 80, G: 220, B: 140, A: 255}, true)

	msg := fmt.Sprintf("Fish: %d\nPolarization: %.2f\nSpeed: %.2f (sd %.2f)\nNeighbor dist: %.1f\nTick: %d",
		len(g.lastState.Fish),
		s.Polarization,
		s.MeanSpeed,
		s.SpeedStdDev,
		s.MeanNeighborDist,
		g.lastState.Tick)
	ebitenutil.DebugPrintAt(screen, msg, int(x), int(y+barHeight+5))
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(2 * g.cfg.Width), int(2 * g.cfg.Height)
}

// drawFish renders one fish as a triangle pointing along its heading.
func drawFish(screen *ebiten.Image, x, y, angle, size float64) {
	// Tail corners sit behind the nose at +-2.5 radians
	tipX := x + math.Cos(angle)*size*1.5
	tipY := y + math.Sin(angle)*size*1.5
	rightX := x + math.Cos(angle+2.5)*size*1.25
	rightY := y + math.Sin(angle+2.5)*size*1.25
	leftX := x + math.Cos(angle-2.5)*size*1.25
	leftY := y + math.Sin(angle-2.5)*size*1.25

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
