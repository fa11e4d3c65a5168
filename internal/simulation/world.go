package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"

	"github.com/its-ben-jammin/go-flocking/pb"
	"github.com/its-ben-jammin/go-flocking/pkg/flock"
)

// WorldActor owns the school. It is the single writer of flock state:
// every mutation arrives through its mailbox, so the stepping loop
// needs no locks even though the UI runs on another goroutine.
type WorldActor struct {
	flock  *flock.Flock
	params flock.Params
	cfg    *Config
	tick   int64

	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot

	// --- Benchmark Stats ---
	tickCount   int
	tickAvg     float64 // Rolling average in ms
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit. The school is populated
// right away, so a GetSnapshot arriving before the first Tick already
// sees fish.
func NewWorldActor(snapshotCh chan<- *pb.FlockSnapshot, cfg *Config) *WorldActor {
	w := &WorldActor{
		params:      cfg.Params(),
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
	w.spawnSchool()
	return w
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is filling the tank...")
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started with %d fish", len(w.flock.Fish))

	// 1. The main simulation step (driven by the game loop)
	case *pb.Tick:
		w.logTelemetry(ctx)
		start := time.Now()
		w.flock.Tick(w.params)
		// Rolling average (exponential moving average)
		w.tickAvg = w.tickAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
		w.tick++
		w.pushSnapshot()

	// 2. Dynamic slider updates from the UI
	case *pb.UpdateParams:
		w.params = ParamsFromProto(msg.Params)

	// 3. Synchronous read for callers outside the snapshot stream
	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	case *pb.Reset:
		ctx.Logger().Info("Restarting the school")
		w.spawnSchool()
		// Push right away so a paused UI still shows the new scatter
		w.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logTelemetry(ctx *actor.ReceiveContext) {
	w.tickCount++
	if time.Since(w.lastLogTime) >= time.Second {
		s := w.flock.Measure()
		ctx.Logger().Infof("📊 TICK RATE: %d/sec (avg %.2fms) | Fish: %d | Polarization: %.2f | Mean speed: %.2f",
			w.tickCount, w.tickAvg, len(w.flock.Fish), s.Polarization, s.MeanSpeed)
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

// spawnSchool scatters a fresh school across the tank. Also the Reset
// handler, which is why the tick counter goes back to zero.
func (w *WorldActor) spawnSchool() {
	w.flock = flock.New(w.cfg.NumFish, w.cfg.Width, w.cfg.Height)
	w.flock.Workers = w.cfg.Workers
	w.tick = 0
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *pb.FlockSnapshot {
	snapshot := &pb.FlockSnapshot{
		Tick:   w.tick,
		Fish:   make([]*pb.FishState, 0, len(w.flock.Fish)),
		Stats:  statsToProto(w.flock.Measure()),
		Width:  w.flock.Width,
		Height: w.flock.Height,
	}
	for i := range w.flock.Fish {
		snapshot.Fish = append(snapshot.Fish, fishToProto(&w.flock.Fish[i]))
	}
	return snapshot
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
