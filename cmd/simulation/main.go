package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/its-ben-jammin/go-flocking/internal/simulation"
)

func main() {
	configFile := flag.String("config", "config.json", "path to the simulation config")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config JSON schema")
	flag.Parse()

	cfg := loadConfig(*configFile, *schemaFile)

	ctx := context.Background()

	logger := golog.DiscardLogger
	if cfg.Verbose {
		logger = golog.DefaultLogger
	}
	system, err := actor.NewActorSystem("FlockWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("creating actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("starting actor system: %v", err)
	}

	ebiten.SetWindowSize(int(2*cfg.Width), int(2*cfg.Height))
	ebiten.SetWindowTitle(fmt.Sprintf("Flocking: a school of %d fish", cfg.NumFish))

	game := simulation.GetNewGame(ctx, cfg, system)
	defer game.System.Stop(ctx)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadConfig falls back to the built-in defaults when the config file is
// absent, so the binary also runs from a bare checkout.
func loadConfig(configFile, schemaFile string) *simulation.Config {
	if _, err := os.Stat(configFile); err != nil {
		log.Printf("config %s not found, using built-in defaults", configFile)
		return simulation.DefaultConfig()
	}
	cfg, err := simulation.LoadConfig(configFile, schemaFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	return cfg
}
