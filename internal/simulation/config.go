package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/its-ben-jammin/go-flocking/pkg/flock"
)

// Config holds everything the simulation needs to come up: the tank
// dimensions, the school size and the full set of steering parameters.
// Width and Height are half extents, so the window is twice this size.
type Config struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	NumFish int     `json:"numFish"`
	// Workers for the force pass, 0 keeps it single threaded.
	Workers int `json:"workers"`

	CohesionRadius    float64 `json:"cohesionRadius"`
	CohesionStrength  float64 `json:"cohesionStrength"`
	AvoidanceRadius   float64 `json:"avoidanceRadius"`
	AvoidanceStrength float64 `json:"avoidanceStrength"`
	AlignmentRadius   float64 `json:"alignmentRadius"`
	AlignmentStrength float64 `json:"alignmentStrength"`
	MaxSpeed          float64 `json:"maxSpeed"`
	MaxForce          float64 `json:"maxForce"`
	BoundaryMargin    float64 `json:"boundaryMargin"`
	BoundaryStrength  float64 `json:"boundaryStrength"`
	FishSize          float64 `json:"fishSize"`
	BoundaryAvoidance bool    `json:"boundaryAvoidance"`

	// Display toggles, the UI checkboxes start from these.
	ShowCohesionRange  bool `json:"showCohesionRange"`
	ShowAvoidanceRange bool `json:"showAvoidanceRange"`

	// Verbose turns the actor system logger on.
	Verbose bool `json:"verbose"`
}

// DefaultConfig returns a 800x600 tank with 200 fish and the stock
// steering parameters. Good for running without any config file.
func DefaultConfig() *Config {
	p := flock.DefaultParams()
	return &Config{
		Width:             400,
		Height:            300,
		NumFish:           200,
		Workers:           0,
		CohesionRadius:    p.CohesionRadius,
		CohesionStrength:  p.CohesionStrength,
		AvoidanceRadius:   p.AvoidanceRadius,
		AvoidanceStrength: p.AvoidanceStrength,
		AlignmentRadius:   p.AlignmentRadius,
		AlignmentStrength: p.AlignmentStrength,
		MaxSpeed:          p.MaxSpeed,
		MaxForce:          p.MaxForce,
		BoundaryMargin:    p.BoundaryMargin,
		BoundaryStrength:  p.BoundaryStrength,
		FishSize:          p.FishSize,
		BoundaryAvoidance: p.BoundaryAvoidance,
	}
}

// Params extracts the steering parameters the flock core consumes.
func (c *Config) Params() flock.Params {
	return flock.Params{
		CohesionRadius:    c.CohesionRadius,
		CohesionStrength:  c.CohesionStrength,
		AvoidanceRadius:   c.AvoidanceRadius,
		AvoidanceStrength: c.AvoidanceStrength,
		AlignmentRadius:   c.AlignmentRadius,
		AlignmentStrength: c.AlignmentStrength,
		MaxSpeed:          c.MaxSpeed,
		MaxForce:          c.MaxForce,
		BoundaryMargin:    c.BoundaryMargin,
		BoundaryStrength:  c.BoundaryStrength,
		FishSize:          c.FishSize,
		BoundaryAvoidance: c.BoundaryAvoidance,
	}
}

// LoadConfig reads a JSON config file and validates it against the given
// JSON schema before unmarshalling, so a typo fails loudly at startup
// instead of producing a silently weird school.
func LoadConfig(configFile, schemaFile string) (*Config, error) {
	// 1. Compile schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", schemaFile, err)
	}

	// 2. Read config file
	f, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", configFile, err)
	}
	defer f.Close()

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(f).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", configFile, err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config %s does not match schema: %w", configFile, err)
	}

	// 4. Unmarshal over the defaults, so a sparse file only overrides
	// what it names
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", configFile, err)
	}
	return cfg, nil
}
