package gameplay

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mazecaster/internal/config"
	"mazecaster/internal/world"
)

// TuningFromConfig builds session tuning from the movement and world sections.
func TuningFromConfig(cfg *config.Config) Tuning {
	return Tuning{
		MoveSpeed:         cfg.GetMoveSpeed(),
		TurnSpeed:         cfg.GetRotSpeed(),
		MouseSensitivity:  cfg.Movement.MouseSensitivity,
		PickupRadius:      cfg.Movement.PickupRadius,
		PlacementAttempts: cfg.World.PlacementAttempts,
	}
}

// SpawnPose resolves where the player starts: the configured position, the
// map's start marker, or the first open cell, in that order.
func SpawnPose(cfg *config.Config, data *world.MapData) (Pose, error) {
	pose := Pose{Direction: cfg.GetStartDirection(), FOV: cfg.GetFOV()}

	switch {
	case cfg.HasStartPosition():
		pose.X, pose.Y = cfg.Player.StartX, cfg.Player.StartY
	case data.HasStart():
		pose.X, pose.Y = data.Start().Center()
	default:
		open := data.Map.OpenCells()
		if len(open) == 0 {
			return Pose{}, fmt.Errorf("map %s: %w", data.Name, world.ErrNoOpenCell)
		}
		pose.X, pose.Y = open[0].Center()
	}
	return pose, nil
}

// LoadMapData returns the map the session plays on: a generated maze when
// enabled, otherwise the configured map file or the built-in layout.
func LoadMapData(cfg *config.Config, rng *rand.Rand) (*world.MapData, error) {
	if gen := cfg.World.Generate; gen.Enabled {
		data, err := world.NewMazeGenerator(gen.Width, gen.Height, gen.LoopChance, rng).Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate map: %w", err)
		}
		return data, nil
	}

	data, err := world.NewMapLoader().LoadOrDefault(cfg.World.MapFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	return data, nil
}

// Bootstrap loads the configured map and starts a session on it.
func Bootstrap(cfg *config.Config) (*Session, *world.MapData, error) {
	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	data, err := LoadMapData(cfg, rng)
	if err != nil {
		return nil, nil, err
	}

	spawn, err := SpawnPose(cfg, data)
	if err != nil {
		return nil, nil, err
	}

	session, err := NewSession(data.Map, spawn, TuningFromConfig(cfg), rng)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start session on %s: %w", data.Name, err)
	}

	log.Printf("[Session] Map %s (%dx%d), spawn (%.1f, %.1f), key (%.1f, %.1f), goal (%.1f, %.1f)",
		data.Name, data.Map.Width(), data.Map.Height(), spawn.X, spawn.Y,
		session.Key.X, session.Key.Y, session.Goal.X, session.Goal.Y)
	return session, data, nil
}
