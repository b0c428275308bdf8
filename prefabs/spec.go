package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vec3Spec is a yaml-friendly world point.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PlayerSpec tunes the player.
type PlayerSpec struct {
	MaxHealth     int      `yaml:"max_health"`
	MoveSpeed     float64  `yaml:"move_speed"`
	ContactRadius float64  `yaml:"contact_radius"`
	Spawn         Vec3Spec `yaml:"spawn"`
}

// RegionSpec is the horizontal sampling domain of a burst spawner.
type RegionSpec struct {
	Width        float64 `yaml:"width"`
	Depth        float64 `yaml:"depth"`
	SearchHeight float64 `yaml:"search_height"`
}

// PickupsSpec tunes the one-shot collectible burst.
type PickupsSpec struct {
	CoinAmount    int        `yaml:"coin_amount"`
	CoinValue     int        `yaml:"coin_value"`
	HeartAmount   int        `yaml:"heart_amount"`
	HeartValue    int        `yaml:"heart_value"`
	SpinSpeed     float64    `yaml:"spin_speed"`
	ContactRadius float64    `yaml:"contact_radius"`
	Region        RegionSpec `yaml:"region"`
}

// HostilesSpec tunes periodic enemy spawning and the chasers themselves.
type HostilesSpec struct {
	Interval      float64 `yaml:"interval"`
	RingRadius    float64 `yaml:"ring_radius"`
	SearchHeight  float64 `yaml:"search_height"`
	Speed         float64 `yaml:"speed"`
	StopDistance  float64 `yaml:"stop_distance"`
	Clearance     float64 `yaml:"clearance"`
	Damage        int     `yaml:"damage"`
	ContactRadius float64 `yaml:"contact_radius"`
}

// GameSpec is the whole game tuning file.
type GameSpec struct {
	ScorePerCoin int          `yaml:"score_per_coin"`
	Player       PlayerSpec   `yaml:"player"`
	Pickups      PickupsSpec  `yaml:"pickups"`
	Hostiles     HostilesSpec `yaml:"hostiles"`
}

// TerrainSpec describes the height field.
type TerrainSpec struct {
	CellSize float64     `yaml:"cell_size"`
	Heights  [][]float64 `yaml:"heights"`
	Holes    [][2]int    `yaml:"holes"`
}

// LoadSpec unmarshals a yaml spec file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadGameSpec reads game.yaml.
func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadTerrainSpec reads terrain.yaml.
func LoadTerrainSpec() (*TerrainSpec, error) {
	spec, err := LoadSpec[TerrainSpec]("terrain.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Heights) < 2 {
		return nil, fmt.Errorf("prefabs: terrain.yaml needs at least a 2x2 height grid")
	}
	return &spec, nil
}
