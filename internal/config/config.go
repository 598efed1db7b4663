// Package config handles terrain generator configuration loading and
// management.
package config

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the terrain build parameters.
type TerrainConfig struct {
	Seed        int64   `yaml:"seed"`         // 0 means pick a random seed
	Sites       int     `yaml:"sites"`        // number of random sample points
	Extent      float64 `yaml:"extent"`       // sites are scattered over [0, extent)^2
	WaterLevel  uint32  `yaml:"water_level"`  // threshold for submerged terrain
	HeightScale uint32  `yaml:"height_scale"` // multiplier applied to noise heights
}

// NoiseConfig selects and tunes the height sampler.
type NoiseConfig struct {
	Backend     string  `yaml:"backend"` // "perlin" or "simplex"
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

// OutputConfig holds debug-rendering settings.
type OutputConfig struct {
	SVGPath string `yaml:"svg_path"` // empty disables SVG export
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Seed:        0,
			Sites:       400,
			Extent:      1000,
			WaterLevel:  30,
			HeightScale: 100,
		},
		Noise: NoiseConfig{
			Backend:     "perlin",
			Octaves:     4,
			Frequency:   0.01,
			Persistence: 0.5,
			Lacunarity:  2.0,
		},
		Output: OutputConfig{
			SVGPath: "",
			Width:   1000,
			Height:  1000,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
