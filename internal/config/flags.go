package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Int64("seed", 0, "Noise seed (0 picks a random seed)")
	flagSites  = flag.Int("sites", 0, "Number of random sample points")
	flagWater  = flag.Int("water", -1, "Water level threshold")
	flagSVG    = flag.String("svg", "", "Write an SVG rendering to this path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagSites > 0 {
		cfg.Terrain.Sites = *flagSites
	}
	if *flagWater >= 0 {
		cfg.Terrain.WaterLevel = uint32(*flagWater)
	}
	if *flagSVG != "" {
		cfg.Output.SVGPath = *flagSVG
	}
}
