// Package main is the entry point for the terragen terrain generator.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"go.uber.org/zap"

	"github.com/orglofch/vortera/internal/config"
	"github.com/orglofch/vortera/internal/logger"
	"github.com/orglofch/vortera/internal/render"
	"github.com/orglofch/vortera/pkg/math"
	"github.com/orglofch/vortera/pkg/noise"
	"github.com/orglofch/vortera/pkg/terrain"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	logger.Info("generating terrain",
		zap.Int64("seed", seed),
		zap.Int("sites", cfg.Terrain.Sites),
		zap.Float64("extent", cfg.Terrain.Extent))

	sites := scatterSites(cfg.Terrain.Sites, cfg.Terrain.Extent, seed)

	built, err := terrain.NewBuilder().
		SetSeed(seed).
		SetSites(sites).
		SetWaterLevel(cfg.Terrain.WaterLevel).
		SetHeightScale(cfg.Terrain.HeightScale).
		SetSampler(samplerFromConfig(cfg.Noise, seed)).
		SetLogger(logger.Log).
		Build()
	if err != nil {
		logger.Error("terrain build failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("terrain built",
		zap.Int("vertices", len(built.TerrainGraph.Vertices)),
		zap.Int("terrain_edges", len(built.TerrainGraph.Edges)),
		zap.Int("regions", len(built.RegionGraph.Vertices)),
		zap.Int("region_edges", len(built.RegionGraph.Edges)),
		zap.Uint32("water_level", built.WaterLevel))

	if cfg.Output.SVGPath != "" {
		if err := writeSVG(cfg.Output.SVGPath, built, cfg.Output.Width, cfg.Output.Height); err != nil {
			logger.Error("svg export failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("svg written", zap.String("path", cfg.Output.SVGPath))
	}
}

// scatterSites places n random sample points in [0, extent)^2. The
// generator is seeded so runs with the same seed reproduce the same
// terrain exactly.
func scatterSites(n int, extent float64, seed int64) []math.Vec2 {
	rng := rand.New(rand.NewSource(seed))
	sites := make([]math.Vec2, n)
	for i := range sites {
		sites[i] = math.Vec2{X: rng.Float64() * extent, Y: rng.Float64() * extent}
	}
	return sites
}

func samplerFromConfig(cfg config.NoiseConfig, seed int64) noise.Sampler {
	params := noise.Params{
		Octaves:     cfg.Octaves,
		Frequency:   cfg.Frequency,
		Amplitude:   1.0,
		Persistence: cfg.Persistence,
		Lacunarity:  cfg.Lacunarity,
	}

	var base noise.Sampler
	switch cfg.Backend {
	case "simplex":
		base = noise.NewSimplex(seed)
	default:
		base = noise.NewPerlin(seed)
	}
	return noise.NewFBM(base, params)
}

func writeSVG(path string, t *terrain.VoronoiTerrain, width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	render.WriteSVG(file, t, width, height)
	return nil
}
