package terrain

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/orglofch/vortera/pkg/math"
	"github.com/orglofch/vortera/pkg/noise"
)

// Builder collects configuration and assembles a VoronoiTerrain. The
// zero value is not usable; create builders with NewBuilder.
//
// A builder owns its configuration and shares no mutable state with
// other builders, so independent builds may run concurrently.
type Builder struct {
	seed        int64
	waterLevel  uint32
	heightScale uint32
	sites       []math.Vec2
	tess        Tessellator
	sampler     noise.Sampler
	log         *zap.Logger
}

// NewBuilder returns a builder with a random seed, water level 50 and
// height scale 100.
func NewBuilder() *Builder {
	return &Builder{
		// The process-global source is internally locked, so
		// concurrent default-seeded builds stay race-free.
		seed:        rand.Int63(),
		waterLevel:  50,
		heightScale: 100,
		log:         zap.NewNop(),
	}
}

// SetSeed sets the seed for the default height sampler.
func (b *Builder) SetSeed(seed int64) *Builder {
	b.seed = seed
	return b
}

// SetSites sets the 2D sample points the decomposition is generated
// from. At least 3 duplicate-free sites are required.
func (b *Builder) SetSites(sites []math.Vec2) *Builder {
	b.sites = sites
	return b
}

// SetWaterLevel sets the water-level threshold carried on the result.
// The threshold is not used during construction; consumers compare
// vertex heights against it.
func (b *Builder) SetWaterLevel(waterLevel uint32) *Builder {
	b.waterLevel = waterLevel
	return b
}

// SetHeightScale sets the multiplier applied to sampled heights.
func (b *Builder) SetHeightScale(heightScale uint32) *Builder {
	b.heightScale = heightScale
	return b
}

// SetTessellator overrides the decomposition engine. The default is a
// bounded Fortune's-algorithm tessellator.
func (b *Builder) SetTessellator(tess Tessellator) *Builder {
	b.tess = tess
	return b
}

// SetSampler overrides the height sampler. The default is seeded
// fractal Perlin noise.
func (b *Builder) SetSampler(sampler noise.Sampler) *Builder {
	b.sampler = sampler
	return b
}

// SetLogger attaches a logger for build diagnostics.
func (b *Builder) SetLogger(log *zap.Logger) *Builder {
	if log != nil {
		b.log = log
	}
	return b
}

// Build runs the pipeline: validate sites, decompose the plane, derive
// the deduplicated edge topology, synthesize heights and normals, and
// assemble the two graphs. It is pure and synchronous; either a fully
// consistent terrain is returned or an error wrapping one of
// ErrInvalidInput, ErrTopologyInconsistency or ErrDependencyFailure.
// There is no partial result.
func (b *Builder) Build() (*VoronoiTerrain, error) {
	if err := validateSites(b.sites); err != nil {
		return nil, err
	}

	tess := b.tess
	if tess == nil {
		tess = NewFortuneTessellator()
	}
	sampler := b.sampler
	if sampler == nil {
		sampler = noise.NewFBM(noise.NewPerlin(b.seed), noise.DefaultParams())
	}

	dec, err := tess.Decompose(b.sites)
	if err != nil {
		return nil, fmt.Errorf("%w: tessellation: %v", ErrDependencyFailure, err)
	}
	if err := validateWinding(dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTopologyInconsistency, err)
	}

	topo, err := buildEdgeTopology(dec)
	if err != nil {
		return nil, err
	}

	vertices, err := synthesizeVertices(dec, topo, sampler, b.heightScale)
	if err != nil {
		return nil, err
	}
	regions := buildRegions(dec, topo, vertices)
	accumulateVertexNormals(dec, vertices, regions)

	b.log.Debug("terrain built",
		zap.Int("sites", len(b.sites)),
		zap.Int("vertices", len(vertices)),
		zap.Int("terrain_edges", len(topo.terrainEdges)),
		zap.Int("regions", len(regions)),
		zap.Int("region_edges", len(topo.regionEdges)))

	return &VoronoiTerrain{
		TerrainGraph: Graph[TerrainVertex]{Vertices: vertices, Edges: topo.terrainEdges},
		RegionGraph:  Graph[Region]{Vertices: regions, Edges: topo.regionEdges},
		WaterLevel:   b.waterLevel,
	}, nil
}

// validateSites rejects degenerate input before the tessellation
// capability is invoked.
func validateSites(sites []math.Vec2) error {
	if len(sites) < 3 {
		return fmt.Errorf("%w: need at least 3 sites, got %d", ErrInvalidInput, len(sites))
	}
	seen := make(map[math.Vec2]int, len(sites))
	for i, s := range sites {
		if prior, ok := seen[s]; ok {
			return fmt.Errorf("%w: duplicate site %v at indices %d and %d", ErrInvalidInput, s, prior, i)
		}
		seen[s] = i
	}
	return nil
}
