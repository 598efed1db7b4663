// Package terrain builds a procedurally generated 3D terrain topology
// from a set of 2D sample points. The plane is partitioned into Voronoi
// regions, a height field is synthesized over the decomposition's
// vertices, and the result is exposed as two linked graphs: a
// vertex-level terrain graph (the tessellation mesh) and a cell-level
// region graph (adjacency between regions).
//
// Both graphs use integer indices rather than pointers for all
// cross-references, so the structures contain no cycles and copy by
// value cleanly.
package terrain

import (
	"fmt"

	"github.com/orglofch/vortera/pkg/math"
)

// Graph is an ordered sequence of vertices plus an ordered sequence of
// undirected edges, each edge a pair of indices into the vertex
// sequence.
type Graph[T any] struct {
	Vertices []T
	Edges    [][2]int
}

// TerrainVertex is one vertex of the tessellation mesh.
type TerrainVertex struct {
	Position math.Vec3
	Normal   math.Vec3

	// Edges holds indices into the terrain graph's edge list for the
	// edges incident to this vertex.
	Edges []int
}

// Region is one cell of the decomposition.
type Region struct {
	Center math.Vec3
	Normal math.Vec3

	// Edges holds indices into the region graph's edge list for the
	// adjacency edges touching this region.
	Edges []int
}

// VoronoiTerrain is the finished artifact. It is immutable after
// construction; consumers read the graphs and the water level directly.
//
// The terrain graph and region graph are topologically dual except at
// the tessellation's exterior boundary: every interior terrain edge
// corresponds to exactly one region-adjacency edge, and exterior
// terrain edges have none.
type VoronoiTerrain struct {
	TerrainGraph Graph[TerrainVertex]
	RegionGraph  Graph[Region]
	WaterLevel   uint32
}

// Validate checks that every index stored in the terrain is a valid
// index into its corresponding sequence. A terrain produced by Build
// always validates; the method exists so consumers of hand-assembled
// or deserialized terrains can check them.
func (t *VoronoiTerrain) Validate() error {
	if err := validateGraph(&t.TerrainGraph, func(v *TerrainVertex) []int { return v.Edges }); err != nil {
		return fmt.Errorf("terrain graph: %w", err)
	}
	if err := validateGraph(&t.RegionGraph, func(r *Region) []int { return r.Edges }); err != nil {
		return fmt.Errorf("region graph: %w", err)
	}
	return nil
}

func validateGraph[T any](g *Graph[T], edgeRefs func(*T) []int) error {
	for i, e := range g.Edges {
		if e[0] < 0 || e[0] >= len(g.Vertices) || e[1] < 0 || e[1] >= len(g.Vertices) {
			return fmt.Errorf("edge %d references vertex out of range: %v", i, e)
		}
	}
	for i := range g.Vertices {
		for _, ei := range edgeRefs(&g.Vertices[i]) {
			if ei < 0 || ei >= len(g.Edges) {
				return fmt.Errorf("vertex %d references edge out of range: %d", i, ei)
			}
		}
	}
	return nil
}
