package terrain

import (
	"fmt"
	stdmath "math"

	"github.com/orglofch/vortera/pkg/math"
	"github.com/orglofch/vortera/pkg/noise"
)

// synthesizeVertices lifts the decomposition's 2D vertices into 3D by
// sampling the height field, and attaches each vertex's incident-edge
// indices. Normals start at zero; they are accumulated later from the
// region face normals.
func synthesizeVertices(dec *Decomposition, topo *edgeTopology, sampler noise.Sampler, heightScale uint32) ([]TerrainVertex, error) {
	vertices := make([]TerrainVertex, len(dec.Vertices))
	for i, v := range dec.Vertices {
		h := sampler.Sample(v.X, v.Y)
		if stdmath.IsNaN(h) || stdmath.IsInf(h, 0) {
			return nil, fmt.Errorf("%w: height sampler returned %v at (%v, %v)",
				ErrDependencyFailure, h, v.X, v.Y)
		}
		vertices[i] = TerrainVertex{
			Position: math.Vec3{X: v.X, Y: v.Y, Z: h * float64(heightScale)},
			Edges:    topo.edgesByVertex[i],
		}
	}
	return vertices, nil
}

// buildRegions creates one region per cell: a face normal from the
// cell's first three vertices, the centroid of its 3D vertex positions,
// and the indices of its adjacency edges.
//
// The face normal is exact only for planar cells; height displacement
// makes cells with more than 3 vertices slightly non-planar, so it is
// an approximation.
func buildRegions(dec *Decomposition, topo *edgeTopology, vertices []TerrainVertex) []Region {
	regions := make([]Region, len(dec.Cells))
	for i, cell := range dec.Cells {
		p0 := vertices[cell[0]].Position
		e1 := vertices[cell[1]].Position.Sub(p0)
		e2 := vertices[cell[2]].Position.Sub(p0)

		var center math.Vec3
		for _, vi := range cell {
			center = center.Add(vertices[vi].Position)
		}

		regions[i] = Region{
			Center: center.Scale(1 / float64(len(cell))),
			Normal: e1.Cross(e2).Normalize(),
		}
	}
	for ei, e := range topo.regionEdges {
		regions[e[0]].Edges = append(regions[e[0]].Edges, ei)
		regions[e[1]].Edges = append(regions[e[1]].Edges, ei)
	}
	return regions
}

// accumulateVertexNormals averages the face normals of the regions
// touching each vertex. Vertices touched by no region keep a zero
// normal.
func accumulateVertexNormals(dec *Decomposition, vertices []TerrainVertex, regions []Region) {
	for ri, cell := range dec.Cells {
		for _, vi := range cell {
			vertices[vi].Normal = vertices[vi].Normal.Add(regions[ri].Normal)
		}
	}
	for i := range vertices {
		vertices[i].Normal = vertices[i].Normal.Normalize()
	}
}
