package terrain

import (
	"fmt"

	"github.com/pzsz/voronoi"

	"github.com/orglofch/vortera/pkg/math"
)

// Decomposition is a Voronoi-style partition of the plane: a list of
// unique vertex positions plus one cell per input site, each cell an
// ordered, winding-consistent sequence of indices into Vertices. Cell i
// corresponds to site i of the input.
type Decomposition struct {
	Vertices []math.Vec2
	Cells    [][]int
}

// Tessellator turns a site list into a Decomposition. Implementations
// must list every cell's vertices in a consistent winding order (all
// cells wound the same direction) with at least 3 vertices per cell.
// The builder verifies the winding contract before using the result.
type Tessellator interface {
	Decompose(sites []math.Vec2) (*Decomposition, error)
}

// FortuneTessellator computes the decomposition with Fortune's sweep
// line algorithm, clipping cells to a bounding box. Cells touching the
// box are closed along its border, so exterior cells are finite
// polygons rather than unbounded regions.
type FortuneTessellator struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewFortuneTessellator returns a tessellator with a bounding box large
// enough for most site sets centered near the origin.
func NewFortuneTessellator() *FortuneTessellator {
	return &FortuneTessellator{MinX: -9999, MaxX: 9999, MinY: -9999, MaxY: 9999}
}

// Decompose runs the sweep and converts the resulting diagram into an
// indexed decomposition. Vertices shared between adjacent cells are
// deduplicated, so shared boundaries reference identical indices.
func (t *FortuneTessellator) Decompose(sites []math.Vec2) (*Decomposition, error) {
	for _, s := range sites {
		if s.X <= t.MinX || s.X >= t.MaxX || s.Y <= t.MinY || s.Y >= t.MaxY {
			return nil, fmt.Errorf("site %v outside tessellation bounds [%v,%v]x[%v,%v]",
				s, t.MinX, t.MaxX, t.MinY, t.MaxY)
		}
	}

	input := make([]voronoi.Vertex, len(sites))
	for i, s := range sites {
		input[i] = voronoi.Vertex{X: s.X, Y: s.Y}
	}

	bbox := voronoi.NewBBox(t.MinX, t.MaxX, t.MinY, t.MaxY)
	diagram := voronoi.ComputeDiagram(input, bbox, true)

	// Diagram cells are not guaranteed to be in input order; map them
	// back by site so cell i always corresponds to site i.
	cellBySite := make(map[voronoi.Vertex]*voronoi.Cell, len(diagram.Cells))
	for _, cell := range diagram.Cells {
		cellBySite[cell.Site] = cell
	}

	dec := &Decomposition{Cells: make([][]int, len(sites))}
	indexByVertex := make(map[voronoi.Vertex]int)

	for i, site := range input {
		cell, ok := cellBySite[site]
		if !ok {
			return nil, fmt.Errorf("no cell produced for site %v", sites[i])
		}
		if len(cell.Halfedges) < 3 {
			return nil, fmt.Errorf("degenerate cell with %d edges for site %v", len(cell.Halfedges), sites[i])
		}

		indices := make([]int, 0, len(cell.Halfedges))
		for _, he := range cell.Halfedges {
			start := he.GetStartpoint()
			vi, seen := indexByVertex[start]
			if !seen {
				vi = len(dec.Vertices)
				indexByVertex[start] = vi
				dec.Vertices = append(dec.Vertices, math.Vec2{X: start.X, Y: start.Y})
			}
			indices = append(indices, vi)
		}
		dec.Cells[i] = indices
	}

	return dec, nil
}

// validateWinding checks that every cell has a strictly nonzero signed
// area and that all cells share the same orientation. Edge
// deduplication relies on this: a shared boundary must be traversed in
// opposite directions by its two neighboring cells.
func validateWinding(dec *Decomposition) error {
	direction := 0
	for ci, cell := range dec.Cells {
		if len(cell) < 3 {
			return fmt.Errorf("cell %d has %d vertices, need at least 3", ci, len(cell))
		}
		var area float64
		for i, vi := range cell {
			if vi < 0 || vi >= len(dec.Vertices) {
				return fmt.Errorf("cell %d references vertex out of range: %d", ci, vi)
			}
			next := dec.Vertices[cell[(i+1)%len(cell)]]
			area += dec.Vertices[vi].Cross(next)
		}
		switch {
		case area == 0:
			return fmt.Errorf("cell %d has zero signed area", ci)
		case area > 0:
			if direction < 0 {
				return fmt.Errorf("cell %d wound opposite to cell 0", ci)
			}
			direction = 1
		default:
			if direction > 0 {
				return fmt.Errorf("cell %d wound opposite to cell 0", ci)
			}
			direction = -1
		}
	}
	return nil
}
