package terrain

import "fmt"

// edgeTopology holds the deduplicated edge structure derived from a
// decomposition's cells.
type edgeTopology struct {
	// terrainEdges is the deduplicated undirected edge list of the
	// tessellation mesh. Each edge is stored once, in whichever
	// direction it was first encountered.
	terrainEdges [][2]int

	// regionEdges is the undirected adjacency edge list between cell
	// indices. One entry per interior boundary shared by two cells.
	regionEdges [][2]int

	// edgesByVertex maps each vertex index to the terrain-edge indices
	// incident to it.
	edgesByVertex [][]int
}

// directedEdge is a traversal of a cell boundary from one vertex to the
// next in winding order.
type directedEdge struct {
	from, to int
}

// edgeRecord remembers which terrain edge a directed traversal was
// assigned and which region produced it.
type edgeRecord struct {
	edgeIndex int
	region    int
}

// buildEdgeTopology walks every cell's boundary in winding order and
// deduplicates shared edges via reverse-direction lookup: because all
// cells are wound the same way, the two cells sharing a boundary
// traverse it in opposite directions. Seeing a traversal whose reverse
// is already recorded therefore identifies an interior edge and the
// pair of adjacent regions, with no geometric comparison.
//
// Traversals on the decomposition's exterior boundary never see their
// reverse; those become terrain edges with no region-adjacency edge.
func buildEdgeTopology(dec *Decomposition) (*edgeTopology, error) {
	// The average Voronoi cell has fewer than 6 edges and each
	// interior edge is shared between 2 cells.
	topo := &edgeTopology{
		terrainEdges:  make([][2]int, 0, len(dec.Vertices)*2),
		regionEdges:   make([][2]int, 0, len(dec.Vertices)*2),
		edgesByVertex: make([][]int, len(dec.Vertices)),
	}
	seen := make(map[directedEdge]edgeRecord, len(dec.Vertices)*2)

	for region, cell := range dec.Cells {
		for i, current := range cell {
			next := cell[(i+1)%len(cell)]
			if current == next {
				return nil, fmt.Errorf("%w: cell %d repeats vertex %d consecutively",
					ErrTopologyInconsistency, region, current)
			}

			forward := directedEdge{current, next}
			if prior, ok := seen[forward]; ok {
				// The same direction twice means two cells traverse
				// this boundary the same way: inconsistent winding.
				return nil, fmt.Errorf("%w: edge (%d,%d) traversed twice in the same direction by regions %d and %d",
					ErrTopologyInconsistency, current, next, prior.region, region)
			}

			var edgeIndex int
			if rec, ok := seen[directedEdge{next, current}]; ok {
				// Interior boundary: the reverse traversal was already
				// recorded by the neighboring region. Reuse its terrain
				// edge and record the adjacency.
				topo.regionEdges = append(topo.regionEdges, [2]int{region, rec.region})
				edgeIndex = rec.edgeIndex
				// Record the consumed direction so a third traversal of
				// this boundary is caught as a duplicate.
				seen[forward] = edgeRecord{edgeIndex: edgeIndex, region: region}
			} else {
				edgeIndex = len(topo.terrainEdges)
				topo.terrainEdges = append(topo.terrainEdges, [2]int{current, next})
				seen[forward] = edgeRecord{edgeIndex: edgeIndex, region: region}
			}

			topo.edgesByVertex[current] = append(topo.edgesByVertex[current], edgeIndex)
		}
	}

	return topo, nil
}
