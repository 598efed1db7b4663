package terrain

import (
	"testing"

	"github.com/orglofch/vortera/pkg/math"
)

func TestVoronoiTerrain_Validate_DanglingEdge(t *testing.T) {
	terrain := &VoronoiTerrain{
		TerrainGraph: Graph[TerrainVertex]{
			Vertices: []TerrainVertex{{Position: math.Vec3{}}, {Position: math.Vec3{X: 1}}},
			Edges:    [][2]int{{0, 2}},
		},
	}
	if err := terrain.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for edge referencing missing vertex")
	}
}

func TestVoronoiTerrain_Validate_DanglingVertexEdgeRef(t *testing.T) {
	terrain := &VoronoiTerrain{
		TerrainGraph: Graph[TerrainVertex]{
			Vertices: []TerrainVertex{
				{Edges: []int{0}},
				{Edges: []int{1}}, // no edge 1
			},
			Edges: [][2]int{{0, 1}},
		},
	}
	if err := terrain.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for vertex referencing missing edge")
	}
}

func TestVoronoiTerrain_Validate_BadRegionGraph(t *testing.T) {
	terrain := &VoronoiTerrain{
		RegionGraph: Graph[Region]{
			Vertices: []Region{{Edges: []int{5}}},
		},
	}
	if err := terrain.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for region referencing missing edge")
	}
}

func TestVoronoiTerrain_Validate_Empty(t *testing.T) {
	terrain := &VoronoiTerrain{}
	if err := terrain.Validate(); err != nil {
		t.Fatalf("Validate() error on empty terrain: %v", err)
	}
}
