package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/orglofch/vortera/pkg/math"
	"github.com/orglofch/vortera/pkg/terrain"
)

func testTerrain() *terrain.VoronoiTerrain {
	return &terrain.VoronoiTerrain{
		TerrainGraph: terrain.Graph[terrain.TerrainVertex]{
			Vertices: []terrain.TerrainVertex{
				{Position: math.Vec3{X: 0, Y: 0, Z: -10}},
				{Position: math.Vec3{X: 10, Y: 0, Z: 80}},
				{Position: math.Vec3{X: 0, Y: 10, Z: 20}},
			},
			Edges: [][2]int{{0, 1}, {1, 2}, {2, 0}},
		},
		WaterLevel: 50,
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, testTerrain(), 100, 100)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if got := strings.Count(out, "<line"); got != 3 {
		t.Errorf("line count = %d, want 3", got)
	}
	if got := strings.Count(out, "<circle"); got != 3 {
		t.Errorf("circle count = %d, want 3", got)
	}
	// Two vertices are below water level 50.
	if got := strings.Count(out, submergedStyle); got != 2 {
		t.Errorf("submerged vertices = %d, want 2", got)
	}
}

func TestWriteSVG_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, &terrain.VoronoiTerrain{}, 100, 100)

	if !strings.Contains(buf.String(), "</svg>") {
		t.Fatal("empty terrain did not produce a closed SVG document")
	}
}
