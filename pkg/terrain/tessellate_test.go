package terrain

import (
	"testing"

	"github.com/orglofch/vortera/pkg/math"
)

func unitSquareSites() []math.Vec2 {
	return []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
}

// Golden scenario: 4 sites in a unit square, clipped to a box that
// contains them. The diagram is a cross through (0.5, 0.5): each cell
// is an axis-aligned rectangle with 4 corners, the box contributes its
// 4 corners and the 4 border crossings, and the center vertex is
// shared by all cells.
func TestFortuneTessellator_Decompose_UnitSquare(t *testing.T) {
	tess := &FortuneTessellator{MinX: -1, MaxX: 2, MinY: -1, MaxY: 2}
	dec, err := tess.Decompose(unitSquareSites())
	if err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}

	if got, want := len(dec.Vertices), 9; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := len(dec.Cells), 4; got != want {
		t.Fatalf("cells = %d, want %d", got, want)
	}
	for i, cell := range dec.Cells {
		if len(cell) != 4 {
			t.Errorf("cell %d has %d vertices, want 4", i, len(cell))
		}
	}

	if err := validateWinding(dec); err != nil {
		t.Errorf("validateWinding() error: %v", err)
	}

	// The shared center vertex must resolve to a single index.
	center := -1
	for i, v := range dec.Vertices {
		if v.Distance(math.Vec2{X: 0.5, Y: 0.5}) < 1e-9 {
			center = i
			break
		}
	}
	if center < 0 {
		t.Fatal("center vertex (0.5, 0.5) not present")
	}
	for i, cell := range dec.Cells {
		found := false
		for _, vi := range cell {
			if vi == center {
				found = true
			}
		}
		if !found {
			t.Errorf("cell %d does not reference the shared center vertex", i)
		}
	}
}

func TestFortuneTessellator_Decompose_CellOrderMatchesSites(t *testing.T) {
	sites := unitSquareSites()
	tess := &FortuneTessellator{MinX: -1, MaxX: 2, MinY: -1, MaxY: 2}
	dec, err := tess.Decompose(sites)
	if err != nil {
		t.Fatalf("Decompose() error: %v", err)
	}

	// Each site must lie inside its own cell.
	for i, site := range sites {
		if !pointInCell(dec, i, site) {
			t.Errorf("site %d %v not inside cell %d", i, site, i)
		}
	}
}

func TestFortuneTessellator_Decompose_SiteOutOfBounds(t *testing.T) {
	tess := &FortuneTessellator{MinX: -1, MaxX: 2, MinY: -1, MaxY: 2}
	_, err := tess.Decompose([]math.Vec2{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 1}})
	if err == nil {
		t.Fatal("Decompose() = nil error for out-of-bounds site")
	}
}

func TestBuilder_Build_UnitSquareGolden(t *testing.T) {
	terrain, err := NewBuilder().
		SetSeed(7).
		SetSites(unitSquareSites()).
		SetTessellator(&FortuneTessellator{MinX: -1, MaxX: 2, MinY: -1, MaxY: 2}).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// 16 boundary traversals, 4 of them shared: 12 unique terrain
	// edges and 4 adjacency edges (diagonal cells meet only at the
	// center point, which is not an adjacency).
	if got, want := len(terrain.TerrainGraph.Vertices), 9; got != want {
		t.Errorf("terrain vertices = %d, want %d", got, want)
	}
	if got, want := len(terrain.TerrainGraph.Edges), 12; got != want {
		t.Errorf("terrain edges = %d, want %d", got, want)
	}
	if got, want := len(terrain.RegionGraph.Vertices), 4; got != want {
		t.Errorf("regions = %d, want %d", got, want)
	}
	if got, want := len(terrain.RegionGraph.Edges), 4; got != want {
		t.Errorf("region edges = %d, want %d", got, want)
	}

	if err := terrain.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	want := map[[2]int]bool{
		{0, 1}: true, // left pair
		{0, 2}: true,
		{1, 3}: true,
		{2, 3}: true,
	}
	for _, e := range terrain.RegionGraph.Edges {
		a, b := e[0], e[1]
		if a > b {
			a, b = b, a
		}
		if !want[[2]int{a, b}] {
			t.Errorf("unexpected region adjacency %v", e)
		}
		delete(want, [2]int{a, b})
	}
	for pair := range want {
		t.Errorf("missing region adjacency %v", pair)
	}
}

// pointInCell tests containment with a winding-agnostic ray cast.
func pointInCell(dec *Decomposition, cell int, p math.Vec2) bool {
	inside := false
	indices := dec.Cells[cell]
	for i := range indices {
		a := dec.Vertices[indices[i]]
		b := dec.Vertices[indices[(i+1)%len(indices)]]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
