// Package render writes debug renderings of a built terrain.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/orglofch/vortera/pkg/terrain"
)

const (
	edgeStyle      = "stroke:rgb(170,170,170);stroke-width:1"
	landStyle      = "fill:rgb(90,140,70)"
	submergedStyle = "fill:rgb(60,90,200)"
)

// WriteSVG renders the terrain graph to w as an SVG: one line per
// terrain edge and one dot per vertex, colored by whether the vertex
// height is below the water level.
func WriteSVG(w io.Writer, t *terrain.VoronoiTerrain, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	project := projector(t, width, height)

	for _, e := range t.TerrainGraph.Edges {
		x1, y1 := project(t.TerrainGraph.Vertices[e[0]])
		x2, y2 := project(t.TerrainGraph.Vertices[e[1]])
		canvas.Line(x1, y1, x2, y2, edgeStyle)
	}

	water := float64(t.WaterLevel)
	for i := range t.TerrainGraph.Vertices {
		v := &t.TerrainGraph.Vertices[i]
		x, y := project(*v)
		style := landStyle
		if v.Position.Z < water {
			style = submergedStyle
		}
		canvas.Circle(x, y, 2, style)
	}

	canvas.End()
}

// projector maps terrain XY coordinates onto the canvas, preserving
// aspect ratio with a small margin.
func projector(t *terrain.VoronoiTerrain, width, height int) func(terrain.TerrainVertex) (int, int) {
	const margin = 10

	vertices := t.TerrainGraph.Vertices
	if len(vertices) == 0 {
		return func(terrain.TerrainVertex) (int, int) { return 0, 0 }
	}

	minX, maxX := vertices[0].Position.X, vertices[0].Position.X
	minY, maxY := vertices[0].Position.Y, vertices[0].Position.Y
	for _, v := range vertices[1:] {
		minX = min(minX, v.Position.X)
		maxX = max(maxX, v.Position.X)
		minY = min(minY, v.Position.Y)
		maxY = max(maxY, v.Position.Y)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	scale := min(float64(width-2*margin)/spanX, float64(height-2*margin)/spanY)

	return func(v terrain.TerrainVertex) (int, int) {
		x := margin + int((v.Position.X-minX)*scale)
		y := margin + int((maxY-v.Position.Y)*scale) // flip Y for screen space
		return x, y
	}
}
