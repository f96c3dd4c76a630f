package cpom

import (
	"io"

	"github.com/ajstarks/svgo"

	"github.com/vdedun/cpom/mesh"
	"github.com/vdedun/cpom/octree"
	"github.com/vdedun/cpom/spatial"
)

// WriteSVG renders an XY projection of the engine's mesh triangles with the
// octree's leaf boxes overlaid, to w. It is a development aid for
// inspecting index quality (leaf fill, depth skew); it performs no I/O
// beyond w, never runs on the query hot path, and has no effect on query
// results. scale maps mesh units to SVG pixels.
func (e *Engine) WriteSVG(w io.Writer, width, height int, scale float32) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	ox, oy := float32(width)/2, float32(height)/2

	project := func(p spatial.Point) (int, int) {
		return int(ox + p[0]*scale), int(oy - p[1]*scale)
	}

	for _, f := range e.faces {
		xs := make([]int, len(f.VertexIDs))
		ys := make([]int, len(f.VertexIDs))
		for i, id := range f.VertexIDs {
			xs[i], ys[i] = project(e.vertices[id])
		}
		canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:1")
	}

	if e.tree != nil {
		writeLeafBoxes(canvas, e.tree.Root(), project, scale)
	}
}

// writeLeafBoxes recurses into node, drawing a rect for each leaf's
// bounding cube's XY projection.
func writeLeafBoxes(canvas *svg.SVG, node *octree.Node[mesh.FaceElement], project func(spatial.Point) (int, int), scale float32) {
	if node.IsLeaf() {
		bounds := node.Bounds()
		minCorner := spatial.Point{bounds.Center[0] - bounds.HalfWidth, bounds.Center[1] - bounds.HalfWidth, bounds.Center[2]}
		x, y := project(minCorner)
		side := int(2 * bounds.HalfWidth * scale)
		canvas.Rect(x, y-side, side, side, "fill:none;stroke:#4488ff;stroke-width:0.5")
		return
	}
	node.VisitChildren(func(child *octree.Node[mesh.FaceElement]) {
		writeLeafBoxes(canvas, child, project, scale)
	})
}
