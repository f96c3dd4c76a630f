package cpom

import (
	"bytes"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/vdedun/cpom/mesh"
)

func TestWriteSVGProducesValidDocument(t *testing.T) {
	verts, faceIdx := gridMeshPoints(8)
	engine, err := Construct(mesh.FromPoints(verts, faceIdx))
	test.That(t, err, test.ShouldBeNil)

	var buf bytes.Buffer
	engine.WriteSVG(&buf, 400, 400, 20)

	out := buf.String()
	test.That(t, strings.Contains(out, "<svg"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "</svg>"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "polygon"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "rect"), test.ShouldBeTrue)
}

func TestWriteSVGWithoutIndexStillRendersFaces(t *testing.T) {
	engine, err := Construct(singleTriangleProvider())
	test.That(t, err, test.ShouldBeNil)

	var buf bytes.Buffer
	engine.WriteSVG(&buf, 200, 200, 50)

	out := buf.String()
	test.That(t, strings.Contains(out, "polygon"), test.ShouldBeTrue)
	test.That(t, strings.Contains(out, "rect"), test.ShouldBeFalse)
}
