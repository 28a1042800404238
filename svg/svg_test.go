// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svgmorph/svgmorph/base/fsx"
	"github.com/svgmorph/svgmorph/base/tolassert"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="100mm" height="100mm" viewBox="0 0 100 100" id="svg1" xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
  <sodipodi:namedview id="nv" inkscape:zoom="1"/>
  <g id="layer1" inkscape:groupmode="layer">
    <path id="p1" d="M0,0C10,0,10,10,0,10Z"/>
    <rect id="r1" x="5" y="5" width="10" height="20"/>
  </g>
</svg>
`

func TestReadXML(t *testing.T) {
	sv := NewSVG()
	err := sv.ReadXML(strings.NewReader(testDoc))
	require.NoError(t, err)

	assert.Equal(t, "svg1", sv.Root.Name)
	assert.Equal(t, "100mm", sv.PhysicalWidth)
	assert.Equal(t, "100mm", sv.PhysicalHeight)
	assert.True(t, sv.Root.ViewBox.HasViewBox())
	tolassert.Equal(t, 100, sv.Root.ViewBox.Size.X)

	nv := sv.NodeByID("nv")
	require.NotNil(t, nv)
	gen, ok := nv.(*Generic)
	require.True(t, ok)
	assert.Equal(t, "sodipodi:namedview", gen.Tag)
	assert.Equal(t, "1", gen.Property("inkscape:zoom"))

	p1 := sv.NodeByID("p1")
	require.NotNil(t, p1)
	path, ok := p1.(*Path)
	require.True(t, ok)
	assert.Equal(t, 3, path.Data.Len())

	r1 := sv.NodeByID("r1")
	require.NotNil(t, r1)
	rect, ok := r1.(*Rect)
	require.True(t, ok)
	tolassert.Equal(t, 5, rect.Pos.X)
	tolassert.Equal(t, 20, rect.Size.Y)

	assert.Nil(t, sv.NodeByID("nosuch"))
}

func TestWriteXML(t *testing.T) {
	sv := NewSVG()
	err := sv.ReadXML(strings.NewReader(testDoc))
	require.NoError(t, err)

	var b bytes.Buffer
	err = sv.WriteXML(&b, true)
	require.NoError(t, err)

	expect := `<svg id="svg1" width="100mm" height="100mm" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
  <sodipodi:namedview id="nv" inkscape:zoom="1" />
  <g id="layer1" inkscape:groupmode="layer">
    <path id="p1" d="M0,0C10,0,10,10,0,10Z" />
    <rect id="r1" x="5" y="5" width="10" height="20" />
  </g>
</svg>`
	assert.Equal(t, expect, b.String())
}

func TestRoundTripStable(t *testing.T) {
	sv := NewSVG()
	err := sv.ReadXML(strings.NewReader(testDoc))
	require.NoError(t, err)
	var b1 bytes.Buffer
	require.NoError(t, sv.WriteXML(&b1, true))

	sv2 := NewSVG()
	require.NoError(t, sv2.ReadXML(bytes.NewReader(b1.Bytes())))
	var b2 bytes.Buffer
	require.NoError(t, sv2.WriteXML(&b2, true))

	assert.Equal(t, b1.String(), b2.String())
}

func TestReadText(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg"><text x="5" y="10" id="t1">hello</text></svg>`
	sv := NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))
	n := sv.NodeByID("t1")
	require.NotNil(t, n)
	txt, ok := n.(*Text)
	require.True(t, ok)
	assert.Equal(t, "hello", txt.Text)
	tolassert.Equal(t, 5, txt.Pos.X)
	tolassert.Equal(t, 10, txt.Pos.Y)
}

func TestReadShapes(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <circle id="c" cx="10" cy="10" r="5"/>
  <ellipse id="e" cx="10" cy="10" rx="5" ry="3"/>
  <line id="l" x1="0" y1="0" x2="10" y2="10"/>
  <polygon id="pg" points="0,0 10,0 10,10"/>
  <polyline id="pl" points="0,0 10,0 10,10"/>
</svg>`
	sv := NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))

	c := sv.NodeByID("c").(*Circle)
	tolassert.Equal(t, 5, c.Radius)
	assert.False(t, c.PathData().Empty())

	e := sv.NodeByID("e").(*Ellipse)
	tolassert.Equal(t, 3, e.Radii.Y)
	assert.False(t, e.PathData().Empty())

	l := sv.NodeByID("l").(*Line)
	tolassert.Equal(t, 10, l.End.X)
	assert.False(t, l.PathData().Empty())

	pg := sv.NodeByID("pg").(*Polygon)
	assert.Equal(t, 3, len(pg.Points))
	assert.True(t, pg.PathData().Closed())

	pl := sv.NodeByID("pl").(*Polyline)
	assert.Equal(t, 3, len(pl.Points))
	assert.False(t, pl.PathData().Closed())
}

func TestDefs(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <defs id="defs2">
    <rect id="dr" x="0" y="0" width="1" height="1"/>
  </defs>
  <g id="layer1"/>
</svg>`
	sv := NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))
	assert.Equal(t, 1, len(sv.Defs.Children))
	assert.NotNil(t, sv.NodeByID("dr"))
	assert.Equal(t, "defs2", sv.Defs.Name)

	var b bytes.Buffer
	require.NoError(t, sv.WriteXML(&b, true))
	assert.Contains(t, b.String(), "<defs id=\"defs2\">")
}

func TestNodeTransform(t *testing.T) {
	g := NewGroup(nil)
	g.SetProperty("transform", "translate(10,20)")
	m := g.Transform()
	tolassert.Equal(t, 10, m.X0)
	tolassert.Equal(t, 20, m.Y0)
}

func TestFirstNonGroupNode(t *testing.T) {
	sv := NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(testDoc)))
	n := FirstNonGroupNode(sv.NodeByID("layer1"))
	require.NotNil(t, n)
	assert.Equal(t, "p1", n.AsNodeBase().Name)
}

func TestOpenTestdata(t *testing.T) {
	files := fsx.Filenames("testdata", ".svg")
	require.NotEmpty(t, files)
	for _, fn := range files {
		sv := NewSVG()
		require.NoError(t, sv.OpenXML(filepath.Join("testdata", fn)), fn)

		// writing must be stable across a round trip
		var b1 bytes.Buffer
		require.NoError(t, sv.WriteXML(&b1, true))
		sv2 := NewSVG()
		require.NoError(t, sv2.ReadXML(bytes.NewReader(b1.Bytes())), fn)
		var b2 bytes.Buffer
		require.NoError(t, sv2.WriteXML(&b2, true))
		assert.Equal(t, b1.String(), b2.String(), fn)
	}
}

func TestOpenInkscape(t *testing.T) {
	sv := NewSVG()
	require.NoError(t, sv.OpenXML(filepath.Join("testdata", "inkscape.svg")))
	assert.NotNil(t, sv.NodeByID("path837"))
	assert.NotNil(t, sv.NodeByID("clipRect")) // lives in defs
	assert.NotNil(t, sv.NodeByID("metadata5"))

	var b bytes.Buffer
	require.NoError(t, sv.WriteXML(&b, true))
	out := b.String()
	assert.Contains(t, out, "sodipodi:namedview")
	assert.Contains(t, out, "inkscape:groupmode=\"layer\"")
	assert.Contains(t, out, "<rdf:RDF>")
	assert.Contains(t, out, "image/svg+xml")
}

func TestComments(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <!-- keep me -->
  <g id="layer1"><!-- inner --></g>
</svg>`
	sv := NewSVG()
	require.NoError(t, sv.ReadXML(strings.NewReader(doc)))

	var b1 bytes.Buffer
	require.NoError(t, sv.WriteXML(&b1, true))
	out := b1.String()
	assert.Contains(t, out, "<!-- keep me -->")
	assert.Contains(t, out, "<!-- inner -->")

	sv2 := NewSVG()
	require.NoError(t, sv2.ReadXML(bytes.NewReader(b1.Bytes())))
	var b2 bytes.Buffer
	require.NoError(t, sv2.WriteXML(&b2, true))
	assert.Equal(t, b1.String(), b2.String())
}

func TestProperties(t *testing.T) {
	g := NewGroup(nil)
	g.SetProperty("style", "fill:none")
	g.SetProperty("stroke", "black")
	g.SetProperty("style", "fill:red")
	assert.Equal(t, []string{"style", "stroke"}, g.PropertyOrder())
	assert.Equal(t, "fill:red", g.Property("style"))
	g.DeleteProperty("style")
	assert.Equal(t, []string{"stroke"}, g.PropertyOrder())
	assert.Nil(t, g.Property("style"))
}
