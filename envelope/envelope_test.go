// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svgmorph/svgmorph/base/tolassert"
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
	"github.com/svgmorph/svgmorph/svg"
)

func tolEqualVec2(t *testing.T, want, have math32.Vector2) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-4)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-4)
}

func TestCubicFromLine(t *testing.T) {
	c := CubicFromLine(math32.Vec2(0, 0), math32.Vec2(3, 6))
	tolEqualVec2(t, math32.Vec2(1, 2), c.CP1)
	tolEqualVec2(t, math32.Vec2(2, 4), c.CP2)
	for _, tv := range []float32{0, 0.25, 0.5, 0.75, 1} {
		tolEqualVec2(t, math32.Vec2(3*tv, 6*tv), c.PointAt(tv))
	}
}

func TestCubicFromQuad(t *testing.T) {
	c := CubicFromQuad(math32.Vec2(0, 0), math32.Vec2(1, 2), math32.Vec2(2, 0))
	tolEqualVec2(t, math32.Vec2(0, 0), c.Start)
	tolEqualVec2(t, math32.Vec2(2, 0), c.End)
	// quadratic midpoint: 0.25*start + 0.5*cp + 0.25*end
	tolEqualVec2(t, math32.Vec2(1, 1), c.PointAt(0.5))
}

func TestCubicLerpReverse(t *testing.T) {
	a := CubicFromLine(math32.Vec2(0, 0), math32.Vec2(1, 0))
	b := CubicFromLine(math32.Vec2(0, 2), math32.Vec2(1, 2))
	m := a.Lerp(b, 0.5)
	tolEqualVec2(t, math32.Vec2(0, 1), m.Start)
	tolEqualVec2(t, math32.Vec2(1, 1), m.End)

	r := a.Reverse()
	tolEqualVec2(t, a.End, r.Start)
	tolEqualVec2(t, a.CP2, r.CP1)
	tolEqualVec2(t, a.Start, r.End)
}

func TestExtractAxes(t *testing.T) {
	sq := ppath.MustParseSVGPath("M0,0L1,0L1,1L0,1Z")
	ax, err := ExtractAxes(sq, false)
	require.NoError(t, err)
	tolEqualVec2(t, math32.Vec2(0, 0), ax.TopX.Start)
	tolEqualVec2(t, math32.Vec2(1, 0), ax.TopX.End)
	tolEqualVec2(t, math32.Vec2(1, 0), ax.RightY.Start)
	tolEqualVec2(t, math32.Vec2(1, 1), ax.RightY.End)
	tolEqualVec2(t, math32.Vec2(0, 1), ax.BottomX.Start)
	tolEqualVec2(t, math32.Vec2(1, 1), ax.BottomX.End)
	tolEqualVec2(t, math32.Vec2(0, 0), ax.LeftY.Start)
	tolEqualVec2(t, math32.Vec2(0, 1), ax.LeftY.End)
}

func TestExtractAxesErrors(t *testing.T) {
	_, err := ExtractAxes(ppath.Path{}, false)
	assert.Error(t, err)

	_, err = ExtractAxes(ppath.MustParseSVGPath("M0,0L1,0L1,1"), false)
	assert.Error(t, err)

	// a fifth segment is ignored unless strict
	five := ppath.MustParseSVGPath("M0,0L4,0L5,2L2,4L-1,2Z")
	_, err = ExtractAxes(five, false)
	assert.NoError(t, err)
	_, err = ExtractAxes(five, true)
	assert.Error(t, err)
}

func TestMorphIdentity(t *testing.T) {
	// the envelope whose four sides run straight along the letter
	// bounds maps every point to itself
	sq := ppath.MustParseSVGPath("M0,0L1,0L1,1L0,1Z")
	ax, err := ExtractAxes(sq, false)
	require.NoError(t, err)

	letter := ppath.MustParseSVGPath("M0,0C0.25,0.5,0.75,0.25,1,1")
	bounds := letter.ControlBounds()
	out, err := Morph(letter, ax, bounds)
	require.NoError(t, err)
	require.Equal(t, len(letter), len(out))
	for i := range letter {
		tolassert.EqualTol(t, letter[i], out[i], 1e-4)
	}
}

func TestMorphTranslateScale(t *testing.T) {
	// a shifted and scaled square envelope is an affine map of the bounds
	sq := ppath.MustParseSVGPath("M10,10L30,10L30,50L10,50Z")
	ax, err := ExtractAxes(sq, false)
	require.NoError(t, err)

	letter := ppath.MustParseSVGPath("M0,0L1,1")
	bounds := math32.B2(0, 0, 1, 1)
	out, err := Morph(letter, ax, bounds)
	require.NoError(t, err)

	s := out.Scanner()
	require.True(t, s.Scan())
	tolEqualVec2(t, math32.Vec2(10, 10), s.End())
	require.True(t, s.Scan())
	require.Equal(t, ppath.CubeTo, s.Cmd())
	tolEqualVec2(t, math32.Vec2(30, 50), s.End())
}

func TestMorphDegenerateAxis(t *testing.T) {
	// the fourth side collapses to a point; morphing must fall back
	// to translation instead of emitting NaNs
	tri := ppath.Path{}
	tri.MoveTo(0, 0)
	tri.LineTo(1, 0)
	tri.LineTo(1, 1)
	tri.LineTo(0, 0)
	tri.CubeToRaw(0, 0, 0, 0, 0, 0)
	ax, err := ExtractAxes(tri, false)
	require.NoError(t, err)

	letter := ppath.MustParseSVGPath("M0,0L1,0L1,1L0,1Z")
	out, err := Morph(letter, ax, letter.ControlBounds())
	require.NoError(t, err)
	for _, v := range out {
		assert.False(t, math32.IsNaN(v))
		assert.False(t, math32.IsInf(v, 0))
	}
}

func TestMorphZeroBounds(t *testing.T) {
	sq := ppath.MustParseSVGPath("M0,0L1,0L1,1L0,1Z")
	ax, err := ExtractAxes(sq, false)
	require.NoError(t, err)
	letter := ppath.MustParseSVGPath("M0,0L1,0")
	_, err = Morph(letter, ax, letter.ControlBounds())
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	sv := svg.NewSVG()
	g := svg.NewGroup(sv.Root)
	letter := svg.NewPath(g)
	letter.Name = "letter"
	require.NoError(t, letter.SetData("M0,0C2,1,6,3,8,8L0,8Z"))
	env := svg.NewPath(g)
	env.Name = "env"
	require.NoError(t, env.SetData("M0,0C3,-2,5,2,8,0L8,8L0,8Z"))

	orig := letter.Data.Clone()
	require.NoError(t, Apply(sv, []string{"letter", "env"}, false))
	assert.False(t, letter.Data.Equals(orig))
	assert.False(t, letter.Data.Empty())
}

func TestApplyOrderSwap(t *testing.T) {
	build := func() (*svg.SVG, *svg.Path, *svg.Path) {
		sv := svg.NewSVG()
		a := svg.NewPath(sv.Root)
		a.Name = "a"
		errA := a.SetData("M0,0C2,1,6,3,8,0L8,8L0,8Z")
		b := svg.NewPath(sv.Root)
		b.Name = "b"
		errB := b.SetData("M0,0L8,0L8,8L0,8Z")
		require.NoError(t, errA)
		require.NoError(t, errB)
		return sv, a, b
	}
	sv, _, _ := build()
	assert.NoError(t, Apply(sv, []string{"a", "b"}, false))
	sv, _, _ = build()
	assert.NoError(t, Apply(sv, []string{"b", "a"}, false))
}

func TestApplyShapeLetter(t *testing.T) {
	sv := svg.NewSVG()
	rect := svg.NewRect(sv.Root)
	rect.Name = "r"
	rect.Pos.Set(0, 0)
	rect.Size.Set(4, 4)
	rect.SetProperty("style", "fill:red")
	env := svg.NewPath(sv.Root)
	env.Name = "env"
	require.NoError(t, env.SetData("M0,0L4,0L4,4L0,4Z"))

	require.NoError(t, Apply(sv, []string{"r", "env"}, false))
	n := sv.NodeByID("r")
	require.NotNil(t, n)
	p, ok := n.(*svg.Path)
	require.True(t, ok)
	assert.False(t, p.Data.Empty())
	assert.Equal(t, "fill:red", p.Property("style"))
}

func TestApplyErrors(t *testing.T) {
	sv := svg.NewSVG()
	p := svg.NewPath(sv.Root)
	p.Name = "p"
	require.NoError(t, p.SetData("M0,0L1,0L1,1L0,1Z"))
	c := svg.NewCircle(sv.Root)
	c.Name = "c"
	c.Radius = 1

	assert.Error(t, Apply(sv, []string{"p"}, false))
	assert.Error(t, Apply(sv, []string{"p", "nosuch"}, false))
	assert.Error(t, Apply(sv, []string{"nosuch", "p"}, false))
	assert.Error(t, Apply(sv, []string{"p", "c"}, false)) // envelope must be a path
}
