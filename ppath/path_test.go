// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/svgmorph/svgmorph/math32"
)

func tolEqualVec2(t *testing.T, a, b math32.Vector2, tols ...float64) {
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, b.X, a.X, tol)
	assert.InDelta(t, b.Y, a.Y, tol)
}

func tolEqualBox2(t *testing.T, a, b math32.Box2, tols ...float64) {
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolEqualVec2(t, b.Min, a.Min, tol)
	tolEqualVec2(t, b.Max, a.Max, tol)
}

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	assert.True(t, p.Empty())

	p.MoveTo(5, 2)
	assert.True(t, p.Empty())

	p.LineTo(6, 2)
	assert.True(t, !p.Empty())
}

func TestPathEquals(t *testing.T) {
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0")))
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9")))
	assert.True(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10")))
}

func TestPathClosed(t *testing.T) {
	assert.True(t, !MustParseSVGPath("M5 0L5 10").Closed())
	assert.True(t, MustParseSVGPath("M5 0L5 10z").Closed())
	assert.True(t, !MustParseSVGPath("M5 0L5 10zM5 10").Closed())
	assert.True(t, MustParseSVGPath("M5 0L5 10zM5 10z").Closed())
}

func TestPathAppend(t *testing.T) {
	assert.Equal(t, MustParseSVGPath("M5 0L5 10").Append(nil), MustParseSVGPath("M5 0L5 10"))
	assert.Equal(t, (&Path{}).Append(MustParseSVGPath("M5 0L5 10")), MustParseSVGPath("M5 0L5 10"))

	p := MustParseSVGPath("M5 0L5 10").Append(MustParseSVGPath("M5 15L10 15"))
	assert.Equal(t, p, MustParseSVGPath("M5 0L5 10M5 15L10 15"))
}

func TestPathCoords(t *testing.T) {
	coords := MustParseSVGPath("L5 10").Coords()
	assert.Equal(t, len(coords), 2)
	assert.Equal(t, coords[0], math32.Vector2{X: 0.0, Y: 0.0})
	assert.Equal(t, coords[1], math32.Vector2{X: 5.0, Y: 10.0})

	coords = MustParseSVGPath("L5 10C2.5 10 0 5 0 0z").Coords()
	assert.Equal(t, len(coords), 3)
	assert.Equal(t, coords[0], math32.Vector2{X: 0.0, Y: 0.0})
	assert.Equal(t, coords[1], math32.Vector2{X: 5.0, Y: 10.0})
	assert.Equal(t, coords[2], math32.Vector2{X: 0.0, Y: 0.0})
}

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig     string
		expected string
	}{
		{"M10 0L20 0", "M10,0L20,0"},
		{"m10 0l10 0", "M10,0L20,0"},
		{"M10 0H20", "M10,0L20,0"},
		{"M10 0h10", "M10,0L20,0"},
		{"M10 0V20", "M10,0L10,20"},
		{"M10 0v20", "M10,0L10,20"},
		{"M0 0Q5 10 10 0", "M0,0Q5,10,10,0"},
		{"M0 0q5 10 10 0", "M0,0Q5,10,10,0"},
		{"M0 0Q5 10 10 0T20 0", "M0,0Q5,10,10,0Q15,-10,20,0"},
		{"M0 0C2 10 8 10 10 0", "M0,0C2,10,8,10,10,0"},
		{"M0 0c2 10 8 10 10 0", "M0,0C2,10,8,10,10,0"},
		{"M0 0C2 10 8 10 10 0S18 -10 20 0", "M0,0C2,10,8,10,10,0C12,-10,18,-10,20,0"},
		{"M0 0L10 0zL0 10", "M0,0L10,0ZM0,0L0,10"},
		{"M0 0 10 0 10 10", "M0,0L10,0L10,10"},
		{"M5,0 5,10", "M5,0L5,10"},
		{"M.5.2.7.8", "M0.5,0.2L0.7,0.8"},
		{"M5-2L-7-4", "M5,-2L-7,-4"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParseSVGPath(tt.orig)
			assert.Equal(t, tt.expected, p.ToSVG())
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []string{
		"10 0L20 0",
		"M10 0G20 0",
		"M10",
		"M10 0A5",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseSVGPath(tt)
			assert.Error(t, err)
		})
	}
}

func TestParseSVGPathArcs(t *testing.T) {
	// arcs are converted to cubics on entry
	p := MustParseSVGPath("M0 0A5 5 0 0 1 10 0")
	assert.True(t, p.Sane())
	for s := p.Scanner(); s.Scan(); {
		assert.NotEqual(t, ArcTo, s.Cmd())
	}
	tolEqualVec2(t, p.Pos(), math32.Vec2(10, 0))

	// flags may run together with the following numbers
	q := MustParseSVGPath("M0 0A5 5 0 0110 0")
	assert.True(t, p.Equals(q))
}

func TestPathTransform(t *testing.T) {
	var tts = []struct {
		p        string
		m        math32.Matrix2
		expected string
	}{
		{"M0 0L10 0Q15 10 20 0C23 10 27 10 30 0z", math32.Translate2D(1, 1),
			"M1 1L11 1Q16 11 21 1C24 11 28 11 31 1z"},
		{"M0 0L10 0Q15 10 20 0C23 10 27 10 30 0z", math32.Scale2D(2, 1),
			"M0 0L20 0Q30 10 40 0C46 10 54 10 60 0z"},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			p := MustParseSVGPath(tt.p).Transform(tt.m)
			assert.True(t, p.Equals(MustParseSVGPath(tt.expected)), fmt.Sprint(p))
		})
	}

	p := MustParseSVGPath("M0 0L10 0").Translate(5, 5)
	assert.True(t, p.Equals(MustParseSVGPath("M5 5L15 5")))

	p = MustParseSVGPath("M0 0L10 0").Scale(2, 2)
	assert.True(t, p.Equals(MustParseSVGPath("M0 0L20 0")))
}

func TestPathReverse(t *testing.T) {
	var tts = []struct {
		p        string
		expected string
	}{
		{"M5 5", "M5 5"},
		{"M5 5z", "M5 5z"},
		{"M5 5L5 10", "M5 10L5 5"},
		{"M5 5L5 10z", "M5 5L5 10z"},
		{"M5 5Q10 10 15 5", "M15 5Q10 10 5 5"},
		{"M5 5C5 10 10 10 10 5", "M10 5C10 10 5 10 5 5"},
		{"M5 5L5 10M10 5L10 10", "M10 10L10 5M5 10L5 5"},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			p := MustParseSVGPath(tt.p).Reverse()
			assert.True(t, p.Equals(MustParseSVGPath(tt.expected)), fmt.Sprint(p))
		})
	}
}

func TestPathSplit(t *testing.T) {
	ps := MustParseSVGPath("M5 5L6 6M10 10L11 11z").Split()
	assert.Equal(t, 2, len(ps))
	assert.True(t, ps[0].Equals(MustParseSVGPath("M5 5L6 6")))
	assert.True(t, ps[1].Equals(MustParseSVGPath("M10 10L11 11z")))

	assert.Equal(t, 1, len(MustParseSVGPath("M5 5L6 6").Split()))
	assert.Nil(t, Path(nil).Split())
}

func TestPathControlBounds(t *testing.T) {
	var tts = []struct {
		p        string
		expected math32.Box2
	}{
		{"M0 0L10 10", math32.B2(0, 0, 10, 10)},
		{"M0 0C0 10 10 10 10 0", math32.B2(0, 0, 10, 10)},
		{"M0 0Q5 10 10 0", math32.B2(0, 0, 10, 10)},
		{"M10 10L20 10L20 20z", math32.B2(10, 10, 20, 20)},
	}
	for _, tt := range tts {
		t.Run(tt.p, func(t *testing.T) {
			tolEqualBox2(t, MustParseSVGPath(tt.p).ControlBounds(), tt.expected)
		})
	}
}

func TestPathCubeToRaw(t *testing.T) {
	// collinear control points survive, unlike with CubeTo
	p := Path{}
	p.MoveTo(0, 0)
	p.CubeToRaw(1, 0, 2, 0, 3, 0)
	assert.Equal(t, 1+1, p.Len())
	assert.Equal(t, CubeTo, p[4])

	q := Path{}
	q.MoveTo(0, 0)
	q.CubeTo(1, 0, 2, 0, 3, 0)
	assert.Equal(t, LineTo, q[4])
}

func TestShapes(t *testing.T) {
	p := New().Rectangle(0, 0, 10, 5)
	tolEqualBox2(t, p.ControlBounds(), math32.B2(0, 0, 10, 5))
	assert.True(t, p.Closed())

	p = New().Circle(5, 5, 5)
	assert.True(t, p.Closed())
	b := p.ControlBounds()
	assert.InDelta(t, 0, b.Min.X, 1.0)
	assert.InDelta(t, 10, b.Max.X, 1.0)

	p = New().Line(0, 0, 10, 10)
	assert.Equal(t, 2, p.Len())

	p = New().Polygon(math32.Vec2(0, 0), math32.Vec2(10, 0), math32.Vec2(10, 10))
	assert.True(t, p.Closed())
}
