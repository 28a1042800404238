// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)
}

func TestVector2Math(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(3, -8), a.Mul(b))
	assert.Equal(t, Vec2(3, -2), a.Div(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vec2(0, 0), a.DivScalar(0))

	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(-10), a.Cross(b))
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, Vec2(0.6, 0.8), a.Normal())
	assert.Equal(t, Vec2(0, 0), Vec2(0, 0).Normal())

	assert.Equal(t, Vec2(1, -2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))
	assert.Equal(t, Vec2(1, 2), a.Abs().Min(b.Abs()).Min(Vec2(1, 2)))
	assert.Equal(t, Vec2(-3, -4), a.Negate())

	assert.Equal(t, float32(5), Vec2(0, 0).DistanceTo(a))
	assert.Equal(t, Vec2(2, 1), a.Lerp(b, 0.5))
	assert.Equal(t, Vec2(-4, 3), a.Rot90CW())
}

func TestVector2String(t *testing.T) {
	assert.Equal(t, "(3, 4)", Vec2(3, 4).String())
	assert.Equal(t, "(1.5, -2.25)", Vec2(1.5, -2.25).String())
}
