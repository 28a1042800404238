// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-3, 5))
	assert.Equal(t, B2(-3, 2, 1, 5), b)
	assert.False(t, b.IsEmpty())

	assert.Equal(t, Vec2(-1, 3.5), b.Center())
	assert.Equal(t, Vec2(4, 3), b.Size())

	assert.True(t, b.ContainsPoint(Vec2(0, 3)))
	assert.False(t, b.ContainsPoint(Vec2(2, 3)))

	assert.Equal(t, B2(0, 0, 4, 4), B2(0, 0, 2, 4).Union(B2(1, 0, 4, 2)))
	assert.Equal(t, B2(1, 0, 2, 2), B2(0, 0, 2, 4).Intersect(B2(1, 0, 4, 2)))

	assert.Equal(t, B2(1, 1, 3, 5), B2(0, 0, 2, 4).Translate(Vec2(1, 1)))
	assert.Equal(t, B2(0, 0, 2, 4), B2(2, 4, 0, 0).Canon())
}

func TestBox2Project(t *testing.T) {
	b := B2(10, 20, 30, 60)
	assert.Equal(t, float32(10), b.ProjectX(0))
	assert.Equal(t, float32(20), b.ProjectX(0.5))
	assert.Equal(t, float32(30), b.ProjectX(1))
	assert.Equal(t, float32(40), b.ProjectY(0.5))
}

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(0, 0, 1, 2)
	assert.Equal(t, B2(1, 1, 2, 3), b.MulMatrix2(Translate2D(1, 1)))
	assert.Equal(t, B2(0, 0, 2, 4), b.MulMatrix2(Scale2D(2, 2)))
}
