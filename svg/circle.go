// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Circle is an SVG circle.
type Circle struct {
	NodeBase

	// Pos is the position of the center of the circle.
	Pos math32.Vector2 `xml:"{cx,cy}"`

	// Radius is the radius of the circle.
	Radius float32 `xml:"r"`
}

// NewCircle returns a new [Circle] added to the given parent.
func NewCircle(parent Node) *Circle {
	g := &Circle{}
	initNode(g, parent)
	return g
}

func (g *Circle) SVGName() string { return "circle" }

// PathData returns the circle as a path.
func (g *Circle) PathData() ppath.Path {
	return *ppath.New().Circle(g.Pos.X, g.Pos.Y, g.Radius)
}
