// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Rect is an SVG rectangle, optionally with rounded corners.
type Rect struct {
	NodeBase

	// Pos is the position of the top-left of the rectangle.
	Pos math32.Vector2 `xml:"{x,y}"`

	// Size is the size of the rectangle.
	Size math32.Vector2 `xml:"{width,height}"`

	// Radius is the radius for rounded corners.
	Radius math32.Vector2 `xml:"{rx,ry}"`
}

// NewRect returns a new [Rect] added to the given parent.
func NewRect(parent Node) *Rect {
	g := &Rect{}
	initNode(g, parent)
	return g
}

func (g *Rect) SVGName() string { return "rect" }

// PathData returns the rectangle as a path.
func (g *Rect) PathData() ppath.Path {
	p := ppath.New()
	if g.Radius.X == 0 && g.Radius.Y == 0 {
		p.Rectangle(g.Pos.X, g.Pos.Y, g.Size.X, g.Size.Y)
	} else {
		r := g.Radius.X
		if r == 0 {
			r = g.Radius.Y
		}
		p.RoundedRectangle(g.Pos.X, g.Pos.Y, g.Size.X, g.Size.Y, r)
	}
	return *p
}
