// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Ellipse is an SVG ellipse.
type Ellipse struct {
	NodeBase

	// Pos is the position of the center of the ellipse.
	Pos math32.Vector2 `xml:"{cx,cy}"`

	// Radii are the horizontal and vertical radii of the ellipse.
	Radii math32.Vector2 `xml:"{rx,ry}"`
}

// NewEllipse returns a new [Ellipse] added to the given parent.
func NewEllipse(parent Node) *Ellipse {
	g := &Ellipse{}
	initNode(g, parent)
	return g
}

func (g *Ellipse) SVGName() string { return "ellipse" }

// PathData returns the ellipse as a path.
func (g *Ellipse) PathData() ppath.Path {
	return *ppath.New().Ellipse(g.Pos.X, g.Pos.Y, g.Radii.X, g.Radii.Y)
}
