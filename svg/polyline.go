// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Polyline is an SVG multi-line shape.
type Polyline struct {
	NodeBase

	// Points are the coordinates for the points of the polyline.
	Points []math32.Vector2 `xml:"points"`
}

// NewPolyline returns a new [Polyline] added to the given parent.
func NewPolyline(parent Node) *Polyline {
	g := &Polyline{}
	initNode(g, parent)
	return g
}

func (g *Polyline) SVGName() string { return "polyline" }

// PathData returns the polyline as a path.
func (g *Polyline) PathData() ppath.Path {
	return *ppath.New().Polyline(g.Points...)
}
