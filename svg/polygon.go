// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/ppath"
)

// Polygon is an SVG polygon, a closed polyline.
type Polygon struct {
	Polyline
}

// NewPolygon returns a new [Polygon] added to the given parent.
func NewPolygon(parent Node) *Polygon {
	g := &Polygon{}
	initNode(g, parent)
	return g
}

func (g *Polygon) SVGName() string { return "polygon" }

// PathData returns the polygon as a closed path.
func (g *Polygon) PathData() ppath.Path {
	return *ppath.New().Polygon(g.Points...)
}
