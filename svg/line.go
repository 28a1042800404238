// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Line is an SVG line.
type Line struct {
	NodeBase

	// Start is the position of the start of the line.
	Start math32.Vector2 `xml:"{x1,y1}"`

	// End is the position of the end of the line.
	End math32.Vector2 `xml:"{x2,y2}"`
}

// NewLine returns a new [Line] added to the given parent.
func NewLine(parent Node) *Line {
	g := &Line{}
	initNode(g, parent)
	return g
}

func (g *Line) SVGName() string { return "line" }

// PathData returns the line as a path.
func (g *Line) PathData() ppath.Path {
	return *ppath.New().Line(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
}
