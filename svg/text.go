// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
)

// Text renders SVG text. The text string itself is in Text, and
// tspan children are represented as child Text nodes.
type Text struct {
	NodeBase

	// Pos is the position of the left baseline of the text.
	Pos math32.Vector2 `xml:"{x,y}"`

	// Text is the text string to render. A parent text element
	// has an empty string here, with tspan children carrying
	// the rendered text.
	Text string
}

// NewText returns a new [Text] added to the given parent.
func NewText(parent Node) *Text {
	g := &Text{}
	initNode(g, parent)
	return g
}

func (g *Text) SVGName() string {
	if _, ok := g.Parent.(*Text); ok {
		return "tspan"
	}
	return "text"
}
