// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides an SVG document model with XML reading and
// writing that preserves the structure and attributes of documents,
// including Inkscape extensions, across a round trip.
package svg

import (
	"fmt"

	"github.com/svgmorph/svgmorph/math32"
)

// SVG is an SVG document.
type SVG struct {

	// Root is the root of the svg tree, corresponding to the
	// top-level svg element.
	Root *Root

	// Defs is the defs child of the root, where referenced elements
	// such as gradients and markers live. It is only written when
	// it has children.
	Defs *Group

	// PhysicalWidth is the width attribute of the svg element,
	// preserved verbatim including any units.
	PhysicalWidth string

	// PhysicalHeight is the height attribute of the svg element,
	// preserved verbatim including any units.
	PhysicalHeight string
}

// NewSVG returns a new [SVG] with an empty root.
func NewSVG() *SVG {
	sv := &SVG{}
	sv.Root = &Root{}
	initNode(sv.Root, nil)
	sv.Defs = &Group{}
	initNode(sv.Defs, nil)
	sv.Defs.Name = "defs"
	return sv
}

// DeleteAll deletes all content in the svg.
func (sv *SVG) DeleteAll() {
	if sv.Root == nil {
		return
	}
	sv.Root.Children = nil
	sv.Root.Properties = nil
	sv.Root.propertyOrder = nil
	sv.Defs.Children = nil
	sv.PhysicalWidth = ""
	sv.PhysicalHeight = ""
}

// NodeByID returns the first node with the given id attribute in the
// document, searching the main tree and then the defs,
// or nil if not found.
func (sv *SVG) NodeByID(id string) Node {
	if n := sv.Root.NodeByID(id); n != nil {
		return n
	}
	return sv.Defs.NodeByID(id)
}

// Root is the root viewbox node of the SVG document,
// corresponding to the svg element itself.
type Root struct {
	NodeBase

	// ViewBox defines the coordinate system for the contents,
	// from the viewBox attribute.
	ViewBox ViewBox
}

func (g *Root) SVGName() string { return "svg" }

// ViewBox is the SVG viewBox: minimum point and size.
type ViewBox struct {
	Min  math32.Vector2
	Size math32.Vector2
}

// HasViewBox returns whether a viewBox was specified.
func (vb ViewBox) HasViewBox() bool {
	return vb.Size != (math32.Vector2{})
}

// String returns the viewBox attribute value.
func (vb ViewBox) String() string {
	return fmt.Sprintf("%g %g %g %g", vb.Min.X, vb.Min.Y, vb.Size.X, vb.Size.Y)
}
