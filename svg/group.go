// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Group groups together SVG elements.
// Provides a common transform for all group elements
// and shared style properties.
type Group struct {
	NodeBase
}

// NewGroup returns a new [Group] added to the given parent.
func NewGroup(parent Node) *Group {
	g := &Group{}
	initNode(g, parent)
	return g
}

func (g *Group) SVGName() string { return "g" }
