// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Generic is a passthrough node for elements this package does not
// model, such as Inkscape's sodipodi:namedview and metadata.
// Its tag, attributes, text content, and children all survive a
// read / write round trip unchanged.
type Generic struct {
	NodeBase

	// Tag is the XML element name, including any namespace prefix.
	Tag string

	// Text is the character data content of the element, if any.
	Text string
}

// NewGeneric returns a new [Generic] added to the given parent.
func NewGeneric(parent Node, tag string) *Generic {
	g := &Generic{Tag: tag}
	initNode(g, parent)
	return g
}

func (g *Generic) SVGName() string { return g.Tag }

// Comment is a passthrough node for XML comments, so that annotated
// documents survive a read / write round trip unchanged.
type Comment struct {
	NodeBase

	// Text is the comment content, without the surrounding markers.
	Text string
}

// NewComment returns a new [Comment] added to the given parent.
func NewComment(parent Node, text string) *Comment {
	g := &Comment{Text: text}
	initNode(g, parent)
	return g
}

func (g *Comment) SVGName() string { return "comment" }
