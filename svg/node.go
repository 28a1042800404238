// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Node is the interface for all SVG nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name (e.g., "rect", "path" etc).
	SVGName() string
}

// Shape is the interface for nodes with renderable geometry.
type Shape interface {
	Node

	// PathData returns the geometry of this shape as a [ppath.Path]
	// in local coordinates, without the node transform applied.
	PathData() ppath.Path
}

// NodeBase is the base type for all elements within an SVG tree.
// It implements the [Node] interface and contains the core tree
// and property functionality.
type NodeBase struct {

	// Name is the id attribute of this element.
	Name string

	// Class contains user-defined class name(s), used primarily
	// for attaching CSS styles to elements.
	Class string

	// Parent is the parent of this node in the tree.
	Parent Node

	// Children are the child nodes of this node.
	Children []Node

	// Properties holds the remaining XML attributes of the element,
	// preserved for output.
	Properties map[string]any

	// propertyOrder records the order in which properties were set,
	// so that output is deterministic and attribute order survives
	// a read / write round trip.
	propertyOrder []string

	// This is the node as its true underlying type.
	This Node
}

func (g *NodeBase) AsNodeBase() *NodeBase { return g }
func (g *NodeBase) SVGName() string       { return "base" }

// initNode sets the node's This pointer and adds it to parent.
func initNode(n Node, parent Node) {
	nb := n.AsNodeBase()
	nb.This = n
	if parent != nil {
		pb := parent.AsNodeBase()
		nb.Parent = parent
		pb.Children = append(pb.Children, n)
	}
}

// SetProperty sets the given property, recording insertion order for
// the first occurrence of each key.
func (g *NodeBase) SetProperty(key string, value any) {
	if g.Properties == nil {
		g.Properties = map[string]any{}
	}
	if _, has := g.Properties[key]; !has {
		g.propertyOrder = append(g.propertyOrder, key)
	}
	g.Properties[key] = value
}

// Property returns the given property value, or nil if not set.
func (g *NodeBase) Property(key string) any {
	if g.Properties == nil {
		return nil
	}
	return g.Properties[key]
}

// DeleteProperty removes the given property.
func (g *NodeBase) DeleteProperty(key string) {
	if g.Properties == nil {
		return
	}
	if _, has := g.Properties[key]; !has {
		return
	}
	delete(g.Properties, key)
	for i, k := range g.propertyOrder {
		if k == key {
			g.propertyOrder = append(g.propertyOrder[:i], g.propertyOrder[i+1:]...)
			break
		}
	}
}

// PropertyOrder returns the property keys in the order they were set.
func (g *NodeBase) PropertyOrder() []string {
	return g.propertyOrder
}

// Transform returns the node transform matrix parsed from the
// transform property, or the identity if there is none.
func (g *NodeBase) Transform() math32.Matrix2 {
	m := math32.Identity2()
	ts, _ := g.Property("transform").(string)
	if ts == "" {
		return m
	}
	m.SetString(ts)
	return m
}

// ReplaceChild replaces the given child node with the new node,
// keeping its position among the children. It does nothing if old is
// not a child of this node.
func (g *NodeBase) ReplaceChild(old, nw Node) {
	for i, k := range g.Children {
		if k == old {
			g.Children[i] = nw
			nw.AsNodeBase().Parent = g.This
			old.AsNodeBase().Parent = nil
			return
		}
	}
}

// WalkDown calls the given function on this node and all of its
// children recursively, depth-first. The walk of a branch terminates
// when the function returns false for its node.
func (g *NodeBase) WalkDown(fun func(n Node) bool) {
	if g.This == nil {
		return
	}
	if !fun(g.This) {
		return
	}
	for _, k := range g.Children {
		k.AsNodeBase().WalkDown(fun)
	}
}

// NodeByID returns the node with the given id attribute under this
// node, including this node itself, or nil if not found.
func (g *NodeBase) NodeByID(id string) Node {
	var found Node
	g.WalkDown(func(n Node) bool {
		if found != nil {
			return false
		}
		if n.AsNodeBase().Name == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FirstNonGroupNode returns the first item that is not a group,
// recursing into groups until a non-group item is found.
func FirstNonGroupNode(n Node) Node {
	var ngn Node
	n.AsNodeBase().WalkDown(func(sn Node) bool {
		if ngn != nil {
			return false
		}
		if _, isgp := sn.(*Group); isgp {
			return true
		}
		if _, isrt := sn.(*Root); isrt {
			return true
		}
		ngn = sn
		return false
	})
	return ngn
}
