// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"github.com/svgmorph/svgmorph/base/errors"
	"github.com/svgmorph/svgmorph/ppath"
)

// Path renders SVG data sequences that can render just about anything.
type Path struct {
	NodeBase

	// Data is the path data parsed into commands and coordinates.
	Data ppath.Path
}

// NewPath returns a new [Path] added to the given parent.
func NewPath(parent Node) *Path {
	g := &Path{}
	initNode(g, parent)
	return g
}

func (g *Path) SVGName() string { return "path" }

// SetData sets the path data to the given string interpreted as
// SVG path data.
func (g *Path) SetData(data string) error {
	p, err := ppath.ParseSVGPath(data)
	if err != nil {
		return errors.Log(err)
	}
	g.Data = p
	return nil
}

// PathData returns the path data.
func (g *Path) PathData() ppath.Path {
	return g.Data
}
