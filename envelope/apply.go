// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"fmt"

	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
	"github.com/svgmorph/svgmorph/svg"
)

// Apply morphs the letter elements with the given ids into the
// envelope element, modifying the document in place. The last id names
// the envelope, which must be a path element; the preceding ids name
// the letters. Multiple letters are morphed as a group, sharing the
// union of their bounding boxes, so their arrangement relative to each
// other is preserved. Letters that are basic shapes (rect, circle,
// ellipse, line, polygon, polyline) are replaced by path elements
// carrying the morphed geometry and the original attributes.
func Apply(sv *svg.SVG, ids []string, strict bool) error {
	if len(ids) < 2 {
		return fmt.Errorf("envelope: at least two ids must be selected: the letter(s) first, then the envelope")
	}
	envID := ids[len(ids)-1]
	envNode := sv.NodeByID(envID)
	if envNode == nil {
		return fmt.Errorf("envelope: no element with id %q in document", envID)
	}
	envPath, ok := envNode.(*svg.Path)
	if !ok {
		return fmt.Errorf("envelope: envelope element %q must be a path, not %q", envID, envNode.SVGName())
	}
	ax, err := ExtractAxes(envPath.Data, strict)
	if err != nil {
		return err
	}

	letterIDs := ids[:len(ids)-1]
	letters := make([]svg.Shape, len(letterIDs))
	bounds := math32.B2Empty()
	for i, id := range letterIDs {
		n := sv.NodeByID(id)
		if n == nil {
			return fmt.Errorf("envelope: no element with id %q in document", id)
		}
		sh, ok := n.(svg.Shape)
		if !ok {
			return fmt.Errorf("envelope: element %q (%v) has no geometry to morph", id, n.SVGName())
		}
		letters[i] = sh
		bounds.ExpandByBox(sh.PathData().ControlBounds())
	}

	for _, sh := range letters {
		morphed, err := Morph(sh.PathData(), ax, bounds)
		if err != nil {
			return err
		}
		if p, isPath := sh.(*svg.Path); isPath {
			p.Data = morphed
			continue
		}
		replaceWithPath(sh, morphed)
	}
	return nil
}

// replaceWithPath swaps a basic shape node for a path node with the
// given data, keeping its place in the tree and its attributes.
func replaceWithPath(sh svg.Shape, data ppath.Path) {
	nb := sh.AsNodeBase()
	p := svg.NewPath(nil)
	p.Data = data
	pb := p.AsNodeBase()
	pb.Name = nb.Name
	pb.Class = nb.Class
	for _, k := range nb.PropertyOrder() {
		pb.SetProperty(k, nb.Properties[k])
	}
	if nb.Parent != nil {
		nb.Parent.AsNodeBase().ReplaceChild(sh, p)
	}
}
