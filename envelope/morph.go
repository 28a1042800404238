// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"fmt"

	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Morph maps every anchor and handle point of the letter path through
// the envelope axes, with percentage coordinates taken relative to the
// given bounds. Every drawing segment is lowered to a cubic first, so
// the result consists of MoveTo and CubeTo segments only. Raw cubics
// are appended so that the output keeps a one-to-one segment
// correspondence with the input even where morphing degenerates a
// curve to a line.
func Morph(letter ppath.Path, ax Axes, bounds math32.Box2) (ppath.Path, error) {
	sz := bounds.Size()
	if sz.X == 0 || sz.Y == 0 {
		return nil, fmt.Errorf("envelope: letter bounding box has zero area: %v", bounds)
	}
	mp := func(p math32.Vector2) math32.Vector2 {
		return ax.mapPoint(math32.Vec2((p.X-bounds.Min.X)/sz.X, (p.Y-bounds.Min.Y)/sz.Y))
	}

	out := ppath.Path{}
	for s := letter.Scanner(); s.Scan(); {
		var c Cubic
		switch s.Cmd() {
		case ppath.MoveTo:
			e := mp(s.End())
			out.MoveTo(e.X, e.Y)
			continue
		case ppath.LineTo, ppath.Close:
			c = CubicFromLine(s.Start(), s.End())
		case ppath.QuadTo:
			c = CubicFromQuad(s.Start(), s.CP1(), s.End())
		case ppath.CubeTo:
			c = Cubic{s.Start(), s.CP1(), s.CP2(), s.End()}
		default:
			return nil, fmt.Errorf("envelope: unsupported segment in letter path: %v", ppath.CmdString(s.Cmd()))
		}
		cp1, cp2, end := mp(c.CP1), mp(c.CP2), mp(c.End)
		out.CubeToRaw(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
	}
	return out, nil
}
