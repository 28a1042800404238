// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"github.com/svgmorph/svgmorph/math32"
)

// ControlBounds returns the bounding box that spans all the path's
// anchor and control points. The box always contains the path, but
// for curved segments it may be larger than the exact bounds,
// as the curve stays within the convex hull of its control points.
func (p Path) ControlBounds() math32.Box2 {
	if len(p) < 4 {
		return math32.Box2{}
	}
	// first command is MoveTo
	start := math32.Vec2(p[1], p[2])
	bounds := math32.Box2{Min: start, Max: start}
	for i := 4; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo, LineTo, Close:
			bounds.ExpandByPoint(p.EndPoint(i))
		case QuadTo:
			cp, end := p.QuadToPoints(i)
			bounds.ExpandByPoint(cp)
			bounds.ExpandByPoint(end)
		case CubeTo:
			cp1, cp2, end := p.CubeToPoints(i)
			bounds.ExpandByPoint(cp1)
			bounds.ExpandByPoint(cp2)
			bounds.ExpandByPoint(end)
		case ArcTo:
			rx, ry, phi, large, sweep, end := p.ArcToPoints(i)
			for _, bezier := range ellipseToCubicBeziers(start, rx, ry, phi, large, sweep, end) {
				bounds.ExpandByPoint(bezier[1])
				bounds.ExpandByPoint(bezier[2])
				bounds.ExpandByPoint(bezier[3])
			}
		}
		i += CmdLen(cmd)
		start = math32.Vec2(p[i-3], p[i-2])
	}
	return bounds
}
