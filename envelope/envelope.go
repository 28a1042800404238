// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package envelope implements bezier envelope deformation: it squeezes
// arbitrary path geometry (the "letter") into a 4-sided cubic bezier
// path (the "envelope") by rearranging all anchor and handle points.
//
// Every anchor and handle point of the letter is first expressed as
// percentage coordinates within the letter's bounding box. The four
// sides of the envelope are then interpreted as deformed axes: the two
// y axes are tweened at the point's x percentage, the tween is
// stretched between the corresponding points on the two x axes, and
// the result is evaluated at the point's y percentage. Unless the
// letter is to be rotated or flipped, the envelope should begin at the
// upper left corner and be drawn clockwise.
package envelope

import (
	"fmt"

	"github.com/svgmorph/svgmorph/math32"
	"github.com/svgmorph/svgmorph/ppath"
)

// Axes are the four sides of an envelope as cubic curves, reoriented
// so that parallel sides run in the same direction: the third and
// fourth envelope segments are reversed on extraction.
type Axes struct {

	// TopX is the first envelope segment, the deformed x axis at y=0%.
	TopX Cubic

	// LeftY is the fourth envelope segment reversed, the deformed
	// y axis at x=0%.
	LeftY Cubic

	// BottomX is the third envelope segment reversed, the deformed
	// x axis at y=100%.
	BottomX Cubic

	// RightY is the second envelope segment, the deformed y axis
	// at x=100%.
	RightY Cubic
}

// ExtractAxes extracts the four deformation axes from an envelope
// path. The path must contain at least four drawing segments after a
// leading move; line, quadratic, and close segments are lowered to
// cubics. Extra trailing segments (such as a redundant close back to
// the start) are ignored, unless strict is set, in which case they
// are an error.
func ExtractAxes(p ppath.Path, strict bool) (Axes, error) {
	var ax Axes
	if p.Empty() {
		return ax, fmt.Errorf("envelope: envelope path is empty")
	}
	i := 0
	for s := p.Scanner(); s.Scan(); {
		var c Cubic
		switch s.Cmd() {
		case ppath.MoveTo:
			continue
		case ppath.LineTo, ppath.Close:
			c = CubicFromLine(s.Start(), s.End())
		case ppath.QuadTo:
			c = CubicFromQuad(s.Start(), s.CP1(), s.End())
		case ppath.CubeTo:
			c = Cubic{s.Start(), s.CP1(), s.CP2(), s.End()}
		default:
			return ax, fmt.Errorf("envelope: unsupported segment in envelope path: %v", ppath.CmdString(s.Cmd()))
		}
		switch i {
		case 0:
			ax.TopX = c
		case 1:
			ax.RightY = c
		case 2:
			ax.BottomX = c.Reverse()
		case 3:
			ax.LeftY = c.Reverse()
		default:
			if strict {
				return ax, fmt.Errorf("envelope: envelope path has more than 4 segments")
			}
		}
		i++
	}
	if i < 4 {
		return ax, fmt.Errorf("envelope: envelope path has less than 4 segments: %v", i)
	}
	return ax, nil
}

// mapPoint maps a point in percentage coordinates into the morphed
// coordinate system framed by the axes. The y axes are tweened at the
// x percentage, the tween is stretched between the two x axis points
// at that percentage, and the result is evaluated at the y percentage.
func (ax Axes) mapPoint(pct math32.Vector2) math32.Vector2 {
	tween := ax.LeftY.Lerp(ax.RightY, pct.X)
	xSpot0 := ax.TopX.PointAt(pct.X)
	xSpot1 := ax.BottomX.PointAt(pct.X)
	m := match(tween.Start, tween.End, xSpot0, xSpot1)
	return tween.Transform(m).PointAt(pct.Y)
}

// match returns a transform that maps the two points p1, p2 onto the
// two anchors a1, a2 by rotating and scaling along the line between
// them. Coincident p1, p2 degenerate to a pure translation.
func match(p1, p2, a1, a2 math32.Vector2) math32.Matrix2 {
	dp := p2.Sub(p1)
	da := a2.Sub(a1)
	rp := math32.Hypot(dp.X, dp.Y)
	if rp < ppath.Epsilon {
		return math32.Translate2D(a1.X-p1.X, a1.Y-p1.Y)
	}
	ra := math32.Hypot(da.X, da.Y)
	angleP := math32.Atan2(dp.X, dp.Y)
	angleA := math32.Atan2(da.X, da.Y)
	return math32.Translate2D(a1.X, a1.Y).
		Rotate(angleA).
		Scale(ra/rp, ra/rp).
		Rotate(-angleP).
		Translate(-p1.X, -p1.Y)
}
