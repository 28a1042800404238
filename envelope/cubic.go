// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package envelope

import (
	"github.com/svgmorph/svgmorph/math32"
)

// Cubic is a single cubic bezier segment with explicit start point.
type Cubic struct {
	Start math32.Vector2
	CP1   math32.Vector2
	CP2   math32.Vector2
	End   math32.Vector2
}

// CubicFromLine returns the cubic equivalent of the straight line from
// start to end, with the control points at the one-third points so that
// the parameterization stays linear.
func CubicFromLine(start, end math32.Vector2) Cubic {
	third := end.Sub(start).DivScalar(3)
	return Cubic{
		Start: start,
		CP1:   start.Add(third),
		CP2:   end.Sub(third),
		End:   end,
	}
}

// CubicFromQuad returns the exact cubic equivalent of the quadratic
// bezier from start to end with control point cp.
func CubicFromQuad(start, cp, end math32.Vector2) Cubic {
	return Cubic{
		Start: start,
		CP1:   start.Add(cp.Sub(start).MulScalar(2.0 / 3.0)),
		CP2:   end.Sub(end.Sub(cp).MulScalar(2.0 / 3.0)),
		End:   end,
	}
}

// PointAt returns the point on the curve at parameter t in [0, 1],
// by cubic Bernstein evaluation.
func (c Cubic) PointAt(t float32) math32.Vector2 {
	t2 := t * t
	t3 := t2 * t
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	p := c.Start.MulScalar(mt3)
	p.SetAdd(c.CP1.MulScalar(3 * mt2 * t))
	p.SetAdd(c.CP2.MulScalar(3 * mt * t2))
	p.SetAdd(c.End.MulScalar(t3))
	return p
}

// Lerp returns the linear tween between c and other at t: each of the
// four control points moves along a straight line between the
// corresponding points.
func (c Cubic) Lerp(other Cubic, t float32) Cubic {
	return Cubic{
		Start: c.Start.Lerp(other.Start, t),
		CP1:   c.CP1.Lerp(other.CP1, t),
		CP2:   c.CP2.Lerp(other.CP2, t),
		End:   c.End.Lerp(other.End, t),
	}
}

// Reverse returns the same curve traversed in the opposite direction.
func (c Cubic) Reverse() Cubic {
	return Cubic{Start: c.End, CP1: c.CP2, CP2: c.CP1, End: c.Start}
}

// Transform returns the curve with all four control points transformed
// as points by the given matrix.
func (c Cubic) Transform(m math32.Matrix2) Cubic {
	return Cubic{
		Start: m.MulVector2AsPoint(c.Start),
		CP1:   m.MulVector2AsPoint(c.CP1),
		CP2:   m.MulVector2AsPoint(c.CP2),
		End:   m.MulVector2AsPoint(c.End),
	}
}
