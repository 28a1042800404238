// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"github.com/svgmorph/svgmorph/math32"
)

// EllipsePos returns the position on the ellipse with radii rx and ry,
// rotated by phi, centered at (cx, cy), at the given angle theta.
func EllipsePos(rx, ry, phi, cx, cy, theta float32) math32.Vector2 {
	sintheta, costheta := math32.Sincos(theta)
	sinphi, cosphi := math32.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return math32.Vector2{X: x, Y: y}
}

// ellipseDeriv returns the derivative of the position on the ellipse
// at the given angle theta, pointing in the drawing direction.
func ellipseDeriv(rx, ry, phi float32, sweep bool, theta float32) math32.Vector2 {
	sintheta, costheta := math32.Sincos(theta)
	sinphi, cosphi := math32.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	if !sweep {
		return math32.Vector2{X: -dx, Y: -dy}
	}
	return math32.Vector2{X: dx, Y: dy}
}

// EllipseRadiiCorrection returns the factor by which the radii must be
// scaled up so that the ellipse can span from start to end.
// See https://www.w3.org/TR/SVG/implnote.html#ArcCorrectionOutOfRangeRadii
func EllipseRadiiCorrection(start math32.Vector2, rx, ry, phi float32, end math32.Vector2) float32 {
	diff := start.Sub(end)
	sinphi, cosphi := math32.Sincos(phi)
	x1p := (cosphi*diff.X + sinphi*diff.Y) / 2.0
	y1p := (-sinphi*diff.X + cosphi*diff.Y) / 2.0
	return math32.Sqrt(x1p*x1p/rx/rx + y1p*y1p/ry/ry)
}

// ellipseToCenter converts to the center arc format and returns
// (centerX, centerY, angleFrom, angleTo), with angles in radians.
// When angleFrom with range [0, 2PI) is bigger than angleTo with range
// (-2PI, 4PI), the ellipse runs clockwise.
// The angles are from the axes of the ellipse before rotation by phi.
// See https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func ellipseToCenter(x1, y1, rx, ry, phi float32, large, sweep bool, x2, y2 float32) (float32, float32, float32, float32) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, 0.0, 0.0
	} else if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return (x1 + x2) / 2.0, (y1 + y2) / 2.0, 0.0, 0.0
	}

	sinphi, cosphi := math32.Sincos(phi)
	x1p := (cosphi*(x1-x2) + sinphi*(y1-y2)) / 2.0
	y1p := (-sinphi*(x1-x2) + cosphi*(y1-y2)) / 2.0

	// reduce rouding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		radiiScale := math32.Sqrt(radiiCheck)
		rx *= radiiScale
		ry *= radiiScale
	}

	// may be negative for very small denominators due to floating point
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math32.Sqrt(math32.Abs((rx*rx*ry*ry - den) / den))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	theta0 := math32.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta1 := math32.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)

	if !sweep && theta0 < theta1 {
		theta0 += 2.0 * math32.Pi
	} else if sweep && theta1 < theta0 {
		theta1 += 2.0 * math32.Pi
	}
	return cx, cy, theta0, theta1
}

// ellipseToCubicBeziers converts an elliptical arc to a series of cubic
// Bézier curves, splitting the arc into segments of at most 90 degrees
// each. Each returned element holds the start, both control points,
// and the end of one cubic.
func ellipseToCubicBeziers(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) [][4]math32.Vector2 {
	cx, cy, theta0, theta1 := ellipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

	dtheta := math32.Abs(theta1 - theta0)
	n := int(math32.Ceil(dtheta / (math32.Pi / 2.0)))
	if n == 0 {
		n = 1
	}
	dtheta /= float32(n)
	kappa := math32.Sin(dtheta) * (math32.Sqrt(4.0+3.0*math32.Pow(math32.Tan(dtheta/2.0), 2)) - 1.0) / 3.0
	if !sweep {
		dtheta = -dtheta
	}

	beziers := [][4]math32.Vector2{}
	startDeriv := ellipseDeriv(rx, ry, phi, sweep, theta0)
	for i := 1; i <= n; i++ {
		theta := theta0 + float32(i)*dtheta
		segEnd := EllipsePos(rx, ry, phi, cx, cy, theta)
		endDeriv := ellipseDeriv(rx, ry, phi, sweep, theta)

		cp1 := start.Add(startDeriv.MulScalar(kappa))
		cp2 := segEnd.Sub(endDeriv.MulScalar(kappa))
		beziers = append(beziers, [4]math32.Vector2{start, cp1, cp2, segEnd})

		startDeriv = endDeriv
		start = segEnd
	}
	return beziers
}

// ArcToCube returns a path consisting of a MoveTo to start followed by
// cubic Bézier approximations of the given elliptical arc.
func ArcToCube(start math32.Vector2, rx, ry, phi float32, large, sweep bool, end math32.Vector2) Path {
	p := Path{}
	p.MoveTo(start.X, start.Y)
	for _, bezier := range ellipseToCubicBeziers(start, rx, ry, phi, large, sweep, end) {
		p.CubeTo(bezier[1].X, bezier[1].Y, bezier[2].X, bezier[2].Y, bezier[3].X, bezier[3].Y)
	}
	return p
}
