// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix2 is a 3x2 affine transformation matrix in the SVG / PostScript
// column layout:
//
//	XX XY X0
//	YX YY Y0
//
// The identity transform leaves points unchanged; X0, Y0 carry translation.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a [Matrix2] that translates by (x, y).
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a [Matrix2] that scales by (x, y).
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a [Matrix2] that rotates counterclockwise by the
// given angle in radians (clockwise in standard SVG y-down coordinates).
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mul returns this matrix multiplied with the other given matrix.
// Multiplication order is the *reverse* of the logical application
// order: Translate2D(...).Mul(Rotate2D(...)) rotates first.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*other.XX + m.XY*other.YX,
		YX: m.YX*other.XX + m.YY*other.YX,
		XY: m.XX*other.XY + m.XY*other.YY,
		YY: m.YX*other.XY + m.YY*other.YY,
		X0: m.XX*other.X0 + m.XY*other.Y0 + m.X0,
		Y0: m.YX*other.X0 + m.YY*other.Y0 + m.Y0,
	}
}

// SetMul sets this matrix to itself multiplied by the other.
func (m *Matrix2) SetMul(other Matrix2) {
	*m = m.Mul(other)
}

// Translate returns this matrix composed with a translation by (x, y).
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns this matrix composed with a scale by (x, y).
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns this matrix composed with a rotation by angle radians.
func (m Matrix2) Rotate(angle float32) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// MulVector2AsVector multiplies the given vector by this matrix as a
// vector, i.e. without applying translation.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{
		m.XX*v.X + m.XY*v.Y,
		m.YX*v.X + m.YY*v.Y,
	}
}

// MulVector2AsPoint multiplies the given vector by this matrix as a
// point, i.e. including translation.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		m.XX*v.X + m.XY*v.Y + m.X0,
		m.YX*v.X + m.YY*v.Y + m.Y0,
	}
}

// Det returns the determinant of this matrix.
func (m Matrix2) Det() float32 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of this matrix.
// A matrix with zero determinant returns the identity.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Det()
	if det == 0 {
		return Identity2()
	}
	inv := 1 / det
	return Matrix2{
		XX: inv * m.YY,
		YX: -inv * m.YX,
		XY: -inv * m.XY,
		YY: inv * m.XX,
		X0: inv * (m.XY*m.Y0 - m.YY*m.X0),
		Y0: inv * (m.YX*m.X0 - m.XX*m.Y0),
	}
}

// Transpose returns the transpose of the linear part of this matrix,
// with the translation zeroed.
func (m Matrix2) Transpose() Matrix2 {
	m.XY, m.YX = m.YX, m.XY
	m.X0 = 0
	m.Y0 = 0
	return m
}

// Eigen returns the eigenvalues and eigenvectors of the linear part
// of this matrix. The first eigenvalue is related to the first
// eigenvector, and so for the second pair. Eigenvectors are normalized.
func (m Matrix2) Eigen() (lambda1, lambda2 float32, v1, v2 Vector2) {
	if Abs(m.YX) < 1e-7 && Abs(m.XY) < 1e-7 {
		return m.XX, m.YY, Vector2{1, 0}, Vector2{0, 1}
	}

	lambda1, lambda2 = solveQuadraticFormula(1.0, -m.XX-m.YY, m.Det())
	if IsNaN(lambda1) && IsNaN(lambda2) {
		// either m.XX or m.YY is NaN or the the affine matrix has no real eigenvalues
		return
	} else if IsNaN(lambda2) {
		lambda2 = lambda1
	}

	// see https://en.wikipedia.org/wiki/Eigenvalue_algorithm
	if Abs(m.YX) > 1e-7 {
		v1 = Vector2{lambda1 - m.YY, m.YX}.Normal()
		v2 = Vector2{lambda2 - m.YY, m.YX}.Normal()
	} else if Abs(m.XY) > 1e-7 {
		v1 = Vector2{m.XY, lambda1 - m.XX}.Normal()
		v2 = Vector2{m.XY, lambda2 - m.XX}.Normal()
	}
	return
}

// solveQuadraticFormula returns the real roots of ax^2 + bx + c = 0,
// using the numerically stable citardauq formula. The first root is
// always the smallest; NaN is returned for roots that do not exist.
func solveQuadraticFormula(a, b, c float32) (x1, x2 float32) {
	if a == 0 {
		if b == 0 {
			if c == 0 {
				// all terms disappear, all x satisfy the solution
				x1 = 0
				x2 = NaN()
				return
			}
			// linear term disappears, no solutions
			x1 = NaN()
			x2 = NaN()
			return
		}
		// quadratic term disappears, solve linear equation
		x1 = -c / b
		x2 = NaN()
		return
	}

	if c == 0 {
		// no constant term, one solution at zero and one from solving linearly
		x1 = 0
		x2 = -b / a
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		x1 = NaN()
		x2 = NaN()
		return
	} else if discriminant == 0 {
		x1 = -b / (2 * a)
		x2 = NaN()
		return
	}

	// Avoid catastrophic cancellation
	q := Sqrt(discriminant)
	if b < 0 {
		q = -q
	}
	q = -0.5 * (b + q)
	x1 = q / a
	x2 = c / q
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return
}

// ExtractRot extracts the rotation angle in radians from this matrix.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(m.YX, m.XX)
}

// ExtractScale extracts the x and y scale factors from this matrix.
func (m Matrix2) ExtractScale() (scx, scy float32) {
	scx = Vector2{m.XX, m.YX}.Length()
	scy = Vector2{m.XY, m.YY}.Length()
	if m.Det() < 0 {
		scx = -scx
	}
	return
}

// SetString processes the standard SVG-style transform strings:
// none, matrix(a,b,c,d,e,f), translate(x[,y]), scale(x[,y]),
// rotate(angle[,cx,cy]). Multiple space-separated transforms
// compose left-to-right.
func (m *Matrix2) SetString(str string) error {
	*m = Identity2()
	str = strings.TrimSpace(str)
	if str == "none" || str == "" {
		return nil
	}
	errmsg := "math32.Matrix2.SetString"
	str = strings.ToLower(str)
	for str != "" {
		lp := strings.IndexByte(str, '(')
		rp := strings.IndexByte(str, ')')
		if lp < 0 || rp < lp {
			return fmt.Errorf("%s: no params for transform: %q", errmsg, str)
		}
		cmd := strings.TrimSpace(str[:lp])
		vals := ReadPoints(str[lp+1 : rp])
		str = strings.TrimSpace(strings.TrimPrefix(str[rp+1:], ","))
		switch cmd {
		case "matrix":
			if len(vals) != 6 {
				return fmt.Errorf("%s: matrix needs 6 values, got %d", errmsg, len(vals))
			}
			m.SetMul(Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]})
		case "translate":
			switch len(vals) {
			case 1:
				m.SetMul(Translate2D(vals[0], 0))
			case 2:
				m.SetMul(Translate2D(vals[0], vals[1]))
			default:
				return fmt.Errorf("%s: translate needs 1 or 2 values, got %d", errmsg, len(vals))
			}
		case "scale":
			switch len(vals) {
			case 1:
				m.SetMul(Scale2D(vals[0], vals[0]))
			case 2:
				m.SetMul(Scale2D(vals[0], vals[1]))
			default:
				return fmt.Errorf("%s: scale needs 1 or 2 values, got %d", errmsg, len(vals))
			}
		case "rotate":
			switch len(vals) {
			case 1:
				m.SetMul(Rotate2D(DegToRad(vals[0])))
			case 3:
				m.SetMul(Translate2D(vals[1], vals[2]).Rotate(DegToRad(vals[0])).Translate(-vals[1], -vals[2]))
			default:
				return fmt.Errorf("%s: rotate needs 1 or 3 values, got %d", errmsg, len(vals))
			}
		default:
			return fmt.Errorf("%s: unknown transform: %q", errmsg, cmd)
		}
	}
	return nil
}

// String returns the SVG-style transform string representation
// of this matrix: none, translate(x,y), scale(x,y),
// translate(x,y) scale(x,y), or the full matrix(a,b,c,d,e,f).
func (m Matrix2) String() string {
	if m == Identity2() {
		return "none"
	}
	if m.YX == 0 && m.XY == 0 { // no rotation
		if m.X0 == 0 && m.Y0 == 0 { // no translation
			return fmt.Sprintf("scale(%g,%g)", m.XX, m.YY)
		}
		if m.XX == 1 && m.YY == 1 { // no scale
			return fmt.Sprintf("translate(%g,%g)", m.X0, m.Y0)
		}
		return fmt.Sprintf("translate(%g,%g) scale(%g,%g)", m.X0, m.Y0, m.XX, m.YY)
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}
