// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/svgmorph/svgmorph/math32"
)

// ParseSVGPath parses an SVG path data string and returns the
// corresponding [Path]. It supports all standard SVG path commands:
// M, L, H, V, Q, T, C, S, A, and Z, in both absolute (uppercase) and
// relative (lowercase) forms, with implicit command repetition.
func ParseSVGPath(s string) (Path, error) {
	if len(s) == 0 {
		return Path{}, nil
	}

	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == ',' || s[i] == '\n' || s[i] == '\r' || s[i] == '\t') {
		i++
	}
	if i == len(s) {
		return Path{}, nil
	}
	if !cmdKnown(s[i]) {
		return nil, fmt.Errorf("ppath: bad path, does not start with a command: %q", s)
	}

	var prevCmd byte
	cpx, cpy := float32(0.0), float32(0.0) // control point of previous Q/T or C/S

	p := Path{}
	var start, pos math32.Vector2
	for i < len(s) {
		parseFlags := false
		cmd := prevCmd
		if cmdKnown(s[i]) {
			cmd = s[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("ppath: bad path, unknown command at position %d: %q", i, s)
		} else if cmd == 'M' {
			cmd = 'L' // implicit repetition of MoveTo is LineTo
		} else if cmd == 'm' {
			cmd = 'l'
		}

		n := cmdNumValues(cmd)
		f := [7]float32{}
		for j := 0; j < n; j++ {
			// the two boolean flags of A may run together with the
			// following numbers without separators
			if (cmd == 'A' || cmd == 'a') && (j == 3 || j == 4) {
				parseFlags = true
			} else {
				parseFlags = false
			}
			num, ni, err := parseNum(s, i, parseFlags)
			if err != nil {
				return nil, fmt.Errorf("ppath: bad path at position %d: %w", i, err)
			}
			f[j] = num
			i = ni
		}

		rel := 'a' <= cmd && cmd <= 'z'
		switch cmd {
		case 'M', 'm':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
			}
			p.MoveTo(f[0], f[1])
			pos = math32.Vec2(f[0], f[1])
			start = pos
		case 'L', 'l':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
			}
			p.LineTo(f[0], f[1])
			pos = math32.Vec2(f[0], f[1])
		case 'H', 'h':
			if rel {
				f[0] += pos.X
			}
			p.LineTo(f[0], pos.Y)
			pos.X = f[0]
		case 'V', 'v':
			if rel {
				f[0] += pos.Y
			}
			p.LineTo(pos.X, f[0])
			pos.Y = f[0]
		case 'Q', 'q':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
			}
			p.QuadTo(f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
			pos = math32.Vec2(f[2], f[3])
		case 'T', 't':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
			}
			cx, cy := pos.X, pos.Y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cx = 2*pos.X - cpx
				cy = 2*pos.Y - cpy
			}
			p.QuadTo(cx, cy, f[0], f[1])
			cpx, cpy = cx, cy
			pos = math32.Vec2(f[0], f[1])
		case 'C', 'c':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
				f[4] += pos.X
				f[5] += pos.Y
			}
			p.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
			cpx, cpy = f[2], f[3]
			pos = math32.Vec2(f[4], f[5])
		case 'S', 's':
			if rel {
				f[0] += pos.X
				f[1] += pos.Y
				f[2] += pos.X
				f[3] += pos.Y
			}
			cx, cy := pos.X, pos.Y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cx = 2*pos.X - cpx
				cy = 2*pos.Y - cpy
			}
			p.CubeTo(cx, cy, f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
			pos = math32.Vec2(f[2], f[3])
		case 'A', 'a':
			if rel {
				f[5] += pos.X
				f[6] += pos.Y
			}
			large := f[3] != 0
			sweep := f[4] != 0
			p.ArcToDeg(f[0], f[1], f[2], large, sweep, f[5], f[6])
			pos = math32.Vec2(f[5], f[6])
		case 'Z', 'z':
			p.Close()
			pos = start
		}
		prevCmd = cmd
		for i < len(s) && (s[i] == ' ' || s[i] == ',' || s[i] == '\n' || s[i] == '\r' || s[i] == '\t') {
			i++
		}
	}
	return p, nil
}

// MustParseSVGPath parses an SVG path data string and panics on error.
// It is intended for tests and static path constants.
func MustParseSVGPath(s string) Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

func cmdKnown(b byte) bool {
	switch b {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'T', 't', 'C', 'c', 'S', 's', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func cmdNumValues(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'Q', 'q', 'S', 's':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	}
	return 0
}

// parseNum parses one number starting at or after position i.
// When isFlag is set, only a single 0 or 1 digit is consumed,
// per the SVG arc flag grammar.
func parseNum(s string, i int, isFlag bool) (float32, int, error) {
	for i < len(s) && (s[i] == ' ' || s[i] == ',' || s[i] == '\n' || s[i] == '\r' || s[i] == '\t') {
		i++
	}
	if i == len(s) {
		return 0, i, fmt.Errorf("unexpected end of number data")
	}
	if isFlag {
		switch s[i] {
		case '0':
			return 0, i + 1, nil
		case '1':
			return 1, i + 1, nil
		}
		return 0, i, fmt.Errorf("bad arc flag: %q", s[i])
	}
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	for j < len(s) && '0' <= s[j] && s[j] <= '9' {
		j++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		j++
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		for j < len(s) && '0' <= s[j] && s[j] <= '9' {
			j++
		}
	}
	if j == i {
		return 0, i, fmt.Errorf("expected number at position %d", i)
	}
	num, err := strconv.ParseFloat(s[i:j], 32)
	if err != nil {
		return 0, i, err
	}
	return float32(num), j, nil
}

// ToSVG returns the SVG path data string that represents the path,
// using absolute commands and [Precision] significant digits.
func (p Path) ToSVG() string {
	if p.Empty() {
		return ""
	}
	sb := strings.Builder{}
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case MoveTo:
			sb.WriteByte('M')
			writeNums(&sb, end.X, end.Y)
		case LineTo:
			sb.WriteByte('L')
			writeNums(&sb, end.X, end.Y)
		case QuadTo:
			cp := s.CP1()
			sb.WriteByte('Q')
			writeNums(&sb, cp.X, cp.Y, end.X, end.Y)
		case CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			sb.WriteByte('C')
			writeNums(&sb, cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		case ArcTo:
			rx, ry, rot, large, sweep := s.Arc()
			sb.WriteByte('A')
			writeNums(&sb, rx, ry, math32.RadToDeg(rot))
			sb.WriteByte(' ')
			sb.WriteString(arcFlag(large))
			sb.WriteByte(' ')
			sb.WriteString(arcFlag(sweep))
			writeNums(&sb, end.X, end.Y)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func arcFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeNums(sb *strings.Builder, nums ...float32) {
	for i, n := range nums {
		if i > 0 {
			sb.WriteByte(',')
		} else if sb.Len() > 0 {
			last := sb.String()[sb.Len()-1]
			if last != 'M' && last != 'L' && last != 'Q' && last != 'C' && last != 'A' {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.FormatFloat(float64(math32.Truncate(n, Precision)), 'g', -1, 32))
	}
}
