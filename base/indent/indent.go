// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import (
	"bytes"
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// String returns a string of n tabs or n*width spaces
// depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return strings.Repeat("\t", n)
	}
	return strings.Repeat(" ", n*width)
}

// Bytes returns a []byte of n tabs or n*width spaces
// depending on the indent character.
func Bytes(ich Character, n, width int) []byte {
	if ich == Tab {
		return bytes.Repeat([]byte("\t"), n)
	}
	return bytes.Repeat([]byte(" "), n*width)
}
