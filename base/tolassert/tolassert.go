// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (i.e., in delta).
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are within a standard tolerance
// of 0.001 of each other.
func Equal(t *testing.T, expected, actual float32, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two numbers are within the given
// tolerance of each other.
func EqualTol(t *testing.T, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// EqualTolSlice asserts that the numbers in the two slices are within
// the given tolerance of each other, pairwise.
func EqualTolSlice(t *testing.T, expected, actual []float32, tolerance float32) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	res := true
	for i, ev := range expected {
		if !EqualTol(t, ev, actual[i], tolerance, "index", i) {
			res = false
		}
	}
	return res
}
