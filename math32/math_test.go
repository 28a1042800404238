// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat32(t *testing.T) {
	tests := []struct {
		str     string
		want    float32
		wantErr bool
	}{
		{"3.25", 3.25, false},
		{"  -1e2 ", -100, false},
		{"none", 0, false},
		{"", 0, false},
		{"4.5px", 0, true},
		{"off", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFloat32(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
		} else {
			assert.NoError(t, err, tt.str)
			assert.Equal(t, tt.want, got, tt.str)
		}
	}
}

func TestReadPoints(t *testing.T) {
	assert.Equal(t, []float32{1, 2, 3, 4}, ReadPoints("1,2 3,4"))
	assert.Equal(t, []float32{1.5, -2}, ReadPoints(" 1.5, -2 "))
	assert.Nil(t, ReadPoints(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, float32(3.14), Truncate(3.14159, 3))
	assert.Equal(t, float32(100), Truncate(99.99999, 4))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(10, 0, 5))
	assert.Equal(t, float32(0), Clamp(-10, 0, 5))
	assert.Equal(t, float32(3), Clamp(3, 0, 5))
	assert.Equal(t, float32(2.5), Lerp(0, 5, 0.5))
}
