// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Indent)
	assert.Equal(t, 7, cfg.Precision)
	assert.False(t, cfg.Strict)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("indent: false\nprecision: 3\n"), 0666))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Indent)
	assert.Equal(t, 3, cfg.Precision)

	// a missing candidate file is not an error
	cfg, err = Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Indent)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SVGMORPH_STRICT", "true")
	t.Setenv("SVGMORPH_PRECISION", "4")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 4, cfg.Precision)
}

func TestCandidateFor(t *testing.T) {
	assert.Equal(t, "", CandidateFor(""))
	assert.Equal(t, "", CandidateFor("-"))

	dir := t.TempDir()
	input := filepath.Join(dir, "in.svg")
	assert.Equal(t, "", CandidateFor(input)) // no config beside the input

	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("strict: true\n"), 0666))
	assert.Equal(t, path, CandidateFor(input))
}
