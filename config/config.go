// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads tool configuration from an optional YAML file
// merged with SVGMORPH_-prefixed environment variables.
package config

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/svgmorph/svgmorph/base/errors"
	"github.com/svgmorph/svgmorph/base/fsx"
)

// DefaultFile is the config file name looked for next to the input
// document when no explicit config path is given.
const DefaultFile = "svgmorph.yaml"

// Config is the tool configuration.
type Config struct {

	// Indent indents the output document with two spaces per level.
	Indent bool `koanf:"indent"`

	// Precision is the number of significant digits in output
	// path coordinates.
	Precision int `koanf:"precision"`

	// Strict rejects envelopes with more than 4 drawing segments
	// instead of ignoring the extras.
	Strict bool `koanf:"strict"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{Indent: true, Precision: 7}
}

// Load merges the YAML file at path (if present) with env vars
// (prefix `SVGMORPH_`) over the defaults. An empty path means env and
// defaults only; a missing file is not an error, so that a default
// candidate path can be passed directly.
func Load(path string) (Config, error) {
	cfg := Defaults()
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := k.Load(env.Provider("SVGMORPH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SVGMORPH_"))
	}), nil); err != nil {
		return cfg, err
	}

	if k.Exists("indent") {
		cfg.Indent = k.Bool("indent")
	}
	if k.Exists("precision") {
		cfg.Precision = k.Int("precision")
	}
	if k.Exists("strict") {
		cfg.Strict = k.Bool("strict")
	}
	return cfg, nil
}

// CandidateFor returns the default config file path next to the given
// input document, or "" for stdin input or when no such file exists.
func CandidateFor(inputPath string) string {
	if inputPath == "" || inputPath == "-" {
		return ""
	}
	path := filepath.Join(filepath.Dir(inputPath), DefaultFile)
	if exists, err := fsx.FileExists(path); err != nil || !exists {
		return ""
	}
	return path
}
