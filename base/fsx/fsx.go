// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides filesystem helpers.
package fsx

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Filenames returns all the file names with the given extension(s)
// in the given directory, in sorted order.
// If no extensions are provided, all file names are returned.
func Filenames(path string, exts ...string) []string {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil
	}
	var fns []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		fn := f.Name()
		if len(exts) == 0 {
			fns = append(fns, fn)
			continue
		}
		for _, ext := range exts {
			if strings.EqualFold(filepath.Ext(fn), ext) {
				fns = append(fns, fn)
				break
			}
		}
	}
	sort.Strings(fns)
	return fns
}

// FileExists checks whether the given file exists relative to the
// current working directory. It also returns an error if any is
// encountered, e.g. the path is a directory.
func FileExists(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err == nil {
		if fi.IsDir() {
			return false, fmt.Errorf("fsx.FileExists: %q is a directory", path)
		}
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
