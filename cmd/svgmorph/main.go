// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgmorph deforms SVG path geometry so that it conforms to
// the shape of a 4-sided bezier envelope path.
package main

import (
	"github.com/svgmorph/svgmorph/internal/cli"
)

func main() {
	cli.Execute()
}
