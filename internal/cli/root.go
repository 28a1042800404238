// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the svgmorph command line interface.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/svgmorph/svgmorph/base/logx"
	"github.com/svgmorph/svgmorph/config"
	"github.com/svgmorph/svgmorph/envelope"
	"github.com/svgmorph/svgmorph/ppath"
	"github.com/svgmorph/svgmorph/svg"
)

// version is set at build time via -ldflags.
var version = "dev"

// Execute runs the root command, exiting non-zero on any error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options are the root command flags.
type options struct {
	ids        []string
	output     string
	configPath string
	logLevel   string
	indent     bool
	strict     bool
	precision  int
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringArrayVar(&o.ids, "id", nil, "id of an element to process; repeatable, the last one is the envelope")
	fs.StringVarP(&o.output, "output", "o", "", "write the result to this file instead of stdout")
	fs.StringVar(&o.configPath, "config", "", "config file (default "+config.DefaultFile+" beside the input)")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, or error")
	fs.BoolVar(&o.indent, "indent", true, "indent the output document")
	fs.BoolVar(&o.strict, "strict", false, "reject envelopes with more than 4 segments")
	fs.IntVar(&o.precision, "precision", 7, "significant digits in output path coordinates")
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "svgmorph --id=<LETTER> [--id=<LETTER> ...] --id=<ENVELOPE> [input.svg]",
		Short: "svgmorph squeezes SVG path geometry into a 4-sided bezier envelope",
		Long: `svgmorph deforms the geometry of the elements named by the leading
--id flags (the letters) so that it conforms to the shape of the
4-sided bezier path named by the last --id flag (the envelope).
Unless the letters are to be rotated or flipped, the envelope should
begin at the upper left corner and be drawn clockwise.

The document is read from the positional input path, or from stdin
when it is absent or "-", and written to --output or stdout.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logx.SetLevelFromString(o.logLevel); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if o.configPath == "" {
				o.configPath = config.CandidateFor(input)
			}
			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("indent") {
				cfg.Indent = o.indent
			}
			if cmd.Flags().Changed("strict") {
				cfg.Strict = o.strict
			}
			if cmd.Flags().Changed("precision") {
				cfg.Precision = o.precision
			}
			return run(input, o.output, o.ids, cfg)
		},
	}

	o.addFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// run loads the document, applies the envelope deformation, and writes
// the result. The document goes to stdout untainted; all logging goes
// to stderr.
func run(input, output string, ids []string, cfg config.Config) error {
	if len(ids) < 2 {
		return fmt.Errorf("at least two --id flags must be given: the letter(s) first, then the envelope")
	}

	sv := svg.NewSVG()
	var err error
	if input == "" || input == "-" {
		err = sv.ReadXML(bufio.NewReader(os.Stdin))
	} else {
		err = sv.OpenXML(input)
	}
	if err != nil {
		return err
	}
	slog.Debug("document loaded", "input", input, "ids", ids)

	ppath.Precision = cfg.Precision
	if err := envelope.Apply(sv, ids, cfg.Strict); err != nil {
		return err
	}

	if output == "" {
		return sv.WriteXML(os.Stdout, cfg.Indent)
	}
	fp, err := os.Create(output)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := sv.WriteXML(bw, cfg.Indent); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	slog.Debug("document written", "output", output)
	return nil
}
