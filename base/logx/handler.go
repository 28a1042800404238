// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// handler is a [slog.Handler] whose output resembles that of [log.Logger],
// with colored level labels when the output is a terminal.
type handler struct {
	opts  slog.HandlerOptions
	goas  []groupOrAttrs
	mu    *sync.Mutex
	out   io.Writer
	color bool
}

// groupOrAttrs holds either a group name or a list of [slog.Attr]s.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// newHandler returns a new [handler] writing to the given writer.
func newHandler(out io.Writer, opts *slog.HandlerOptions) *handler {
	h := &handler{out: out, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	if f, ok := out.(*os.File); ok {
		h.color = termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
	}
	return h
}

// SetDefaultLogger sets the default logger to a [handler] on stderr
// with the current [UserLevel]. It is called in init and must be
// called again whenever [UserLevel] changes.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(newHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

func init() {
	SetDefaultLogger()
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{attrs: attrs})
}

func (h *handler) withGroupOrAttrs(goa groupOrAttrs) *handler {
	h2 := *h
	h2.goas = make([]groupOrAttrs, len(h.goas)+1)
	copy(h2.goas, h.goas)
	h2.goas[len(h2.goas)-1] = goa
	return &h2
}

// levelColor contains the ANSI color codes for each log level.
var levelColor = map[slog.Level]string{
	slog.LevelDebug: "12", // light blue
	slog.LevelInfo:  "10", // light green
	slog.LevelWarn:  "11", // light yellow
	slog.LevelError: "9",  // light red
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	buf := make([]byte, 0, 1024)
	if !r.Time.IsZero() {
		buf = append(buf, r.Time.Format(time.DateTime)...)
		buf = append(buf, ' ')
	}
	label := r.Level.String()
	if h.color {
		p := termenv.ColorProfile()
		label = termenv.String(label).Foreground(p.Color(levelColor[r.Level])).Bold().String()
	}
	buf = append(buf, label...)
	buf = append(buf, ": "...)
	buf = append(buf, r.Message...)

	goas := h.goas
	if r.NumAttrs() == 0 {
		// drop trailing empty groups
		for len(goas) > 0 && goas[len(goas)-1].group != "" {
			goas = goas[:len(goas)-1]
		}
	}
	prefix := ""
	for _, goa := range goas {
		if goa.group != "" {
			prefix += goa.group + "."
			continue
		}
		for _, a := range goa.attrs {
			buf = h.appendAttr(buf, prefix, a)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, prefix, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *handler) appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = h.appendAttr(buf, prefix+a.Key+".", ga)
		}
		return buf
	}
	buf = append(buf, ' ')
	key := prefix + a.Key
	if h.color {
		key = termenv.String(key).Faint().String()
	}
	buf = append(buf, key...)
	buf = append(buf, '=')
	switch a.Value.Kind() {
	case slog.KindString:
		buf = append(buf, strconv.Quote(a.Value.String())...)
	case slog.KindTime:
		buf = append(buf, a.Value.Time().Format(time.RFC3339)...)
	default:
		buf = append(buf, fmt.Sprint(a.Value.Any())...)
	}
	return buf
}
