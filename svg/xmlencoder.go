// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/svgmorph/svgmorph/base/indent"
)

// XMLEncoder is a token-based XML encoder that, unlike
// [encoding/xml.Encoder], self-closes empty elements and does not
// rewrite namespace-prefixed names, which is what SVG output needs.
type XMLEncoder struct {
	writer      *bufio.Writer
	doIndent    bool
	indBytes    []byte
	preBytes    []byte
	depth       int
	inStart     bool // start tag is open, not yet closed with '>'
	curStart    string
	noEndIndent bool // suppress indentation before the next end tag
	err         error
}

// NewXMLEncoder returns a new [XMLEncoder] writing to the given writer.
func NewXMLEncoder(wr io.Writer) *XMLEncoder {
	return &XMLEncoder{writer: bufio.NewWriter(wr)}
}

// Indent turns on indentation with the given prefix and per-level
// indent strings.
func (xe *XMLEncoder) Indent(prefix, ind string) {
	xe.doIndent = true
	xe.preBytes = []byte(prefix)
	xe.indBytes = []byte(ind)
}

// Flush flushes any pending output.
func (xe *XMLEncoder) Flush() error {
	if xe.err != nil {
		return xe.err
	}
	return xe.writer.Flush()
}

func (xe *XMLEncoder) writeString(str string) {
	if xe.err != nil {
		return
	}
	_, xe.err = xe.writer.WriteString(str)
}

func (xe *XMLEncoder) writeIndent() {
	if !xe.doIndent {
		return
	}
	xe.writeString("\n")
	xe.writer.Write(xe.preBytes)
	if xe.depth > 0 {
		xe.writer.Write(indent.Bytes(indent.Space, xe.depth, len(xe.indBytes)))
	}
}

// EncodeToken writes the given token. Start elements are left open so
// that [XMLEncoder.WriteEnd] can self-close elements with no content.
func (xe *XMLEncoder) EncodeToken(t xml.Token) error {
	switch se := t.(type) {
	case xml.StartElement:
		xe.closeStart()
		if xe.depthWritten() {
			xe.writeIndent()
		}
		xe.writeString("<" + se.Name.Local)
		for _, at := range se.Attr {
			xe.writeString(" " + at.Name.Local + "=\"" + escapeAttr(at.Value) + "\"")
		}
		xe.inStart = true
		xe.curStart = se.Name.Local
		xe.depth++
	case xml.CharData:
		xe.closeStart()
		var esc strings.Builder
		xml.EscapeText(&esc, []byte(se))
		xe.writeString(esc.String())
		xe.noEndIndent = true
	case xml.EndElement:
		xe.WriteEnd(se.Name.Local)
	default:
		return fmt.Errorf("svg.XMLEncoder: unsupported token %T", t)
	}
	return xe.err
}

// WriteEnd writes the end tag for the element with the given name,
// self-closing it if it has no content.
func (xe *XMLEncoder) WriteEnd(name string) error {
	if name == "" {
		return nil
	}
	xe.depth--
	if xe.inStart && xe.curStart == name {
		xe.writeString(" />")
		xe.inStart = false
		xe.curStart = ""
		xe.noEndIndent = false
		return xe.err
	}
	xe.closeStart()
	if !xe.noEndIndent {
		xe.writeIndent()
	}
	xe.noEndIndent = false
	xe.writeString("</" + name + ">")
	return xe.err
}

// WriteComment writes an XML comment with the given content.
func (xe *XMLEncoder) WriteComment(text string) error {
	xe.closeStart()
	if xe.depthWritten() {
		xe.writeIndent()
	}
	xe.writeString("<!--" + text + "-->")
	return xe.err
}

func (xe *XMLEncoder) closeStart() {
	if xe.inStart {
		xe.writeString(">")
		xe.inStart = false
		xe.curStart = ""
	}
}

func (xe *XMLEncoder) depthWritten() bool {
	return xe.writer.Buffered() > 0
}

func escapeAttr(val string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(val))
	return sb.String()
}
