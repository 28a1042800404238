// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// svg parsing is adapted from github.com/srwiley/oksvg:
//
// Copyright 2017 The oksvg Authors. All rights reserved.
//
// created: 2/12/2017 by S.R.Wiley

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/svgmorph/svgmorph/base/errors"
	"github.com/svgmorph/svgmorph/math32"
	"golang.org/x/net/html/charset"
)

// this file contains all the IO-related parsing etc routines

var (
	errParamMismatch = errors.New("svg parse: param mismatch")
)

// namespacePrefixes maps the namespace URLs that the xml decoder
// substitutes for prefixes back to their conventional prefixes,
// so that Inkscape documents survive a round trip.
var namespacePrefixes = map[string]string{
	"http://www.inkscape.org/namespaces/inkscape":     "inkscape",
	"http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd": "sodipodi",
	"http://www.w3.org/1999/xlink":                    "xlink",
	"http://www.w3.org/XML/1998/namespace":            "xml",
	"http://purl.org/dc/elements/1.1/":                "dc",
	"http://creativecommons.org/ns#":                  "cc",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#":     "rdf",
}

// xmlName reconstructs the prefixed name for the given [xml.Name],
// undoing the decoder's prefix-to-URL substitution.
func xmlName(n xml.Name) string {
	if n.Space == "" || n.Space == "http://www.w3.org/2000/svg" {
		return n.Local
	}
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	if pfx, has := namespacePrefixes[n.Space]; has {
		return pfx + ":" + n.Local
	}
	if !strings.Contains(n.Space, "/") { // undeclared prefix kept verbatim
		return n.Space + ":" + n.Local
	}
	return n.Local
}

// OpenXML opens XML-formatted SVG input from the given file.
func (sv *SVG) OpenXML(fname string) error {
	fi, err := os.Stat(fname)
	if err != nil {
		return errors.Log(err)
	}
	if fi.IsDir() {
		return errors.Log(fmt.Errorf("svg.OpenXML: file is a directory: %v", fname))
	}
	fp, err := os.Open(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return sv.ReadXML(bufio.NewReader(fp))
}

// OpenFS opens XML-formatted SVG input from given file in the given filesystem.
func (sv *SVG) OpenFS(fsys fs.FS, fname string) error {
	fp, err := fsys.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	return sv.ReadXML(bufio.NewReader(fp))
}

// ReadXML reads XML-formatted SVG input from io.Reader, and uses
// xml.Decoder to create the SVG tree for the corresponding SVG drawing.
// Removes any existing content in SVG first. To process a byte slice, pass:
// bytes.NewReader([]byte(str)).
func (sv *SVG) ReadXML(reader io.Reader) error {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return fmt.Errorf("svg parse: no svg element found")
			}
			return errors.Log(err)
		}
		if se, ok := t.(xml.StartElement); ok {
			return sv.UnmarshalXML(decoder, se)
		}
	}
}

// UnmarshalXML unmarshals the svg using the given xml.Decoder,
// starting from the given top-level start element.
func (sv *SVG) UnmarshalXML(decoder *xml.Decoder, se xml.StartElement) error {
	if se.Name.Local != "svg" {
		return fmt.Errorf("svg parse: root element is %q, not svg", se.Name.Local)
	}

	sv.DeleteAll()

	for _, attr := range se.Attr {
		switch xmlName(attr.Name) {
		case "viewBox":
			pts := math32.ReadPoints(attr.Value)
			if len(pts) != 4 {
				return errParamMismatch
			}
			sv.Root.ViewBox.Min.Set(pts[0], pts[1])
			sv.Root.ViewBox.Size.Set(pts[2], pts[3])
		case "width":
			sv.PhysicalWidth = attr.Value
		case "height":
			sv.PhysicalHeight = attr.Value
		case "id":
			sv.Root.Name = attr.Value
		default:
			sv.Root.SetProperty(xmlName(attr.Name), attr.Value)
		}
	}

	// stack of open container elements; the svg element itself is
	// represented by sv.Root and popped at its end tag
	stack := []Node{sv.Root}

	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return errors.Log(err)
		}
		curPar := stack[len(stack)-1]
		switch se := t.(type) {
		case xml.StartElement:
			nm := xmlName(se.Name)
			var n Node
			switch nm {
			case "defs":
				setNodeAttrs(sv.Defs, se.Attr)
				stack = append(stack, sv.Defs)
				continue
			case "g":
				n = NewGroup(curPar)
			case "path":
				path := NewPath(curPar)
				n = path
				for _, attr := range se.Attr {
					if attr.Name.Local == "d" {
						if err := path.SetData(attr.Value); err != nil {
							return err
						}
					}
				}
			case "rect":
				rect := NewRect(curPar)
				n = rect
				var x, y, w, h, rx, ry float32
				for _, attr := range se.Attr {
					switch attr.Name.Local {
					case "x":
						x, err = math32.ParseFloat32(attr.Value)
					case "y":
						y, err = math32.ParseFloat32(attr.Value)
					case "width":
						w, err = math32.ParseFloat32(attr.Value)
					case "height":
						h, err = math32.ParseFloat32(attr.Value)
					case "rx":
						rx, err = math32.ParseFloat32(attr.Value)
					case "ry":
						ry, err = math32.ParseFloat32(attr.Value)
					}
					if err != nil {
						return errors.Log(err)
					}
				}
				rect.Pos.Set(x, y)
				rect.Size.Set(w, h)
				rect.Radius.Set(rx, ry)
			case "circle":
				circle := NewCircle(curPar)
				n = circle
				var cx, cy, r float32
				for _, attr := range se.Attr {
					switch attr.Name.Local {
					case "cx":
						cx, err = math32.ParseFloat32(attr.Value)
					case "cy":
						cy, err = math32.ParseFloat32(attr.Value)
					case "r":
						r, err = math32.ParseFloat32(attr.Value)
					}
					if err != nil {
						return errors.Log(err)
					}
				}
				circle.Pos.Set(cx, cy)
				circle.Radius = r
			case "ellipse":
				ellipse := NewEllipse(curPar)
				n = ellipse
				var cx, cy, rx, ry float32
				for _, attr := range se.Attr {
					switch attr.Name.Local {
					case "cx":
						cx, err = math32.ParseFloat32(attr.Value)
					case "cy":
						cy, err = math32.ParseFloat32(attr.Value)
					case "rx":
						rx, err = math32.ParseFloat32(attr.Value)
					case "ry":
						ry, err = math32.ParseFloat32(attr.Value)
					}
					if err != nil {
						return errors.Log(err)
					}
				}
				ellipse.Pos.Set(cx, cy)
				ellipse.Radii.Set(rx, ry)
			case "line":
				line := NewLine(curPar)
				n = line
				var x1, y1, x2, y2 float32
				for _, attr := range se.Attr {
					switch attr.Name.Local {
					case "x1":
						x1, err = math32.ParseFloat32(attr.Value)
					case "y1":
						y1, err = math32.ParseFloat32(attr.Value)
					case "x2":
						x2, err = math32.ParseFloat32(attr.Value)
					case "y2":
						y2, err = math32.ParseFloat32(attr.Value)
					}
					if err != nil {
						return errors.Log(err)
					}
				}
				line.Start.Set(x1, y1)
				line.End.Set(x2, y2)
			case "polygon":
				polygon := NewPolygon(curPar)
				n = polygon
				for _, attr := range se.Attr {
					if attr.Name.Local == "points" {
						pts, err := readPointPairs(attr.Value)
						if err != nil {
							return errors.Log(err)
						}
						polygon.Points = pts
					}
				}
			case "polyline":
				polyline := NewPolyline(curPar)
				n = polyline
				for _, attr := range se.Attr {
					if attr.Name.Local == "points" {
						pts, err := readPointPairs(attr.Value)
						if err != nil {
							return errors.Log(err)
						}
						polyline.Points = pts
					}
				}
			case "text", "tspan":
				text := NewText(curPar)
				n = text
				var x, y float32
				for _, attr := range se.Attr {
					switch attr.Name.Local {
					case "x":
						x, err = math32.ParseFloat32(attr.Value)
					case "y":
						y, err = math32.ParseFloat32(attr.Value)
					}
					if err != nil {
						return errors.Log(err)
					}
				}
				text.Pos.Set(x, y)
			default:
				n = NewGeneric(curPar, nm)
			}
			setNodeAttrs(n, se.Attr)
			stack = append(stack, n)
		case xml.EndElement:
			nm := xmlName(se.Name)
			if nm == "svg" {
				return nil
			}
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			txt := string(se)
			if strings.TrimSpace(txt) == "" {
				break
			}
			switch x := curPar.(type) {
			case *Text:
				x.Text += txt
			case *Generic:
				x.Text += txt
			}
		case xml.Comment:
			NewComment(curPar, string(se))
		}
	}
	return nil
}

// setNodeAttrs sets the id, class, and remaining properties of the
// node from the given attributes, skipping the geometry attributes
// already consumed by the element handlers.
func setNodeAttrs(n Node, attrs []xml.Attr) {
	nb := n.AsNodeBase()
	skip := geomAttrs[n.SVGName()]
	for _, attr := range attrs {
		nm := xmlName(attr.Name)
		if skip != nil && skip[nm] {
			continue
		}
		switch nm {
		case "id":
			nb.Name = attr.Value
		case "class":
			nb.Class = attr.Value
		default:
			nb.SetProperty(nm, attr.Value)
		}
	}
}

// geomAttrs are the attributes per element that are parsed into
// node fields and must not also be kept as generic properties.
var geomAttrs = map[string]map[string]bool{
	"path":     {"d": true},
	"rect":     {"x": true, "y": true, "width": true, "height": true, "rx": true, "ry": true},
	"circle":   {"cx": true, "cy": true, "r": true},
	"ellipse":  {"cx": true, "cy": true, "rx": true, "ry": true},
	"line":     {"x1": true, "y1": true, "x2": true, "y2": true},
	"polygon":  {"points": true},
	"polyline": {"points": true},
	"text":     {"x": true, "y": true},
	"tspan":    {"x": true, "y": true},
}

// readPointPairs parses a polygon / polyline points attribute.
func readPointPairs(val string) ([]math32.Vector2, error) {
	pts := math32.ReadPoints(val)
	if pts == nil {
		return nil, nil
	}
	sz := len(pts)
	if sz%2 != 0 {
		return nil, fmt.Errorf("svg parse: odd number of point coordinates: %v str: %v", sz, val)
	}
	pvec := make([]math32.Vector2, sz/2)
	for ci := 0; ci < sz/2; ci++ {
		pvec[ci].Set(pts[ci*2], pts[ci*2+1])
	}
	return pvec, nil
}

//////// Writing

// SaveXML saves the svg to an XML-encoded file, using [SVG.WriteXML].
func (sv *SVG) SaveXML(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err = sv.WriteXML(bw, true); err != nil {
		return errors.Log(err)
	}
	return errors.Log(bw.Flush())
}

// WriteXML writes XML-formatted SVG output to the given io.Writer,
// using [XMLEncoder].
func (sv *SVG) WriteXML(wr io.Writer, indent bool) error {
	enc := NewXMLEncoder(wr)
	if indent {
		enc.Indent("", "  ")
	}
	if err := sv.marshalXML(enc); err != nil {
		return err
	}
	return enc.Flush()
}

// XMLAddAttr adds a new attribute to the given attribute list.
func XMLAddAttr(attr *[]xml.Attr, name, val string) {
	at := xml.Attr{}
	at.Name.Local = name
	at.Value = val
	*attr = append(*attr, at)
}

// marshalXML marshals the whole document using the given encoder.
func (sv *SVG) marshalXML(enc *XMLEncoder) error {
	me := xml.StartElement{}
	me.Name.Local = "svg"
	if sv.Root.Name != "" {
		XMLAddAttr(&me.Attr, "id", sv.Root.Name)
	}
	if sv.PhysicalWidth != "" {
		XMLAddAttr(&me.Attr, "width", sv.PhysicalWidth)
	}
	if sv.PhysicalHeight != "" {
		XMLAddAttr(&me.Attr, "height", sv.PhysicalHeight)
	}
	if sv.Root.ViewBox.HasViewBox() {
		XMLAddAttr(&me.Attr, "viewBox", sv.Root.ViewBox.String())
	}
	hasXmlns := false
	for _, k := range sv.Root.PropertyOrder() {
		v := fmt.Sprintf("%v", sv.Root.Properties[k])
		if k == "xmlns" {
			hasXmlns = true
		}
		XMLAddAttr(&me.Attr, k, v)
	}
	if !hasXmlns {
		XMLAddAttr(&me.Attr, "xmlns", "http://www.w3.org/2000/svg")
	}
	if err := enc.EncodeToken(me); err != nil {
		return err
	}

	if len(sv.Defs.Children) > 0 {
		dnm, err := MarshalXMLTree(sv.Defs, enc, "defs")
		if err != nil {
			return err
		}
		enc.WriteEnd(dnm)
	}

	for _, k := range sv.Root.Children {
		knm, err := MarshalXMLTree(k, enc, "")
		if knm != "" {
			enc.WriteEnd(knm)
		}
		if err != nil {
			return err
		}
	}

	return enc.EncodeToken(xml.EndElement{Name: me.Name})
}

// MarshalXMLTree encodes the given node and any children to XML.
// It returns any error, and name of element that enc.WriteEnd() should
// be called with.
func MarshalXMLTree(n Node, enc *XMLEncoder, setName string) (string, error) {
	name := MarshalXML(n, enc, setName)
	if name == "" {
		return "", nil
	}
	for _, k := range n.AsNodeBase().Children {
		knm, err := MarshalXMLTree(k, enc, "")
		if knm != "" {
			enc.WriteEnd(knm)
		}
		if err != nil {
			return name, err
		}
	}
	return name, nil
}

// MarshalXML encodes just the given node to XML.
// It returns the name of the node, for the end tag; if empty,
// the node produced no output.
func MarshalXML(n Node, enc *XMLEncoder, setName string) string {
	if n == nil {
		return ""
	}
	if c, ok := n.(*Comment); ok {
		enc.WriteComment(c.Text)
		return ""
	}
	nb := n.AsNodeBase()
	se := xml.StartElement{}
	if nb.Name != "" {
		XMLAddAttr(&se.Attr, "id", nb.Name)
	}
	if nb.Class != "" {
		XMLAddAttr(&se.Attr, "class", nb.Class)
	}
	text := "" // if non-empty, contains text to write out

	nm := n.SVGName()
	switch nd := n.(type) {
	case *Path:
		XMLAddAttr(&se.Attr, "d", nd.Data.ToSVG())
	case *Rect:
		XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "width", fmt.Sprintf("%g", nd.Size.X))
		XMLAddAttr(&se.Attr, "height", fmt.Sprintf("%g", nd.Size.Y))
		if nd.Radius.X != 0 {
			XMLAddAttr(&se.Attr, "rx", fmt.Sprintf("%g", nd.Radius.X))
		}
		if nd.Radius.Y != 0 {
			XMLAddAttr(&se.Attr, "ry", fmt.Sprintf("%g", nd.Radius.Y))
		}
	case *Circle:
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "r", fmt.Sprintf("%g", nd.Radius))
	case *Ellipse:
		XMLAddAttr(&se.Attr, "cx", fmt.Sprintf("%g", nd.Pos.X))
		XMLAddAttr(&se.Attr, "cy", fmt.Sprintf("%g", nd.Pos.Y))
		XMLAddAttr(&se.Attr, "rx", fmt.Sprintf("%g", nd.Radii.X))
		XMLAddAttr(&se.Attr, "ry", fmt.Sprintf("%g", nd.Radii.Y))
	case *Line:
		XMLAddAttr(&se.Attr, "x1", fmt.Sprintf("%g", nd.Start.X))
		XMLAddAttr(&se.Attr, "y1", fmt.Sprintf("%g", nd.Start.Y))
		XMLAddAttr(&se.Attr, "x2", fmt.Sprintf("%g", nd.End.X))
		XMLAddAttr(&se.Attr, "y2", fmt.Sprintf("%g", nd.End.Y))
	case *Polygon:
		XMLAddAttr(&se.Attr, "points", pointsString(nd.Points))
	case *Polyline:
		XMLAddAttr(&se.Attr, "points", pointsString(nd.Points))
	case *Text:
		if nd.Pos != (math32.Vector2{}) {
			XMLAddAttr(&se.Attr, "x", fmt.Sprintf("%g", nd.Pos.X))
			XMLAddAttr(&se.Attr, "y", fmt.Sprintf("%g", nd.Pos.Y))
		}
		text = nd.Text
	case *Generic:
		text = nd.Text
	}

	for _, k := range nb.PropertyOrder() {
		XMLAddAttr(&se.Attr, k, fmt.Sprintf("%v", nb.Properties[k]))
	}

	se.Name.Local = nm
	if setName != "" {
		se.Name.Local = setName
	}
	enc.EncodeToken(se)
	if text != "" {
		enc.EncodeToken(xml.CharData([]byte(text)))
	}
	return se.Name.Local
}

func pointsString(points []math32.Vector2) string {
	sb := strings.Builder{}
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%g,%g", p.X, p.Y))
	}
	return sb.String()
}
