// Package svg writes stroke-only SVG documents.
//
// A Document mirrors the immediate-mode drawing API of gg's Recorder
// (SetStrokeRGBA, SetLineWidth, MoveTo, LineTo, DrawRoundedRectangle, Stroke)
// but keeps rectangles as <rect> elements instead of flattening them into
// curves, which is what laser and vinyl cutters expect.
//
//	doc := svg.New(100, 100)
//	doc.SetStrokeRGB(0, 0, 1)
//	doc.SetLineWidth(0.2)
//	doc.MoveTo(0, 50)
//	doc.LineTo(100, 50)
//	doc.Stroke()
//	err := doc.SaveToFile("out.svg")
//
// Serialization is deterministic: identical drawing calls produce identical
// bytes.
package svg

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
)

// Document is an SVG drawing under construction.
// A Document is not safe for concurrent use.
type Document struct {
	width, height float64
	opts          options

	elements []Element

	// Pending geometry, turned into elements by Stroke.
	path  *gg.Path
	rects []Rect

	stroke StrokeStyle
}

// New creates an empty document with a canvas of width x height units and
// a matching viewBox.
func New(width, height float64, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Document{
		width:  width,
		height: height,
		opts:   o,
		path:   gg.NewPath(),
		stroke: StrokeStyle{Color: gg.Black, Width: 1},
	}
}

// Width returns the canvas width.
func (d *Document) Width() float64 { return d.width }

// Height returns the canvas height.
func (d *Document) Height() float64 { return d.height }

// Elements returns the elements added so far, in document order.
func (d *Document) Elements() []Element {
	return d.elements
}

// Add appends an element directly, bypassing the pending path.
func (d *Document) Add(e Element) {
	d.elements = append(d.elements, e)
}

// SetStrokeColor sets the stroke color for subsequent Stroke calls.
func (d *Document) SetStrokeColor(c gg.RGBA) {
	d.stroke.Color = c
}

// SetStrokeRGB sets the stroke color using RGB values (0-1).
func (d *Document) SetStrokeRGB(r, g, b float64) {
	d.SetStrokeColor(gg.RGB(r, g, b))
}

// SetStrokeRGBA sets the stroke color using RGBA values (0-1).
func (d *Document) SetStrokeRGBA(r, g, b, a float64) {
	d.SetStrokeColor(gg.RGBA2(r, g, b, a))
}

// SetLineWidth sets the stroke width in canvas units.
func (d *Document) SetLineWidth(width float64) {
	d.stroke.Width = width
}

// MoveTo starts a new subpath at the given point.
func (d *Document) MoveTo(x, y float64) {
	d.path.MoveTo(x, y)
}

// LineTo adds a line to the pending path.
func (d *Document) LineTo(x, y float64) {
	d.path.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (d *Document) ClosePath() {
	d.path.Close()
}

// DrawRectangle queues an axis-aligned rectangle.
func (d *Document) DrawRectangle(x, y, w, h float64) {
	d.DrawRoundedRectangle(x, y, w, h, 0)
}

// DrawRoundedRectangle queues a rectangle with rounded corners. The radius
// is clamped to [0, min(w, h)/2].
func (d *Document) DrawRoundedRectangle(x, y, w, h, radius float64) {
	radius = math.Max(0, math.Min(radius, math.Min(w, h)/2))
	d.rects = append(d.rects, Rect{X: x, Y: y, Width: w, Height: h, RX: radius, RY: radius})
}

// Stroke emits the pending geometry with the current stroke style: the
// pending path as one <path> element and each pending rectangle as a
// <rect> element. With nothing pending an empty <path> is still emitted.
func (d *Document) Stroke() {
	if len(d.path.Elements()) > 0 || len(d.rects) == 0 {
		d.elements = append(d.elements, &Path{Data: d.path, Stroke: d.stroke})
	}
	for i := range d.rects {
		r := d.rects[i]
		r.Stroke = d.stroke
		d.elements = append(d.elements, &r)
	}
	d.path = gg.NewPath()
	d.rects = d.rects[:0]
}

// Bytes serializes the document.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.encode(&buf)
	return buf.Bytes()
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	d.encode(&buf)
	return buf.WriteTo(w)
}

// SaveToFile writes the serialized document to path, replacing any
// existing file.
func (d *Document) SaveToFile(path string) error {
	return os.WriteFile(path, d.Bytes(), 0o644)
}

func (d *Document) encode(buf *bytes.Buffer) {
	buf.WriteString(`<?xml version="1.0" encoding="utf-8" ?>` + "\n")
	buf.WriteString(`<svg`)
	if d.opts.profile == ProfileTiny {
		writeAttr(buf, "baseProfile", "tiny")
	} else {
		writeAttr(buf, "baseProfile", "full")
	}
	writeAttr(buf, "height", formatNumber(d.height)+d.opts.unit)
	if d.opts.profile == ProfileTiny {
		writeAttr(buf, "version", "1.2")
	} else {
		writeAttr(buf, "version", "1.1")
	}
	writeAttr(buf, "viewBox", "0 0 "+formatNumber(d.width)+" "+formatNumber(d.height))
	writeAttr(buf, "width", formatNumber(d.width)+d.opts.unit)
	writeAttr(buf, "xmlns", "http://www.w3.org/2000/svg")
	writeAttr(buf, "xmlns:ev", "http://www.w3.org/2001/xml-events")
	writeAttr(buf, "xmlns:xlink", "http://www.w3.org/1999/xlink")
	buf.WriteString(`><defs />`)
	for _, e := range d.elements {
		e.encode(buf, d.opts.precision)
	}
	buf.WriteString("</svg>\n")
}
