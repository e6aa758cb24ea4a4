package svg

import (
	"bytes"
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// Element is a drawable SVG element.
type Element interface {
	// Name returns the XML element name.
	Name() string

	encode(buf *bytes.Buffer, precision int)
}

// StrokeStyle is the stroke of an element. Elements are never filled.
type StrokeStyle struct {
	Color gg.RGBA
	Width float64
}

// Path is a stroked <path> element.
type Path struct {
	Data   *gg.Path
	Stroke StrokeStyle
}

// Name returns "path".
func (*Path) Name() string { return "path" }

func (p *Path) encode(buf *bytes.Buffer, precision int) {
	buf.WriteString(`<path d="`)
	writePathData(buf, p.Data, precision)
	buf.WriteString(`" fill="none"`)
	writeStroke(buf, p.Stroke)
	buf.WriteString(` />`)
}

// Rect is a stroked <rect> element with optional rounded corners.
type Rect struct {
	X, Y, Width, Height float64
	RX, RY              float64
	Stroke              StrokeStyle
}

// Name returns "rect".
func (*Rect) Name() string { return "rect" }

func (r *Rect) encode(buf *bytes.Buffer, _ int) {
	buf.WriteString(`<rect fill="none"`)
	writeAttr(buf, "height", formatNumber(r.Height))
	writeAttr(buf, "rx", formatNumber(r.RX))
	writeAttr(buf, "ry", formatNumber(r.RY))
	writeStroke(buf, r.Stroke)
	writeAttr(buf, "width", formatNumber(r.Width))
	writeAttr(buf, "x", formatNumber(r.X))
	writeAttr(buf, "y", formatNumber(r.Y))
	buf.WriteString(` />`)
}

// writePathData writes gg path elements as absolute SVG path commands,
// separated by single spaces.
func writePathData(buf *bytes.Buffer, p *gg.Path, precision int) {
	if p == nil {
		return
	}
	for i, elem := range p.Elements() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		switch e := elem.(type) {
		case gg.MoveTo:
			buf.WriteByte('M')
			writePoint(buf, e.Point, precision)
		case gg.LineTo:
			buf.WriteByte('L')
			writePoint(buf, e.Point, precision)
		case gg.QuadTo:
			buf.WriteByte('Q')
			writePoint(buf, e.Control, precision)
			buf.WriteByte(' ')
			writePoint(buf, e.Point, precision)
		case gg.CubicTo:
			buf.WriteByte('C')
			writePoint(buf, e.Control1, precision)
			buf.WriteByte(' ')
			writePoint(buf, e.Control2, precision)
			buf.WriteByte(' ')
			writePoint(buf, e.Point, precision)
		case gg.Close:
			buf.WriteByte('Z')
		}
	}
}

func writePoint(buf *bytes.Buffer, pt gg.Point, precision int) {
	buf.WriteString(formatFixed(pt.X, precision))
	buf.WriteByte(',')
	buf.WriteString(formatFixed(pt.Y, precision))
}

func writeStroke(buf *bytes.Buffer, s StrokeStyle) {
	writeAttr(buf, "stroke", formatColor(s.Color))
	if s.Color.A < 1 {
		writeAttr(buf, "stroke-opacity", formatNumber(s.Color.A))
	}
	writeAttr(buf, "stroke-width", formatNumber(s.Width))
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(value)
	buf.WriteByte('"')
}

// formatFixed formats v with exactly precision decimals. Negative zero is
// written as zero so identical geometry always yields identical bytes.
func formatFixed(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if s[0] == '-' && isZero(s[1:]) {
		return s[1:]
	}
	return s
}

func isZero(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '.' {
			return false
		}
	}
	return true
}

// formatNumber formats v in the shortest form that round-trips.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatColor writes c as rgb(r,g,b) with 8-bit channels.
func formatColor(c gg.RGBA) string {
	b := make([]byte, 0, len("rgb(255,255,255)"))
	b = append(b, "rgb("...)
	b = strconv.AppendInt(b, int64(channel(c.R)), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(channel(c.G)), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(channel(c.B)), 10)
	b = append(b, ')')
	return string(b)
}

func channel(v float64) int {
	return int(math.Round(math.Min(math.Max(v, 0), 1) * 255))
}
