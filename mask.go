package bahtinov

import (
	"math"

	"github.com/gogpu/gg"
)

// Mask is the generated geometry of a Bahtinov mask.
// A Mask is immutable after Generate and safe to draw concurrently onto
// distinct canvases.
type Mask struct {
	params Params
	lines  []Line
}

// Generate validates p and computes the mask lines.
// The returned error wraps [ErrInvalidParameter]; no geometry is computed
// for invalid parameters.
func Generate(p Params) (*Mask, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := &Mask{params: p}
	m.lines = buildDescendersAndAscenders(p, m.lines)
	grating := len(m.lines)
	m.lines = buildGapLines(p, m.lines)

	Logger().Debug("bahtinov: mask generated",
		"params", p.String(),
		"grating", grating,
		"gap", len(m.lines)-grating,
		"clipped", m.clippedCount())
	return m, nil
}

// buildDescendersAndAscenders appends one descender and one ascender per
// grating index. Each line runs horizontally from the left edge to the
// vertical midline, then diagonally at the mask angle. A diagonal that would
// leave the canvas is shortened to end on the edge at the same angle.
func buildDescendersAndAscenders(p Params, dst []Line) []Line {
	half := p.Size / 2
	tan := math.Tan(p.Radians())
	n := int(p.Size / p.Spacing / 2)

	for i := 0; i < n; i++ {
		offset := float64(i) * p.Spacing
		y := half + offset

		dx, dy := half, half*tan
		clipped := y+dy > p.Size
		if clipped {
			dy = p.Size - y
			dx = dy / tan
		}

		down := Line{
			Kind:    Descender,
			Start:   gg.Pt(0, y),
			Mid:     gg.Pt(half, y),
			End:     gg.Pt(half+dx, y+dy),
			Clipped: clipped,
		}

		upY := half - offset
		up := Line{
			Kind:       Ascender,
			Start:      gg.Pt(0, upY),
			Mid:        gg.Pt(half, upY),
			End:        gg.Pt(half+dx, upY-dy),
			HiddenLead: i == 0,
			Clipped:    clipped,
		}
		if clipped {
			down.End.Y = p.Size
			up.End.Y = 0
		}

		dst = append(dst, clampLine(down, p.Size), clampLine(up, p.Size))
	}
	return dst
}

// buildGapLines appends the V-shaped gap lines. Their vertices sit on the
// horizontal midline right of centre, GapSpacing apart; both arms run at the
// mask angle to the right edge, or to the top and bottom edges when the
// right edge is out of reach.
func buildGapLines(p Params, dst []Line) []Line {
	gap := p.GapSpacing()
	if math.IsInf(gap, 1) {
		return dst
	}

	half := p.Size / 2
	tan := math.Tan(p.Radians())
	n := int(p.Size / gap / 2)

	for i := 1; i <= n; i++ {
		midX := half + float64(i)*gap

		startX := p.Size
		rise := (startX - midX) * tan
		startY, endY := half+rise, half-rise

		clipped := startY > p.Size
		if clipped {
			startY, endY = p.Size, 0
			// Meet the edge along the arm so the clipped arm keeps the mask angle.
			startX = midX + (p.Size-half)/tan
		}

		dst = append(dst, clampLine(Line{
			Kind:    Gap,
			Start:   gg.Pt(startX, startY),
			Mid:     gg.Pt(midX, half),
			End:     gg.Pt(startX, endY),
			Clipped: clipped,
		}, p.Size))
	}
	return dst
}

// clampLine pins coordinates that rounding pushed a few ulps past the canvas.
func clampLine(l Line, size float64) Line {
	l.Start = clampPoint(l.Start, size)
	l.Mid = clampPoint(l.Mid, size)
	l.End = clampPoint(l.End, size)
	return l
}

func clampPoint(pt gg.Point, size float64) gg.Point {
	return gg.Pt(math.Min(math.Max(pt.X, 0), size), math.Min(math.Max(pt.Y, 0), size))
}

// Params returns the parameters the mask was generated from.
func (m *Mask) Params() Params {
	return m.params
}

// Lines returns all pattern lines: descender/ascender pairs by increasing
// offset from the midline, followed by the gap lines. The slice must not be
// modified.
func (m *Mask) Lines() []Line {
	return m.lines
}

// LinesOf returns the lines of one family, in generation order.
func (m *Mask) LinesOf(kind LineKind) []Line {
	var out []Line
	for _, l := range m.lines {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func (m *Mask) clippedCount() int {
	n := 0
	for _, l := range m.lines {
		if l.Clipped {
			n++
		}
	}
	return n
}

// Path returns the whole pattern as a single gg path, one subpath per line.
func (m *Mask) Path() *gg.Path {
	p := gg.NewPath()
	for _, l := range m.lines {
		l.appendTo(p)
	}
	return p
}

// Bounds returns the smallest and largest endpoint coordinates of the
// pattern. An empty pattern reports the canvas centre for both.
func (m *Mask) Bounds() (lo, hi gg.Point) {
	if len(m.lines) == 0 {
		c := gg.Pt(m.params.Size/2, m.params.Size/2)
		return c, c
	}
	lo = gg.Pt(math.Inf(1), math.Inf(1))
	hi = gg.Pt(math.Inf(-1), math.Inf(-1))
	for _, l := range m.lines {
		for _, pt := range l.Points() {
			lo.X, lo.Y = math.Min(lo.X, pt.X), math.Min(lo.Y, pt.Y)
			hi.X, hi.Y = math.Max(hi.X, pt.X), math.Max(hi.Y, pt.Y)
		}
	}
	return lo, hi
}

// Frame returns the rounded frame rectangle: origin, side and corner radius.
func (m *Mask) Frame() (x, y, w, h, radius float64) {
	return 0, 0, m.params.Size, m.params.Size, m.params.CornerRadius
}
