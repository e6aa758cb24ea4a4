package bahtinov

import "github.com/gogpu/gg"

// Canvas is the immediate-mode drawing surface a [Mask] is drawn onto.
// It is the subset of the gg drawing API the mask needs; *recording.Recorder
// from github.com/gogpu/gg and *svg.Document both implement it.
type Canvas interface {
	SetStrokeRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawRoundedRectangle(x, y, w, h, radius float64)
	Stroke()
}

// Style controls the stroke colors and widths used by [Mask.Draw].
type Style struct {
	PatternColor gg.RGBA
	FrameColor   gg.RGBA
	PatternWidth float64 // In canvas units (millimetres).
	FrameWidth   float64
}

// DefaultStyle is the two-color convention of laser-cutter files: pattern
// lines in blue, the outline in red, both 0.2 mm wide.
func DefaultStyle() Style {
	return Style{
		PatternColor: gg.RGB(0, 0, 1),
		FrameColor:   gg.RGB(1, 0, 0),
		PatternWidth: 0.2,
		FrameWidth:   0.2,
	}
}

// Draw draws the mask with [DefaultStyle]: the pattern as one stroked path,
// then the frame.
func (m *Mask) Draw(c Canvas) {
	m.DrawStyled(c, DefaultStyle())
}

// DrawStyled draws the mask with the given style.
func (m *Mask) DrawStyled(c Canvas, s Style) {
	m.drawPattern(c, s)
	m.emitFrame(c, s)
}

func (m *Mask) drawPattern(c Canvas, s Style) {
	setStroke(c, s.PatternColor, s.PatternWidth)
	for _, l := range m.lines {
		c.MoveTo(l.Start.X, l.Start.Y)
		if l.HiddenLead {
			c.MoveTo(l.Mid.X, l.Mid.Y)
		} else {
			c.LineTo(l.Mid.X, l.Mid.Y)
		}
		c.LineTo(l.End.X, l.End.Y)
	}
	c.Stroke()
}

// emitFrame strokes a rounded rectangle spanning the whole canvas.
func (m *Mask) emitFrame(c Canvas, s Style) {
	setStroke(c, s.FrameColor, s.FrameWidth)
	c.DrawRoundedRectangle(m.Frame())
	c.Stroke()
}

func setStroke(c Canvas, col gg.RGBA, width float64) {
	c.SetStrokeRGBA(col.R, col.G, col.B, col.A)
	c.SetLineWidth(width)
}
