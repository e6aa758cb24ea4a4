package bahtinov

import "github.com/gogpu/gg"

// LineKind identifies the family a [Line] belongs to.
type LineKind uint8

const (
	// Descender lines run below the horizontal midline.
	Descender LineKind = iota
	// Ascender lines mirror the descenders above the midline.
	Ascender
	// Gap lines form the central focus band in the right half.
	Gap
)

// String returns the lower-case family name.
func (k LineKind) String() string {
	switch k {
	case Descender:
		return "descender"
	case Ascender:
		return "ascender"
	case Gap:
		return "gap"
	default:
		return "unknown"
	}
}

// Line is one stroke of the mask pattern: Start to Mid to End.
// When HiddenLead is set the Start to Mid leg is a pen-up move; the first
// ascender uses it because its horizontal run coincides with the first
// descender's.
type Line struct {
	Kind       LineKind
	Start      gg.Point
	Mid        gg.Point
	End        gg.Point
	HiddenLead bool
	Clipped    bool // The diagonal run was shortened at the canvas edge.
}

// Points returns Start, Mid and End.
func (l Line) Points() [3]gg.Point {
	return [3]gg.Point{l.Start, l.Mid, l.End}
}

// appendTo adds the line to p as a new subpath.
func (l Line) appendTo(p *gg.Path) {
	p.MoveTo(l.Start.X, l.Start.Y)
	if l.HiddenLead {
		p.MoveTo(l.Mid.X, l.Mid.Y)
	} else {
		p.LineTo(l.Mid.X, l.Mid.Y)
	}
	p.LineTo(l.End.X, l.End.Y)
}
