package bahtinov

import (
	"fmt"
	"math"
)

// Default parameter values, in millimetres and degrees.
const (
	DefaultSize         = 100.0
	DefaultSpacing      = 1.0
	DefaultAngle        = 20.0
	DefaultCornerRadius = 5.0

	// MaxAngle is the exclusive upper bound for Angle.
	MaxAngle = 90.0

	// MaxLines bounds the grating and gap line counts of one mask.
	MaxLines = 1_000_000
)

// Params holds the four inputs of the mask generator.
// Lengths are in millimetres, the angle in degrees.
type Params struct {
	Size         float64 // Side of the square canvas.
	Spacing      float64 // Distance between neighbouring grating lines.
	Angle        float64 // Angle of the diagonal runs, in [0, 90).
	CornerRadius float64 // Frame corner radius, in [0, Size/2].
}

// DefaultParams returns the parameters of a 100 mm mask with 1 mm spacing,
// a 20 degree pattern angle and 5 mm corners.
func DefaultParams() Params {
	return Params{
		Size:         DefaultSize,
		Spacing:      DefaultSpacing,
		Angle:        DefaultAngle,
		CornerRadius: DefaultCornerRadius,
	}
}

// NewParams returns validated parameters.
// The error wraps [ErrInvalidParameter] when any constraint fails.
func NewParams(size, spacing, angle, cornerRadius float64) (Params, error) {
	p := Params{
		Size:         size,
		Spacing:      spacing,
		Angle:        angle,
		CornerRadius: cornerRadius,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

var tooManyLines = fmt.Sprintf("yields more than %d lines", MaxLines)

// Validate checks every parameter and reports the first violation as a
// [*ParamError].
func (p Params) Validate() error {
	switch {
	case !finite(p.Size) || p.Size <= 0:
		return &ParamError{Param: "size", Value: p.Size, Reason: "must be positive and non-zero"}
	case !finite(p.Spacing) || p.Spacing <= 0:
		return &ParamError{Param: "spacing", Value: p.Spacing, Reason: "must be positive and non-zero"}
	case p.Size/p.Spacing/2 > MaxLines:
		return &ParamError{Param: "spacing", Value: p.Spacing, Reason: tooManyLines}
	case !finite(p.Angle) || p.Angle < 0 || p.Angle >= MaxAngle:
		return &ParamError{Param: "angle", Value: p.Angle, Reason: "must be in [0, 90)"}
	case p.Size/p.GapSpacing()/2 > MaxLines:
		return &ParamError{Param: "angle", Value: p.Angle, Reason: tooManyLines}
	case !finite(p.CornerRadius) || p.CornerRadius < 0 || p.CornerRadius > p.Size/2:
		return &ParamError{Param: "cornerRadius", Value: p.CornerRadius, Reason: "must be in [0, size/2]"}
	}
	return nil
}

// Radians returns Angle converted to radians.
func (p Params) Radians() float64 {
	return p.Angle / 180 * math.Pi
}

// GapSpacing returns the horizontal distance between gap lines.
// It is +Inf for a zero angle, where no gap lines exist.
func (p Params) GapSpacing() float64 {
	t := math.Tan(p.Radians())
	if t == 0 {
		return math.Inf(1)
	}
	return p.Spacing / t
}

// Stem returns the base file name without extension, for example
// "bahtinovMask_100.0mm_spacing1.0mm_angle20.0deg".
func (p Params) Stem() string {
	return fmt.Sprintf("bahtinovMask_%.1fmm_spacing%.1fmm_angle%.1fdeg", p.Size, p.Spacing, p.Angle)
}

// Filename returns the SVG file name for these parameters.
func (p Params) Filename() string {
	return p.Stem() + ".svg"
}

// String returns a short human readable summary.
func (p Params) String() string {
	return fmt.Sprintf("size %.1fmm, spacing %.1fmm, angle %.1fdeg, corner %.1fmm",
		p.Size, p.Spacing, p.Angle, p.CornerRadius)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
