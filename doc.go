// Package bahtinov computes the geometry of a Bahtinov focusing mask.
//
// # Overview
//
// A Bahtinov mask is a grating placed over a telescope aperture. Its three
// line families produce a diffraction spike pattern that is symmetric only
// when the instrument is in focus. This package derives those lines from four
// parameters and draws them, together with a rounded frame, onto any
// [Canvas].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/bahtinov"
//	    "github.com/gogpu/bahtinov/svg"
//	)
//
//	p, err := bahtinov.NewParams(100, 1, 20, 5)
//	if err != nil {
//	    // err wraps bahtinov.ErrInvalidParameter
//	}
//
//	mask, err := bahtinov.Generate(p)
//	if err != nil {
//	    // unreachable for validated params
//	}
//
//	doc := svg.New(p.Size, p.Size)
//	mask.Draw(doc)
//	err = doc.SaveToFile(p.Filename())
//
// # Geometry
//
// The canvas is a square of side Size millimetres with the origin at the
// top-left corner and Y increasing downwards:
//   - Descenders start on the left edge below the horizontal midline, run
//     horizontally to the vertical midline, then continue at Angle.
//   - Ascenders mirror the descenders above the midline.
//   - Gap lines are V shapes in the right half whose vertex sits on the
//     horizontal midline, spaced Spacing/tan(Angle) apart.
//
// Every endpoint is clipped to the canvas; clipping shortens a diagonal run
// while keeping its angle.
//
// # Rendering
//
// [Mask.Draw] issues immediate-mode calls (SetStrokeRGB, SetLineWidth,
// MoveTo, LineTo, DrawRoundedRectangle, Stroke). Both *svg.Document and
// *recording.Recorder from github.com/gogpu/gg satisfy [Canvas], so the same
// mask renders to vector output and to a raster preview.
package bahtinov

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
