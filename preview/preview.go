// Package preview renders a raster image of a mask for quick inspection.
//
// The mask is recorded with gg's recording.Recorder, scaled from millimetres
// to pixels, and played back into a backend taken from the recording
// registry. The built-in "raster" backend is registered by this package.
//
//	img, err := preview.Render(mask, preview.DefaultOptions())
//
// or straight to disk:
//
//	err := preview.Save("mask.png", mask, preview.DefaultOptions())
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"

	"github.com/gogpu/bahtinov"
)

// MaxSide is the largest preview side in pixels.
const MaxSide = 8192

// ErrTooLarge is returned when Size x DPMM exceeds MaxSide.
var ErrTooLarge = errors.New("preview: image too large")

// Options controls preview rendering.
type Options struct {
	DPMM       float64 // Pixels per millimetre.
	Caption    bool    // Draw the parameter summary in the top-left corner.
	Background gg.RGBA
	Backend    string // Recording backend name; it must expose Image().
}

// DefaultOptions returns 10 pixels per millimetre on white, no caption,
// using the "raster" backend.
func DefaultOptions() Options {
	return Options{
		DPMM:       10,
		Background: gg.White,
		Backend:    "raster",
	}
}

// imageBackend is implemented by backends that produce an image, such as
// the gg raster backend.
type imageBackend interface {
	recording.Backend
	Image() image.Image
}

// Render draws m into a square image of side ceil(Size*DPMM) pixels.
func Render(m *bahtinov.Mask, opts Options) (image.Image, error) {
	if !(opts.DPMM > 0) || math.IsInf(opts.DPMM, 0) {
		return nil, fmt.Errorf("preview: invalid dpmm %v: must be positive", opts.DPMM)
	}
	side := math.Ceil(m.Params().Size * opts.DPMM)
	if side > MaxSide {
		return nil, fmt.Errorf("%w: %.0f px per side, limit %d", ErrTooLarge, side, MaxSide)
	}
	px := int(side)

	r := Record(m, px, opts)

	backend, err := recording.NewBackend(opts.Backend)
	if err != nil {
		return nil, err
	}
	ib, ok := backend.(imageBackend)
	if !ok {
		return nil, fmt.Errorf("preview: backend %q does not produce images", opts.Backend)
	}
	if err := r.Playback(ib); err != nil {
		return nil, fmt.Errorf("preview: playback: %w", err)
	}

	img := ib.Image()
	if opts.Caption {
		caption := m.Params().String()
		if w := captionWidth(caption); w > px {
			bahtinov.Logger().Warn("preview: caption wider than image, truncated",
				"caption_px", w,
				"side", px)
		}
		img = drawCaption(img, caption)
	}

	bahtinov.Logger().Debug("preview: rendered",
		"side", px,
		"dpmm", opts.DPMM,
		"commands", len(r.Commands()))
	return img, nil
}

// Record draws m onto a px x px recorder scaled by opts.DPMM and returns
// the finished recording.
func Record(m *bahtinov.Mask, px int, opts Options) *recording.Recording {
	rec := recording.NewRecorder(px, px)
	rec.ClearWithColor(opts.Background)
	rec.Scale(opts.DPMM, opts.DPMM)
	m.Draw(scaledCanvas{Recorder: rec, scale: opts.DPMM})
	return rec.FinishRecording()
}

// Save renders m and writes it to path as PNG.
func Save(path string, m *bahtinov.Mask, opts Options) error {
	img, err := Render(m, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// scaledCanvas scales line widths along with coordinates. The recorder
// transforms points but records widths as given.
type scaledCanvas struct {
	*recording.Recorder
	scale float64
}

func (c scaledCanvas) SetLineWidth(width float64) {
	c.Recorder.SetLineWidth(width * c.scale)
}
