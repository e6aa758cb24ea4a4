package preview

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg/recording"

	"github.com/gogpu/bahtinov"
)

func testMask(t *testing.T, p bahtinov.Params) *bahtinov.Mask {
	t.Helper()
	m, err := bahtinov.Generate(p)
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	return m
}

// tally counts pixels by dominant hue.
type tally struct {
	blue, red, black, white int
}

func countPixels(img image.Image, r image.Rectangle) tally {
	var n tally
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			switch {
			case cr > 0xf000 && cg > 0xf000 && cb > 0xf000:
				n.white++
			case cr < 0x4000 && cg < 0x4000 && cb < 0x4000:
				n.black++
			case cb > cr:
				n.blue++
			case cr > cb:
				n.red++
			}
		}
	}
	return n
}

func TestRender_Size(t *testing.T) {
	opts := DefaultOptions()
	opts.DPMM = 2.5
	img, err := Render(testMask(t, bahtinov.Params{Size: 41, Spacing: 1, Angle: 20, CornerRadius: 3}), opts)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	// ceil(41 * 2.5) = 103
	if b := img.Bounds(); b.Dx() != 103 || b.Dy() != 103 {
		t.Errorf("Bounds() = %v, want 103x103", b)
	}
}

func TestRender_DrawsPatternAndFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.DPMM = 4
	img, err := Render(testMask(t, bahtinov.DefaultParams()), opts)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}

	n := countPixels(img, img.Bounds())
	if n.blue == 0 {
		t.Error("no pattern pixels rendered")
	}
	if n.red == 0 {
		t.Error("no frame pixels rendered")
	}
	if n.white == 0 {
		t.Error("background is not white")
	}
	if n.black != 0 {
		t.Errorf("%d black pixels without a caption", n.black)
	}
}

func TestRender_Caption(t *testing.T) {
	m := testMask(t, bahtinov.DefaultParams())
	opts := DefaultOptions()
	opts.DPMM = 4
	opts.Caption = true

	img, err := Render(m, opts)
	if err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if n := countPixels(img, image.Rect(0, 0, 200, 24)); n.black == 0 {
		t.Error("caption not drawn in the top-left corner")
	}
}

func TestRender_CaptionTruncationWarns(t *testing.T) {
	var buf bytes.Buffer
	bahtinov.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer bahtinov.SetLogger(nil)

	m := testMask(t, bahtinov.Params{Size: 20, Spacing: 1, Angle: 20, CornerRadius: 2})
	opts := DefaultOptions()
	opts.Caption = true

	tests := []struct {
		name string
		dpmm float64
		warn bool
	}{
		{"Narrow", 2, true},
		{"Wide", 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			opts.DPMM = tt.dpmm
			if _, err := Render(m, opts); err != nil {
				t.Fatalf("Render() = %v", err)
			}
			out := buf.String()
			if got := strings.Contains(out, "caption wider than image"); got != tt.warn {
				t.Errorf("warned = %v, want %v; log: %q", got, tt.warn, out)
			}
			if tt.warn && !strings.Contains(out, "level=WARN") {
				t.Errorf("log %q not at warn level", out)
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	m := testMask(t, bahtinov.DefaultParams())

	tests := []struct {
		name   string
		modify func(*Options)
		is     error
	}{
		{"ZeroDPMM", func(o *Options) { o.DPMM = 0 }, nil},
		{"NegativeDPMM", func(o *Options) { o.DPMM = -3 }, nil},
		{"TooLarge", func(o *Options) { o.DPMM = 100 }, ErrTooLarge},
		{"UnknownBackend", func(o *Options) { o.Backend = "no-such-backend" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			_, err := Render(m, opts)
			if err == nil {
				t.Fatal("Render() = nil, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Render() = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestRecord_ScalesLineWidth(t *testing.T) {
	m := testMask(t, bahtinov.DefaultParams())
	r := Record(m, 500, Options{DPMM: 5, Background: DefaultOptions().Background})

	var widths []float64
	for _, cmd := range r.Commands() {
		if s, ok := cmd.(recording.StrokePathCommand); ok {
			widths = append(widths, s.Stroke.Width)
		}
	}
	if len(widths) != 2 {
		t.Fatalf("got %d strokes, want 2", len(widths))
	}
	for _, w := range widths {
		if w != 1 {
			t.Errorf("stroke width = %v, want 0.2mm * 5 = 1px", w)
		}
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.png")
	opts := DefaultOptions()
	opts.DPMM = 1
	if err := Save(path, testMask(t, bahtinov.DefaultParams()), opts); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("Bounds() = %v, want 100x100", b)
	}
}
