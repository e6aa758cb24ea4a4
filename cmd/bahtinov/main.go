// Command bahtinov writes the SVG outline of a Bahtinov focusing mask.
//
// Usage:
//
//	bahtinov [--output dir] [--size mm] [--spacing mm] [--angle deg]
//	         [--cornerRadius mm] [--config preset.toml]
//	         [--preview] [--dpmm n] [--caption] [-v | -q]
//
// The file is named bahtinovMask_{size}mm_spacing{spacing}mm_angle{angle}deg.svg
// and written under --output. Settings from --config are overridden by flags
// given explicitly on the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/gogpu/bahtinov"
	"github.com/gogpu/bahtinov/internal/config"
	"github.com/gogpu/bahtinov/preview"
	"github.com/gogpu/bahtinov/svg"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stderr io.Writer) int {
	cfg, level, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "bahtinov:", err)
		return 2
	}

	logger := newLogger(stderr, level)
	bahtinov.SetLogger(logger)
	defer bahtinov.SetLogger(nil)

	written, err := generate(cfg)
	if err != nil {
		logger.Error("generation failed", "err", err)
		return 1
	}
	for _, path := range written {
		logger.Info("wrote", "path", path)
	}
	return 0
}

// parseArgs resolves the configuration: defaults, then the --config preset,
// then flags that were set explicitly.
func parseArgs(args []string, stderr io.Writer) (config.Config, slog.Level, error) {
	def := config.Default()

	fs := flag.NewFlagSet("bahtinov", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output       = fs.String("output", def.Output, "Output path")
		size         = fs.Float64("size", def.Mask.Size, "Size in mm")
		spacing      = fs.Float64("spacing", def.Mask.Spacing, "Line spacing in mm")
		angle        = fs.Float64("angle", def.Mask.Angle, "Pattern angle in degrees")
		cornerRadius = fs.Float64("cornerRadius", def.Mask.CornerRadius, "Corner radius in mm")
		preset       = fs.String("config", "", "TOML preset file")
		withPreview  = fs.Bool("preview", def.Preview.Enabled, "Also write a PNG preview")
		dpmm         = fs.Float64("dpmm", def.Preview.DPMM, "Preview pixels per mm")
		caption      = fs.Bool("caption", def.Preview.Caption, "Print the parameters on the preview")
		verbose      = fs.Bool("v", false, "Verbose (debug) logging")
		quiet        = fs.Bool("q", false, "Only log warnings and errors")
	)
	if err := fs.Parse(args); err != nil {
		return def, 0, err
	}
	if fs.NArg() > 0 {
		return def, 0, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *preset != "" {
		if err := config.Load(*preset, &cfg); err != nil {
			return def, 0, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "size":
			cfg.Mask.Size = *size
		case "spacing":
			cfg.Mask.Spacing = *spacing
		case "angle":
			cfg.Mask.Angle = *angle
		case "cornerRadius":
			cfg.Mask.CornerRadius = *cornerRadius
		case "preview":
			cfg.Preview.Enabled = *withPreview
		case "dpmm":
			cfg.Preview.DPMM = *dpmm
		case "caption":
			cfg.Preview.Caption = *caption
		}
	})

	level := slog.LevelInfo
	switch {
	case *verbose:
		level = slog.LevelDebug
	case *quiet:
		level = slog.LevelWarn
	}
	return cfg, level, nil
}

// generate validates the parameters, builds the mask and writes the output
// files. It returns the paths written.
func generate(cfg config.Config) ([]string, error) {
	p, err := bahtinov.NewParams(cfg.Mask.Size, cfg.Mask.Spacing, cfg.Mask.Angle, cfg.Mask.CornerRadius)
	if err != nil {
		return nil, err
	}
	mask, err := bahtinov.Generate(p)
	if err != nil {
		return nil, err
	}

	doc := svg.New(p.Size, p.Size)
	mask.Draw(doc)

	svgPath := filepath.Join(cfg.Output, p.Filename())
	if err := doc.SaveToFile(svgPath); err != nil {
		return nil, err
	}
	written := []string{svgPath}

	if cfg.Preview.Enabled {
		opts := preview.DefaultOptions()
		opts.DPMM = cfg.Preview.DPMM
		opts.Caption = cfg.Preview.Caption

		pngPath := filepath.Join(cfg.Output, p.Stem()+".png")
		if err := preview.Save(pngPath, mask, opts); err != nil {
			return written, err
		}
		written = append(written, pngPath)
	}
	return written, nil
}

// newLogger returns a tint handler on w, colored when w is a terminal.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}
