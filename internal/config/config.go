// Package config holds the command's settings and loads TOML presets.
//
// A preset may set any subset of the keys; missing keys keep their current
// value and unknown keys are rejected:
//
//	output       = "masks"
//	size         = 80
//	spacing      = 1.2
//	angle        = 20
//	cornerRadius = 4
//
//	[preview]
//	enabled = true
//	dpmm    = 8
//	caption = true
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/bahtinov"
)

// Config is the complete set of command settings.
type Config struct {
	Output  string
	Mask    bahtinov.Params
	Preview Preview
}

// Preview configures the optional PNG preview.
type Preview struct {
	Enabled bool
	DPMM    float64
	Caption bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: ".",
		Mask:   bahtinov.DefaultParams(),
		Preview: Preview{
			DPMM: 10,
		},
	}
}

// preset mirrors the file layout. Pointers tell set keys from absent ones.
type preset struct {
	Output       *string  `toml:"output"`
	Size         *float64 `toml:"size"`
	Spacing      *float64 `toml:"spacing"`
	Angle        *float64 `toml:"angle"`
	CornerRadius *float64 `toml:"cornerRadius"`
	Preview      *struct {
		Enabled *bool    `toml:"enabled"`
		DPMM    *float64 `toml:"dpmm"`
		Caption *bool    `toml:"caption"`
	} `toml:"preview"`
}

// Decode reads a TOML preset from r and applies the keys it sets to c.
// c is left unchanged on error.
func Decode(r io.Reader, c *Config) error {
	var p preset
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("config: %s", strict.String())
		}
		return fmt.Errorf("config: %w", err)
	}
	p.apply(c)
	return nil
}

// Load reads the preset file at path and applies it to c.
func Load(path string, c *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Decode(f, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (p *preset) apply(c *Config) {
	setString(&c.Output, p.Output)
	setFloat(&c.Mask.Size, p.Size)
	setFloat(&c.Mask.Spacing, p.Spacing)
	setFloat(&c.Mask.Angle, p.Angle)
	setFloat(&c.Mask.CornerRadius, p.CornerRadius)
	if p.Preview != nil {
		setBool(&c.Preview.Enabled, p.Preview.Enabled)
		setFloat(&c.Preview.DPMM, p.Preview.DPMM)
		setBool(&c.Preview.Caption, p.Preview.Caption)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
