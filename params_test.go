package bahtinov

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParams_Validate(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name    string
		p       Params
		param   string // empty when valid
		wantMsg string
	}{
		{"Defaults", DefaultParams(), "", ""},
		{"ZeroAngle", Params{100, 1, 0, 5}, "", ""},
		{"ZeroRadius", Params{100, 1, 20, 0}, "", ""},
		{"HalfSizeRadius", Params{100, 1, 20, 50}, "", ""},
		{"NearRightAngle", Params{100, 1, 89.9, 5}, "", ""},
		{"LineLimit", Params{2 * MaxLines, 1, 0, 5}, "", ""},
		{"ZeroSize", Params{0, 1, 20, 0}, "size", "positive"},
		{"NegativeSize", Params{-1, 1, 20, 0}, "size", "positive"},
		{"NaNSize", Params{nan, 1, 20, 0}, "size", "positive"},
		{"InfSize", Params{inf, 1, 20, 0}, "size", "positive"},
		{"ZeroSpacing", Params{100, 0, 20, 5}, "spacing", "positive"},
		{"NegativeSpacing", Params{100, -0.5, 20, 5}, "spacing", "positive"},
		{"RightAngle", Params{100, 1, 90, 5}, "angle", "[0, 90)"},
		{"NegativeAngle", Params{100, 1, -1, 5}, "angle", "[0, 90)"},
		{"NaNAngle", Params{100, 1, nan, 5}, "angle", "[0, 90)"},
		{"TinySpacing", Params{100, 1e-9, 20, 5}, "spacing", "more than 1000000 lines"},
		{"DenormalSpacing", Params{100, 1e-300, 20, 5}, "spacing", "more than 1000000 lines"},
		{"OverLineLimit", Params{2*MaxLines + 2, 1, 0, 5}, "spacing", "more than 1000000 lines"},
		{"AlmostRightAngle", Params{100, 1, 89.99999, 5}, "angle", "more than 1000000 lines"},
		{"NegativeRadius", Params{100, 1, 20, -0.1}, "cornerRadius", "size/2"},
		{"RadiusOverHalf", Params{100, 1, 20, 51}, "cornerRadius", "size/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.param == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Validate() = %v, want ErrInvalidParameter", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("Validate() = %T, want *ParamError", err)
			}
			if pe.Param != tt.param {
				t.Errorf("Param = %q, want %q", pe.Param, tt.param)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNewParams_Invalid(t *testing.T) {
	p, err := NewParams(100, 1, 90, 5)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("NewParams(angle=90) error = %v, want ErrInvalidParameter", err)
	}
	if p != (Params{}) {
		t.Errorf("NewParams(angle=90) = %+v, want zero Params", p)
	}

	if _, err := NewParams(10, 1, 20, 10.0/2+1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("NewParams(cornerRadius=size/2+1) error = %v, want ErrInvalidParameter", err)
	}
}

func TestParamError_Message(t *testing.T) {
	err := Params{100, 1, 90, 5}.Validate()
	want := "bahtinov: invalid angle 90: must be in [0, 90)"
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}

func TestParams_Filename(t *testing.T) {
	tests := []struct {
		p    Params
		want string
	}{
		{DefaultParams(), "bahtinovMask_100.0mm_spacing1.0mm_angle20.0deg.svg"},
		{Params{Size: 80.25, Spacing: 1.25, Angle: 17.5}, "bahtinovMask_80.2mm_spacing1.2mm_angle17.5deg.svg"},
		{Params{Size: 10, Spacing: 20, Angle: 0}, "bahtinovMask_10.0mm_spacing20.0mm_angle0.0deg.svg"},
	}
	for _, tt := range tests {
		if got := tt.p.Filename(); got != tt.want {
			t.Errorf("Filename(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestParams_GapSpacing(t *testing.T) {
	p := DefaultParams()
	want := 1 / math.Tan(20*math.Pi/180)
	if got := p.GapSpacing(); math.Abs(got-want) > 1e-12 {
		t.Errorf("GapSpacing() = %v, want %v", got, want)
	}

	p.Angle = 0
	if got := p.GapSpacing(); !math.IsInf(got, 1) {
		t.Errorf("GapSpacing() at angle 0 = %v, want +Inf", got)
	}
}
