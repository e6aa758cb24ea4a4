package svg

// Option configures a Document during creation.
//
// Example:
//
//	doc := svg.New(100, 100, svg.WithUnit("in"), svg.WithPrecision(3))
type Option func(*options)

type options struct {
	unit      string
	precision int
	profile   string
}

func defaultOptions() options {
	return options{
		unit:      "mm",
		precision: 6,
		profile:   ProfileTiny,
	}
}

// Profiles understood by WithProfile.
const (
	ProfileTiny = "tiny" // SVG Tiny 1.2
	ProfileFull = "full" // SVG 1.1
)

// WithUnit sets the unit suffix of the width and height attributes.
// An empty unit writes unitless user coordinates.
func WithUnit(unit string) Option {
	return func(o *options) {
		o.unit = unit
	}
}

// WithPrecision sets the number of decimals written for path coordinates.
// Negative values are ignored.
func WithPrecision(digits int) Option {
	return func(o *options) {
		if digits >= 0 {
			o.precision = digits
		}
	}
}

// WithProfile selects the baseProfile and version written on the root
// element. Unknown profiles fall back to ProfileFull.
func WithProfile(profile string) Option {
	return func(o *options) {
		o.profile = profile
	}
}
