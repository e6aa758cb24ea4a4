package bahtinov

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidParameter is returned (wrapped in a [*ParamError]) when a mask
// parameter violates its constraint.
var ErrInvalidParameter = errors.New("bahtinov: invalid parameter")

// ParamError describes a rejected mask parameter.
type ParamError struct {
	Param  string  // Parameter name as exposed on the command line.
	Value  float64 // Rejected value.
	Reason string  // Constraint that failed.
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("bahtinov: invalid %s %s: %s",
		e.Param, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) hold.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}
