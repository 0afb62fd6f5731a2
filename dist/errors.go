package dist

import "errors"

var (
	// ErrUnequalP is returned when combining Binomials whose p differ.
	ErrUnequalP = errors.New("p values are not equal")
	// ErrEmptyData is returned by operations that need a non-empty sample.
	ErrEmptyData = errors.New("no data")
	ErrDomain    = errors.New("domain error")
)
