package polar

import "errors"

// Domain errors for curve evaluation.
var (
	// ErrUnknownEquation indicates a name with no registered equation.
	ErrUnknownEquation = errors.New("polar: unknown equation")

	// ErrParameterBounds indicates a parameter value outside its declared range.
	ErrParameterBounds = errors.New("polar: parameter out of declared bounds")

	// ErrEmptyDomain indicates a degenerate angle domain.
	ErrEmptyDomain = errors.New("polar: domain needs at least two samples and End > Start")
)
