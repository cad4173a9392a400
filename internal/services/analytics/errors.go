package analytics

import "fmt"

// EmptyInputError reports an operation that requires at least one element
// and received none. Distinct from a zero-valued result: "no data" and
// "data summing to zero" must be distinguishable to the caller.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: input is empty", e.Op)
}

// InsufficientDataError reports too few data points for an operation.
type InsufficientDataError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d data points, got %d", e.Op, e.Need, e.Got)
}

// RangeError reports a bounded numeric parameter outside its configured
// inclusive range.
type RangeError struct {
	Param string
	Min   int
	Max   int
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Param, e.Min, e.Max, e.Value)
}
