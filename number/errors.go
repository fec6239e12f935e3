package number

import "github.com/zeebo/errs"

var (
	// ErrInvalidArgument is returned when a required operand is nil or a
	// constructor argument violates its contract (e.g. a zero denominator).
	ErrInvalidArgument = errs.Class("invalid argument")

	// ErrInvalidOperation is returned when a value is not a number at all or
	// does not have the shape an accessor requires.
	ErrInvalidOperation = errs.Class("invalid operation")

	// ErrOverflow is returned when a finite, bounded projection of a value is
	// requested but the value is non-finite or out of range.
	ErrOverflow = errs.Class("overflow")
)

func checkOperand(n Number) error {
	if n == nil {
		return ErrInvalidArgument.New("nil operand")
	}

	return nil
}

func checkOperands(a, b Number) error {
	if a == nil {
		return ErrInvalidArgument.New("nil first operand")
	}
	if b == nil {
		return ErrInvalidArgument.New("nil second operand")
	}

	return nil
}
