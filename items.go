package numcbor

import (
	"fmt"

	"github.com/calebcase/numcbor/number"
)

func describe(item any) string {
	switch item.(type) {
	case nil:
		return "null"
	case UndefinedType:
		return "undefined"
	}

	return fmt.Sprintf("%T", item)
}

// numeric returns the number held by a decoded item. Simple values and other
// non-numeric items fail with number.ErrInvalidOperation.
func numeric(item any) (n number.Number, err error) {
	switch item.(type) {
	case nil, bool, UndefinedType:
		return nil, number.ErrInvalidOperation.New("%s is not a number", describe(item))
	}

	return number.Of(item)
}

func binary(op func(a, b number.Number) (number.Number, error), a, b any) (n number.Number, err error) {
	x, err := numeric(a)
	if err != nil {
		return nil, err
	}

	y, err := numeric(b)
	if err != nil {
		return nil, err
	}

	return op(x, y)
}

// Add returns a + b for decoded items.
func Add(a, b any) (number.Number, error) { return binary(number.Add, a, b) }

// Subtract returns a - b for decoded items.
func Subtract(a, b any) (number.Number, error) { return binary(number.Subtract, a, b) }

// Multiply returns a * b for decoded items.
func Multiply(a, b any) (number.Number, error) { return binary(number.Multiply, a, b) }

// Divide returns a / b for decoded items.
func Divide(a, b any) (number.Number, error) { return binary(number.Divide, a, b) }

// Remainder returns the truncated remainder of a / b for decoded items.
func Remainder(a, b any) (number.Number, error) { return binary(number.Remainder, a, b) }

// CompareItems orders decoded items with number.Compare. Null sorts after
// every number and equal to itself. Other non-numeric items fail with
// number.ErrInvalidOperation.
func CompareItems(a, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		if _, err := numeric(b); err != nil {
			return 0, err
		}

		return 1, nil
	case b == nil:
		if _, err := numeric(a); err != nil {
			return 0, err
		}

		return -1, nil
	}

	x, err := numeric(a)
	if err != nil {
		return 0, err
	}

	y, err := numeric(b)
	if err != nil {
		return 0, err
	}

	return number.Compare(x, y), nil
}
