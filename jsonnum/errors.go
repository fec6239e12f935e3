package jsonnum

import "github.com/zeebo/errs"

var (
	// ErrMalformed is the class of text that is not a JSON number.
	ErrMalformed = errs.Class("malformed json number")

	// ErrLimit is the class of numbers that exceed a configured limit.
	ErrLimit = errs.Class("json number limit")
)
