package numcbor

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/numcbor/control"
	"github.com/calebcase/numcbor/decimal"
	"github.com/calebcase/numcbor/integer"
)

var (
	// ErrMalformed is the class of input that is not a well formed item.
	ErrMalformed = errs.Class("malformed")

	// ErrLimit is the class of input that exceeds a decoding limit.
	ErrLimit = errs.Class("limit")

	// ErrUnsupported is the class of well formed items that are not
	// numbers or simple values.
	ErrUnsupported = errs.Class("unsupported")
)

// classify assigns a decoding failure to its class.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case ErrUnsupported.Has(err):
		return err
	case control.ErrLimit.Has(err):
		return ErrLimit.Wrap(err)
	case control.Error.Has(err), integer.Error.Has(err), decimal.Error.Has(err):
		return ErrMalformed.Wrap(err)
	}

	return err
}
