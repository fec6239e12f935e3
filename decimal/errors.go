package decimal

import "github.com/zeebo/errs"

// Error is the class of fraction item errors.
var Error = errs.Class("decimal")
