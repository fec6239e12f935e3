package integer

import "github.com/zeebo/errs"

// Error is the class of integer item errors.
var Error = errs.Class("integer")
