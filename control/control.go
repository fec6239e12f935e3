package control

import (
	"math"

	"github.com/zeebo/errs"
)

var (
	// Error is the class of malformed or unsupported input.
	Error = errs.Class("control")

	// ErrLimit is the class of inputs that exceed a configured limit.
	ErrLimit = errs.Class("control limit")
)

// Class is the size class of a head: how many bytes follow the initial byte
// to carry the argument.
type Class struct {
	// Info is the additional information value in the initial byte. For
	// Direct it is the largest argument held in the initial byte itself.
	Info byte

	// Size is the total length of the head in bytes.
	Size int

	// Max is the largest argument the class can hold.
	Max uint64

	Abbr string
}

// Size classes
var (
	Direct = Class{Info: 23, Size: 1, Max: 23, Abbr: "d"}
	Arg1   = Class{Info: 24, Size: 2, Max: math.MaxUint8, Abbr: "a1"}
	Arg2   = Class{Info: 25, Size: 3, Max: math.MaxUint16, Abbr: "a2"}
	Arg4   = Class{Info: 26, Size: 5, Max: math.MaxUint32, Abbr: "a4"}
	Arg8   = Class{Info: 27, Size: 9, Max: math.MaxUint64, Abbr: "a8"}

	Classes = []Class{
		Direct,
		Arg1,
		Arg2,
		Arg4,
		Arg8,
	}
)

// Holds reports whether the class can carry arg.
func (c Class) Holds(arg uint64) bool {
	return arg <= c.Max
}

// ClassOf returns the smallest class that holds arg.
func ClassOf(arg uint64) Class {
	for _, c := range Classes {
		if c.Holds(arg) {
			return c
		}
	}

	// Arg8 holds every uint64.
	return Arg8
}

// Info values that never start a valid item.
const (
	reservedInfoMin byte = 28
	reservedInfoMax byte = 30
	indefiniteInfo  byte = 31
)

// Parse returns the major type and size class of an initial byte.
func Parse(b byte) (t Type, c Class, err error) {
	t, _ = Types.Match(b)

	info := b & infoMask
	switch {
	case info <= Direct.Info:
		return t, Direct, nil
	case info <= Arg8.Info:
		return t, Classes[info-Direct.Info], nil
	case info >= reservedInfoMin && info <= reservedInfoMax:
		return t, Class{}, Error.New("reserved additional information %d in %#02x", info, b)
	}

	return t, Class{}, Error.New("unsupported indefinite length in %#02x", b)
}
