package control

// Type is a major type: the top three bits of the initial byte of an item.
type Type struct {
	Major byte
	Abbr  string
}

const infoMask byte = 0b_0001_1111

// Prefix returns the initial byte bits of the type.
func (t Type) Prefix() byte {
	return t.Major << 5
}

// Match returns true if this type matches the given initial byte.
func (t Type) Match(b byte) bool {
	return b>>5 == t.Major
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unsigned = Type{0, "u"}
	Negative = Type{1, "n"}
	Bytes    = Type{2, "b"}
	Text     = Type{3, "t"}
	Array    = Type{4, "a"}
	Map      = Type{5, "m"}
	Tag      = Type{6, "g"}
	Simple   = Type{7, "s"}

	Types = types{
		Unsigned,
		Negative,
		Bytes,
		Text,
		Array,
		Map,
		Tag,
		Simple,
	}
)

// Simple values
const (
	SimpleFalse     byte = 20
	SimpleTrue      byte = 21
	SimpleNull      byte = 22
	SimpleUndefined byte = 23
)

// Float widths carried by major type 7. The size class identifies the width.
var floatClasses = map[int]Class{
	16: Arg2,
	32: Arg4,
	64: Arg8,
}

// FloatWidth returns the IEEE width of a major type 7 item of class c, or 0
// if the item is not a float.
func FloatWidth(c Class) int {
	switch c.Info {
	case Arg2.Info:
		return 16
	case Arg4.Info:
		return 32
	case Arg8.Info:
		return 64
	}

	return 0
}
