package number

import "math/big"

// SpecialKind identifies a non-finite value.
type SpecialKind uint8

// Special kinds
const (
	PositiveInfinity SpecialKind = iota + 1
	NegativeInfinity
	NaN
	SignalingNaN
)

// Family is the representation family a special value came from.
type Family uint8

// Families
const (
	FamilyFloat Family = iota + 1
	FamilyDecimal
	FamilyBinary
	FamilyRational
)

var familyNames = [...]string{
	FamilyFloat:    "float",
	FamilyDecimal:  "decimal",
	FamilyBinary:   "binary",
	FamilyRational: "rational",
}

func (f Family) String() string {
	if int(f) < len(familyNames) && familyNames[f] != "" {
		return familyNames[f]
	}

	return "unknown"
}

// Special is an infinity or a NaN. A NaN may carry a diagnostic payload which
// is preserved through encoding but ignored by Compare and Equal.
type Special struct {
	kind    SpecialKind
	family  Family
	payload *big.Int
}

// Infinity returns +Infinity when sign >= 0 and -Infinity otherwise.
func Infinity(sign int, family Family) Special {
	if sign < 0 {
		return Special{kind: NegativeInfinity, family: family}
	}

	return Special{kind: PositiveInfinity, family: family}
}

// NewNaN returns a quiet (or signaling) NaN with an optional payload. A nil or
// zero payload means no payload.
func NewNaN(family Family, signaling bool, payload *big.Int) Special {
	s := Special{kind: NaN, family: family}
	if signaling {
		s.kind = SignalingNaN
	}
	if payload != nil && payload.Sign() != 0 {
		s.payload = new(big.Int).Abs(payload)
	}

	return s
}

// SpecialKind returns the kind of special value. The zero Special is a quiet
// NaN.
func (s Special) SpecialKind() SpecialKind {
	if s.kind == 0 {
		return NaN
	}

	return s.kind
}

// Family returns the family the value came from.
func (s Special) Family() Family { return s.family }

// Payload returns a copy of the NaN payload, or nil if there is none.
func (s Special) Payload() *big.Int {
	if s.payload == nil {
		return nil
	}

	return new(big.Int).Set(s.payload)
}

// IsNaN reports whether the value is a quiet or signaling NaN.
func (s Special) IsNaN() bool { return !s.IsInfinity() }

// IsInfinity reports whether the value is +Infinity or -Infinity.
func (s Special) IsInfinity() bool {
	return s.kind == PositiveInfinity || s.kind == NegativeInfinity
}

// Kind implements Number.
func (Special) Kind() Kind { return KindSpecial }

func (s Special) String() string {
	switch s.kind {
	case PositiveInfinity:
		return "Infinity"
	case NegativeInfinity:
		return "-Infinity"
	case SignalingNaN:
		if s.payload != nil {
			return "sNaN" + s.payload.String()
		}

		return "sNaN"
	}

	if s.payload != nil {
		return "NaN" + s.payload.String()
	}

	return "NaN"
}

func (Special) isNumber() {}

func (s Special) negate() Special {
	switch s.kind {
	case PositiveInfinity:
		return Special{kind: NegativeInfinity, family: s.family}
	case NegativeInfinity:
		return Special{kind: PositiveInfinity, family: s.family}
	}

	return s
}

func (s Special) sign() int {
	if s.kind == NegativeInfinity {
		return -1
	}

	return 1
}
