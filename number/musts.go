package number

import "fmt"

// MustParse is like Parse but panics if the text cannot be parsed.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}

	return n
}

// MustParseDecimal is like ParseDecimal but panics if the text cannot be
// parsed.
func MustParseDecimal(s string) DecimalFraction {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseDecimal(%q) failed: %v", s, err))
	}

	return d
}

// MustRational is like NewRationalInt64 but panics on a zero denominator.
func MustRational(num, den int64) Rational {
	r, err := NewRationalInt64(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustRational(%d, %d) failed: %v", num, den, err))
	}

	return r
}
