package jsonnum

import (
	"strings"

	"github.com/calebcase/numcbor/number"
)

// Parts is a lexed JSON number.
type Parts struct {
	Negative bool

	// Integer holds the digits before the point.
	Integer string

	// Fraction holds the digits after the point, if any.
	Fraction string

	// Exponent holds the optionally signed exponent digits, if any.
	Exponent string
}

func (p Parts) String() string {
	var b strings.Builder

	if p.Negative {
		b.WriteByte('-')
	}

	b.WriteString(p.Integer)

	if p.Fraction != "" {
		b.WriteByte('.')
		b.WriteString(p.Fraction)
	}

	if p.Exponent != "" {
		b.WriteByte('e')
		b.WriteString(p.Exponent)
	}

	return b.String()
}

// Options bound the numbers accepted by the parser. Zero means no limit.
type Options struct {
	// MaxDigits bounds the number of significand digits.
	MaxDigits int

	// MaxExponentDigits bounds the number of exponent digits.
	MaxExponentDigits int
}

// DefaultOptions returns the limits used by Parse and ParseParts.
func DefaultOptions() Options {
	return Options{
		MaxDigits:         4096,
		MaxExponentDigits: 9,
	}
}

// Parse parses JSON number text with DefaultOptions.
func Parse(text string) (number.DecimalFraction, error) {
	return DefaultOptions().Parse(text)
}

// ParseParts builds the value of lexed parts with DefaultOptions.
func ParseParts(p Parts) (number.DecimalFraction, error) {
	return DefaultOptions().ParseParts(p)
}

// Parse parses JSON number text.
func (o Options) Parse(text string) (number.DecimalFraction, error) {
	p, err := Lex(text)
	if err != nil {
		return number.DecimalFraction{}, err
	}

	return o.ParseParts(p)
}

// ParseParts builds the value of lexed parts. The parts are validated
// against the grammar before use.
func (o Options) ParseParts(p Parts) (number.DecimalFraction, error) {
	err := p.validate()
	if err != nil {
		return number.DecimalFraction{}, err
	}

	digits := len(p.Integer) + len(p.Fraction)
	if o.MaxDigits > 0 && digits > o.MaxDigits {
		return number.DecimalFraction{}, ErrLimit.New("%d significand digits exceeds %d", digits, o.MaxDigits)
	}

	exp := len(strings.TrimLeft(p.Exponent, "+-"))
	if o.MaxExponentDigits > 0 && exp > o.MaxExponentDigits {
		return number.DecimalFraction{}, ErrLimit.New("%d exponent digits exceeds %d", exp, o.MaxExponentDigits)
	}

	d, err := number.ParseDecimal(p.String())
	if err != nil {
		return number.DecimalFraction{}, ErrMalformed.Wrap(err)
	}

	return d, nil
}

func (p Parts) validate() error {
	switch {
	case p.Integer == "" || !digits(p.Integer):
		return ErrMalformed.New("integer part %q", p.Integer)
	case len(p.Integer) > 1 && p.Integer[0] == '0':
		return ErrMalformed.New("leading zero in %q", p.Integer)
	case p.Fraction != "" && !digits(p.Fraction):
		return ErrMalformed.New("fraction part %q", p.Fraction)
	}

	if p.Exponent != "" {
		e := p.Exponent
		if e[0] == '+' || e[0] == '-' {
			e = e[1:]
		}

		if e == "" || !digits(e) {
			return ErrMalformed.New("exponent part %q", p.Exponent)
		}
	}

	return nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// run returns the length of the digit run at the start of s.
func run(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}

// Lex splits JSON number text into its parts.
func Lex(text string) (p Parts, err error) {
	s := text

	if strings.HasPrefix(s, "-") {
		p.Negative = true
		s = s[1:]
	}

	n := run(s)
	if n == 0 {
		return Parts{}, ErrMalformed.New("%q: missing integer digits", text)
	}
	p.Integer, s = s[:n], s[n:]

	if strings.HasPrefix(s, ".") {
		n = run(s[1:])
		if n == 0 {
			return Parts{}, ErrMalformed.New("%q: missing fraction digits", text)
		}
		p.Fraction, s = s[1:n+1], s[n+1:]
	}

	if strings.HasPrefix(s, "e") || strings.HasPrefix(s, "E") {
		e := s[1:]

		sign := 0
		if strings.HasPrefix(e, "+") || strings.HasPrefix(e, "-") {
			sign = 1
		}

		n = run(e[sign:])
		if n == 0 {
			return Parts{}, ErrMalformed.New("%q: missing exponent digits", text)
		}
		p.Exponent, s = e[:sign+n], e[sign+n:]
	}

	if s != "" {
		return Parts{}, ErrMalformed.New("%q: unexpected %q", text, s)
	}

	err = p.validate()
	if err != nil {
		return Parts{}, err
	}

	return p, nil
}
