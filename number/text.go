package number

import (
	"math/big"
	"strings"
)

// formatDecimal renders mant * 10^exp. Plain notation is used when the
// exponent is not positive and the adjusted exponent is at least -6;
// otherwise scientific notation with one leading digit:
//
//	123 * 10^-2  -> 1.23
//	1 * 10^-7    -> 1E-7
//	123 * 10^2   -> 1.23E+4
func formatDecimal(mant, exp *big.Int, negZero bool) string {
	sb := &strings.Builder{}

	if mant.Sign() < 0 || (mant.Sign() == 0 && negZero) {
		sb.WriteByte('-')
	}

	digits := new(big.Int).Abs(mant).String()

	if exp.Sign() == 0 {
		sb.WriteString(digits)

		return sb.String()
	}

	adjusted := new(big.Int).Add(exp, big.NewInt(int64(len(digits)-1)))

	if exp.Sign() < 0 && adjusted.Cmp(big.NewInt(-6)) >= 0 {
		// len(digits) + exp fits an int since adjusted >= -6 and exp < 0.
		point := len(digits) + int(exp.Int64())
		if point > 0 {
			sb.WriteString(digits[:point])
			sb.WriteByte('.')
			sb.WriteString(digits[point:])
		} else {
			sb.WriteString("0.")
			sb.WriteString(strings.Repeat("0", -point))
			sb.WriteString(digits)
		}

		return sb.String()
	}

	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte('E')
	if adjusted.Sign() >= 0 {
		sb.WriteByte('+')
	}
	sb.WriteString(adjusted.String())

	return sb.String()
}

// ParseDecimal parses a decimal literal:
//
//	[+-] digits [. digits] [(e|E) [+-] digits]
//
// At least one digit must appear before or after the point. Malformed text
// returns ErrInvalidArgument. A negative sign on a zero literal produces -0.
func ParseDecimal(s string) (DecimalFraction, error) {
	text := s

	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	i := digitRun(s)
	intPart := s[:i]
	s = s[i:]

	var fracPart string
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		i = digitRun(s)
		fracPart = s[:i]
		s = s[i:]
	}

	if intPart == "" && fracPart == "" {
		return DecimalFraction{}, ErrInvalidArgument.New("malformed decimal %q", text)
	}

	exp := new(big.Int)
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]

		expText := s
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			s = s[1:]
		}

		i = digitRun(s)
		if i == 0 || i != len(s) {
			return DecimalFraction{}, ErrInvalidArgument.New("malformed exponent in %q", text)
		}

		if _, ok := exp.SetString(strings.TrimPrefix(expText, "+"), 10); !ok {
			return DecimalFraction{}, ErrInvalidArgument.New("malformed exponent in %q", text)
		}

		s = ""
	}

	if s != "" {
		return DecimalFraction{}, ErrInvalidArgument.New("malformed decimal %q", text)
	}

	mant, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return DecimalFraction{}, ErrInvalidArgument.New("malformed decimal %q", text)
	}
	if neg {
		mant.Neg(mant)
	}

	exp.Sub(exp, big.NewInt(int64(len(fracPart))))

	return DecimalFraction{mant: mant, exp: exp, neg: neg && mant.Sign() == 0}, nil
}

func digitRun(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}

// Parse parses any textual Number: a decimal literal, a rational "n/d", or one
// of Infinity, -Infinity, NaN and sNaN (optionally followed by payload
// digits). Specials parsed this way belong to FamilyDecimal.
func Parse(s string) (Number, error) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	neg := strings.HasPrefix(s, "-")

	switch {
	case strings.EqualFold(body, "Infinity") || strings.EqualFold(body, "Inf"):
		if neg {
			return Infinity(-1, FamilyDecimal), nil
		}

		return Infinity(1, FamilyDecimal), nil
	case hasFoldPrefix(body, "sNaN"):
		return parseNaN(s, body[4:], true)
	case hasFoldPrefix(body, "NaN"):
		return parseNaN(s, body[3:], false)
	}

	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, ok := new(big.Int).SetString(s[:i], 10)
		if !ok {
			return nil, ErrInvalidArgument.New("malformed rational %q", s)
		}

		den, ok := new(big.Int).SetString(s[i+1:], 10)
		if !ok {
			return nil, ErrInvalidArgument.New("malformed rational %q", s)
		}

		r, err := NewRational(num, den)
		if err != nil {
			return nil, err
		}
		r.neg = neg && num.Sign() == 0

		return r, nil
	}

	return ParseDecimal(s)
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func parseNaN(text, payload string, signaling bool) (Number, error) {
	if payload == "" {
		return NewNaN(FamilyDecimal, signaling, nil), nil
	}
	if digitRun(payload) != len(payload) {
		return nil, ErrInvalidArgument.New("malformed NaN payload %q", text)
	}

	p, _ := new(big.Int).SetString(payload, 10)

	return NewNaN(FamilyDecimal, signaling, p), nil
}
