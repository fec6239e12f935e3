package number

import "math/big"

// Of converts a native Go value into a Number. Integers of every width,
// float32, float64, *big.Int, *big.Rat and Number values are accepted. A nil
// value returns ErrInvalidArgument; any other type returns
// ErrInvalidOperation.
func Of(v any) (Number, error) {
	switch x := v.(type) {
	case nil:
		return nil, ErrInvalidArgument.New("nil value")
	case Number:
		return x, nil
	case int:
		return Int64(x), nil
	case int8:
		return Int64(x), nil
	case int16:
		return Int64(x), nil
	case int32:
		return Int64(x), nil
	case int64:
		return Int64(x), nil
	case uint:
		return NewInteger(new(big.Int).SetUint64(uint64(x))), nil
	case uint8:
		return Int64(x), nil
	case uint16:
		return Int64(x), nil
	case uint32:
		return Int64(x), nil
	case uint64:
		return NewInteger(new(big.Int).SetUint64(x)), nil
	case float32:
		return FromFloat32(x), nil
	case float64:
		return FromFloat64(x), nil
	case *big.Int:
		if x == nil {
			return nil, ErrInvalidArgument.New("nil *big.Int")
		}

		return NewInteger(new(big.Int).Set(x)), nil
	case *big.Rat:
		if x == nil {
			return nil, ErrInvalidArgument.New("nil *big.Rat")
		}

		return fromRat(x), nil
	}

	return nil, ErrInvalidOperation.New("unsupported type %T", v)
}

func fromRat(x *big.Rat) Number {
	if x.IsInt() {
		return NewInteger(new(big.Int).Set(x.Num()))
	}

	return Rational{num: new(big.Int).Set(x.Num()), den: new(big.Int).Set(x.Denom())}
}
