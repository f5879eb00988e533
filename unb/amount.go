package unb

import (
	"fmt"
	"strconv"
)

// Amount is a currency quantity as the platform represents it: either a
// 64-bit integer or an unbounded value. JSON has no infinity literal,
// so the platform encodes unbounded amounts as the strings "Infinity"
// and "-Infinity"; Amount owns that translation in both directions.
//
// When Infinite is set, Value only carries the sign.
type Amount struct {
	Value    int64
	Infinite bool
}

// AmountOf wraps v for a BalanceChange field.
func AmountOf(v int64) *Amount {
	return &Amount{Value: v}
}

// Unlimited returns the unbounded amount for a BalanceChange field.
func Unlimited() *Amount {
	return &Amount{Infinite: true}
}

func (a Amount) String() string {
	if a.Infinite {
		if a.Value < 0 {
			return "-Infinity"
		}
		return "Infinity"
	}
	return strconv.FormatInt(a.Value, 10)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Infinite {
		if a.Value < 0 {
			return []byte(`"-Infinity"`), nil
		}
		return []byte(`"Infinity"`), nil
	}
	return []byte(strconv.FormatInt(a.Value, 10)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	switch s {
	case "Infinity":
		*a = Amount{Infinite: true}
		return nil
	case "-Infinity":
		*a = Amount{Infinite: true, Value: -1}
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// The platform occasionally emits amounts in float notation.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("cannot parse amount %s", string(b))
		}
		n = int64(f)
	}

	*a = Amount{Value: n}
	return nil
}
