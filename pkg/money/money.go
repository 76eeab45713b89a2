package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents holds an amount in euro cents. All arithmetic stays in integer minor
// units; decimals only appear at the parse/format boundary.
type Cents int64

// Parse converts a decimal string ("8.5", "9.00") to cents, rounding half-up
// beyond two fraction digits.
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return FromDecimal(d), nil
}

func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats with exactly two fraction digits, e.g. "9.00".
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON emits a plain 2dp number so API payloads read "price": 9.00.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.Decimal().StringFixed(2)), nil
}

func (c *Cents) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*c = 0
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Mul scales a unit amount by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}
