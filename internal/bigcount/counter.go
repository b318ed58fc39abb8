// Package bigcount provides the arbitrary-precision non-negative counters
// used for character-class counts and chunk units.
package bigcount

import (
	"fmt"
	"math"
	"math/big"

	"randkey/internal/domain"
)

var maxInt = big.NewInt(math.MaxInt)

// Counter is an immutable non-negative integer of arbitrary size.
// The zero value is 0.
type Counter struct {
	v *big.Int
}

// Zero returns a zero Counter.
func Zero() Counter {
	return Counter{}
}

// FromUint64 returns a Counter holding n.
func FromUint64(n uint64) Counter {
	return Counter{v: new(big.Int).SetUint64(n)}
}

// Parse reads a decimal numeral made only of ASCII digits.
// Signs, whitespace and other numerals are rejected.
func Parse(text string) (Counter, error) {
	if text == "" {
		return Counter{}, fmt.Errorf("parse %q: %w", text, domain.ErrInvalidNumber)
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return Counter{}, fmt.Errorf("parse %q: %w", text, domain.ErrInvalidNumber)
		}
	}

	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Counter{}, fmt.Errorf("parse %q: %w", text, domain.ErrInvalidNumber)
	}
	return Counter{v: v}, nil
}

func (c Counter) big() *big.Int {
	if c.v == nil {
		return new(big.Int)
	}
	return c.v
}

// Add returns a + b.
func Add(a, b Counter) Counter {
	return Counter{v: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b, failing if the result would be negative.
func Sub(a, b Counter) (Counter, error) {
	if a.Cmp(b) < 0 {
		return Counter{}, fmt.Errorf("%s - %s: %w", a, b, domain.ErrUnderflow)
	}
	return Counter{v: new(big.Int).Sub(a.big(), b.big())}, nil
}

// Mul returns a * b.
func Mul(a, b Counter) Counter {
	return Counter{v: new(big.Int).Mul(a.big(), b.big())}
}

// Sum adds all counters.
func Sum(cs ...Counter) Counter {
	total := new(big.Int)
	for _, c := range cs {
		total.Add(total, c.big())
	}
	return Counter{v: total}
}

// CeilDiv returns ceil(a / b). b must be nonzero.
func CeilDiv(a, b Counter) (Counter, error) {
	if b.IsZero() {
		return Counter{}, fmt.Errorf("divide %s by zero: %w", a, domain.ErrInvalidUnit)
	}
	q, r := new(big.Int).QuoRem(a.big(), b.big(), new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return Counter{v: q}, nil
}

// Cmp compares c and o and returns -1, 0 or +1.
func (c Counter) Cmp(o Counter) int {
	return c.big().Cmp(o.big())
}

// Equal reports whether c == o.
func (c Counter) Equal(o Counter) bool {
	return c.Cmp(o) == 0
}

// IsZero reports whether c == 0.
func (c Counter) IsZero() bool {
	return c.v == nil || c.v.Sign() == 0
}

// Int converts c to an int, failing if it exceeds math.MaxInt.
func (c Counter) Int() (int, error) {
	if c.big().Cmp(maxInt) > 0 {
		return 0, fmt.Errorf("convert %s: %w", c, domain.ErrOverflow)
	}
	return int(c.big().Int64()), nil
}

// String returns the decimal representation.
func (c Counter) String() string {
	return c.big().String()
}
