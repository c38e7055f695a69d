// Package amount provides the balance quantity type of the ledger: an
// immutable 256-bit unsigned integer. All subtraction is checked, so a
// balance can never be observed negative.
package amount

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Amount is an immutable 256-bit unsigned integer with value semantics.
type Amount struct {
	internal uint256.Int
}

// New creates an Amount from up to four uint64 arguments, given in
// big-endian order. New() is zero, New(x) is x, New(hi, lo) is hi<<64|lo,
// and so on.
func New(args ...uint64) Amount {
	if len(args) > 4 {
		panic(fmt.Sprintf("too many arguments for amount, got %d, max 4", len(args)))
	}
	var value uint256.Int
	for _, arg := range args {
		value.Lsh(&value, 64)
		value.Or(&value, uint256.NewInt(arg))
	}
	return Amount{internal: value}
}

// NewFromUint256 creates an Amount from a uint256 value.
func NewFromUint256(value *uint256.Int) Amount {
	return Amount{internal: *value}
}

// NewFromBig creates an Amount from a big.Int; the second return value
// reports whether the input was out of the representable range.
func NewFromBig(value *big.Int) (Amount, bool) {
	var res uint256.Int
	overflow := res.SetFromBig(value)
	if overflow || value.Sign() < 0 {
		return Amount{}, false
	}
	return Amount{internal: res}, true
}

// Parse parses a decimal amount.
func Parse(s string) (Amount, error) {
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{internal: *value}, nil
}

// Uint256 returns a copy of the amount's value.
func (a Amount) Uint256() *uint256.Int {
	value := a.internal
	return &value
}

// ToBig returns the amount as a big.Int.
func (a Amount) ToBig() *big.Int {
	return a.internal.ToBig()
}

// Add returns a+b. The second return value is false if the sum exceeds
// the representable range.
func (a Amount) Add(b Amount) (Amount, bool) {
	var res uint256.Int
	_, carry := res.AddOverflow(&a.internal, &b.internal)
	return Amount{internal: res}, !carry
}

// Sub returns a-b. The second return value is false if b exceeds a; in
// that case the returned amount is zero. Callers are expected to treat
// that as an insufficiency, never as a wrapped value.
func (a Amount) Sub(b Amount) (Amount, bool) {
	if a.internal.Lt(&b.internal) {
		return Amount{}, false
	}
	var res uint256.Int
	res.Sub(&a.internal, &b.internal)
	return Amount{internal: res}, true
}

// Less reports whether a is strictly smaller than b.
func (a Amount) Less(b Amount) bool {
	return a.internal.Lt(&b.internal)
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.internal.IsZero()
}

func (a Amount) String() string {
	return a.internal.Dec()
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
