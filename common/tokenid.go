package common

import (
	"fmt"

	"github.com/holiman/uint256"
)

// TokenID identifies one asset class within the ledger. It has full
// 256-bit range and value semantics, so it can serve directly as a map
// key. The zero id is reserved; the ledger's sequence counter starts
// handing out ids at one.
type TokenID uint256.Int

// TokenIDOf returns the token id for a small integer value.
func TokenIDOf(value uint64) TokenID {
	return TokenID(*uint256.NewInt(value))
}

// ParseTokenID parses a decimal token id.
func ParseTokenID(s string) (TokenID, error) {
	value, err := uint256.FromDecimal(s)
	if err != nil {
		return TokenID{}, fmt.Errorf("invalid token id %q: %w", s, err)
	}
	return TokenID(*value), nil
}

// Uint256 returns a copy of the id as a uint256 for arithmetic.
func (id TokenID) Uint256() *uint256.Int {
	value := uint256.Int(id)
	return &value
}

// Next returns the id following this one. Used by the sequence counter,
// which advances by exactly one per asset-class creation.
func (id TokenID) Next() TokenID {
	var res uint256.Int
	res.AddUint64(id.Uint256(), 1)
	return TokenID(res)
}

// IsZero reports whether this is the reserved zero id.
func (id TokenID) IsZero() bool {
	return id == TokenID{}
}

func (id TokenID) String() string {
	return id.Uint256().Dec()
}

func (id TokenID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *TokenID) UnmarshalText(data []byte) error {
	parsed, err := ParseTokenID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
