package common

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Address is a fixed-width identifier of a balance holder. The zero value
// is the reserved sentinel: it is never a valid transfer recipient, a valid
// burn source, or a valid subject of a balance query.
type Address [20]byte

// Hash is a 32-byte keccak digest.
type Hash [32]byte

// Selector is the first four bytes of the keccak hash of a function
// signature, used by the acceptance protocol to match receipt
// acknowledgements.
type Selector [4]byte

// ConstError is a const-compatible error type. The string carried by a
// ConstError is the literal failure reason surfaced to callers, so the
// exact text matters.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// IsZero reports whether the address is the reserved sentinel.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText encodes the address as 0x-prefixed hex. Together with
// UnmarshalText this makes addresses usable in JSON payloads and as JSON
// map keys.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", data, err)
	}
	if len(raw) != len(a) {
		return fmt.Errorf("invalid address %q: got %d bytes, want %d", data, len(raw), len(a))
	}
	copy(a[:], raw)
	return nil
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// Keccak256 computes the keccak-256 digest of the given data.
func Keccak256(data []byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	var res Hash
	hasher.Sum(res[0:0])
	return res
}

// SelectorOf derives the function selector of a canonical signature, for
// instance "onERC1155Received(address,address,uint256,uint256,bytes)".
func SelectorOf(signature string) Selector {
	hash := Keccak256([]byte(signature))
	return Selector(hash[:4])
}

// Xor combines two selectors. Interface identifiers are defined as the
// xor over all member function selectors.
func (s Selector) Xor(other Selector) Selector {
	var res Selector
	for i := range res {
		res[i] = s[i] ^ other[i]
	}
	return res
}
