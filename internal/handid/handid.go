// Package handid generates sortable identifiers for hands.
//
// IDs are UUIDv7 values written as 26 characters of Crockford base32, the
// same shape TypeID uses, so IDs sort by creation time.
package handid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID.
const Length = 26

// New returns a fresh hand ID.
func New() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate hand id: %w", err)
	}
	return Encode(u), nil
}

// MustNew is New for callers that cannot recover from a broken entropy source.
func MustNew() string {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}

// Encode writes u as 26 base32 characters. The 128 bits are treated as a
// 130-bit number with two leading zero bits, so the first character is 0-7.
func Encode(u uuid.UUID) string {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(u[i])
		lo = lo<<8 | uint64(u[i+8])
	}

	out := make([]byte, Length)
	for i := 0; i < Length; i++ {
		shift := uint(125 - 5*i)
		out[i] = alphabet[bits5(hi, lo, shift)]
	}
	return string(out)
}

// Validate checks that id could have been produced by Encode.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("hand id must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand id first character must be 0-7, got %c", id[0])
	}
	for i, r := range id {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("invalid character %c at position %d", r, i)
		}
	}
	return nil
}

func bits5(hi, lo uint64, shift uint) uint64 {
	var v uint64
	switch {
	case shift >= 64:
		v = hi >> (shift - 64)
	case shift == 0:
		v = lo
	default:
		v = lo>>shift | hi<<(64-shift)
	}
	return v & 0x1f
}
