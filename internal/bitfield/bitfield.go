// Package bitfield wraps a fixed-capacity bit vector for use as Bloom filter
// backing storage.
//
// The wrapper pins the bit length at construction and exposes the packed byte
// representation used by the serialized record format: bit i lives in byte
// i/8 at position i%8 (LSB first). The byte layout is part of the persisted
// format; keep it stable.
package bitfield

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Field is a fixed-length bit vector. Bits start zeroed and are only ever set.
type Field struct {
	bits *bitset.BitSet
	n    uint
}

// New creates a zeroed Field of n bits.
func New(n uint) *Field {
	return &Field{
		bits: bitset.New(n),
		n:    n,
	}
}

// Len returns the number of bits in the field.
func (f *Field) Len() uint {
	return f.n
}

// Test reports whether bit i is set.
func (f *Field) Test(i uint) bool {
	return f.bits.Test(i)
}

// Set sets bit i to 1.
func (f *Field) Set(i uint) {
	f.bits.Set(i)
}

// Bytes returns the packed representation of the field, ceil(n/8) bytes long.
// Bit i maps to byte i/8, position i%8.
func (f *Field) Bytes() []byte {
	words := f.bits.Bytes()
	out := make([]byte, (f.n+7)/8)
	for i := range out {
		word := words[i/8]
		out[i] = byte(word >> (8 * (i % 8)))
	}
	return out
}

// FromBytes reconstructs a Field of n bits from its packed representation.
// The data length must match ceil(n/8) exactly; no truncation or padding.
func FromBytes(n uint, data []byte) (*Field, error) {
	want := int((n + 7) / 8)
	if len(data) != want {
		return nil, fmt.Errorf("bitfield: got %d bytes, want %d for %d bits", len(data), want, n)
	}
	words := make([]uint64, (n+63)/64)
	for i, b := range data {
		words[i/8] |= uint64(b) << (8 * (i % 8))
	}
	return &Field{
		bits: bitset.FromWithLength(n, words),
		n:    n,
	}, nil
}
