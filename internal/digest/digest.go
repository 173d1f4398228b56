// Package digest computes the wide hash digest that index derivation consumes.
//
// A Bloom filter derives all of its bit indices from a single digest, so the
// digest must be wide enough to survive three successive divisions by the bit
// array length. MurmurHash3's 128-bit variant covers bit arrays well beyond
// any practical capacity (m^3 < 2^128 for m < 2^42).
//
// The digest is part of the persisted format: serialized filters are only
// readable by implementations using the same digest over the same item bytes.
package digest

import (
	"math/big"

	"github.com/spaolacci/murmur3"
)

// Sum returns the 128-bit MurmurHash3 digest of the item's string form as an
// arbitrary-precision integer. Deterministic across calls and processes.
func Sum(item string) *big.Int {
	h1, h2 := murmur3.Sum128([]byte(item))
	h := new(big.Int).SetUint64(h1)
	h.Lsh(h, 64)
	return h.Or(h, new(big.Int).SetUint64(h2))
}
