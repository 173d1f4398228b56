package bloomgo

import (
	"math"
	"math/big"

	"github.com/hupe1980/bloomgo/internal/bitfield"
	"github.com/hupe1980/bloomgo/internal/digest"
)

// DefaultFalsePositiveRate is the false-positive target used by the examples
// and recommended as a starting point (0.1%).
const DefaultFalsePositiveRate = 0.001

// Bloomer is a fixed-capacity Bloom filter.
//
// The bit array size m and the number of probed positions k are derived from
// the capacity and the false-positive target at construction and never change.
// Once more than Capacity distinct items have been added, the false-positive
// guarantee degrades; use Scalable when the stream size is unknown.
type Bloomer struct {
	capacity int
	k        int
	count    int
	bits     *bitfield.Field
}

// NewBloomer creates a Bloom filter sized for capacity distinct items at the
// given false-positive rate.
//
// Sizing follows the standard optima: m = -n·ln(p)/ln²2 bits, k = m/n·ln2
// probes per item.
func NewBloomer(capacity int, falsePositiveRate float64) (*Bloomer, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		return nil, ErrInvalidFalsePositiveRate
	}

	m := int(math.Ceil(-float64(capacity) * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2)))
	k := int(math.Round(math.Ln2 * float64(m) / float64(capacity)))
	if k < 1 {
		k = 1
	}

	return &Bloomer{
		capacity: capacity,
		k:        k,
		bits:     bitfield.New(uint(m)),
	}, nil
}

// Add inserts item and reports whether it appeared to be new.
//
// The novelty test is approximate: if every probed bit was already set the
// item is treated as previously included and Count is not incremented, so a
// false positive makes Count under-report true unique insertions. That is an
// accepted limitation, not a bug.
func (b *Bloomer) Add(item string) bool {
	preset := 0
	for _, i := range b.indices(item) {
		if b.bits.Test(i) {
			preset++
		}
		b.bits.Set(i)
	}
	if preset == b.k {
		return false
	}
	b.count++
	return true
}

// Contains reports whether item may have been added. A false result is
// definitive; a true result is wrong with probability bounded by the
// construction-time target while Count stays within Capacity.
func (b *Bloomer) Contains(item string) bool {
	for _, i := range b.indices(item) {
		if !b.bits.Test(i) {
			return false
		}
	}
	return true
}

// Capacity returns the declared capacity of the filter.
func (b *Bloomer) Capacity() int {
	return b.capacity
}

// Count returns the number of adds that were judged novel.
func (b *Bloomer) Count() int {
	return b.count
}

// EstimatedFalsePositiveRate returns the expected false-positive rate at the
// current fill: (1 - e^(-k·n/m))^k.
func (b *Bloomer) EstimatedFalsePositiveRate() float64 {
	if b.count == 0 {
		return 0
	}
	kn := float64(b.k) * float64(b.count)
	m := float64(b.bits.Len())
	return math.Pow(1-math.Exp(-kn/m), float64(b.k))
}

// indices derives the k probed bit positions for item from one digest.
//
// Three seeds x, y, z come from successive mod/div of the digest by m. The
// first index is x; each further index follows x' = (x+y) mod m,
// y' = (y+z) mod m with z held fixed. One digest computation instead of k.
func (b *Bloomer) indices(item string) []uint {
	m := new(big.Int).SetUint64(uint64(b.bits.Len()))
	h := digest.Sum(item)

	x, y, z := new(big.Int), new(big.Int), new(big.Int)
	h.DivMod(h, m, x)
	h.DivMod(h, m, y)
	h.DivMod(h, m, z)

	out := make([]uint, 0, b.k)
	out = append(out, uint(x.Uint64()))
	for i := 1; i < b.k; i++ {
		x.Add(x, y).Mod(x, m)
		y.Add(y, z).Mod(y, m)
		out = append(out, uint(x.Uint64()))
	}
	return out
}
