package bloomgo

import (
	"math"
)

// DefaultInitialCapacity is the first-stage capacity used when the caller has
// no better estimate.
const DefaultInitialCapacity = 256

// Stage scaling constants. Each new stage doubles the capacity and tightens
// the per-stage error budget by tighteningRatio, so the cumulative
// false-positive rate across all stages converges below the overall target.
const (
	growthFactor    = 2
	tighteningRatio = math.Ln2 * math.Ln2
)

// Scalable is a Bloom filter that grows with the stream.
//
// It chains Bloomers of geometrically increasing capacity: adds go to the
// newest stage, lookups probe every stage. A new stage is created as soon as
// the active one saturates, so the caller never declares a final capacity.
type Scalable struct {
	falsePositiveRate float64
	bloomers          []*Bloomer
}

// NewScalable creates a Scalable filter whose cumulative false-positive rate
// stays bounded by falsePositiveRate across all stages.
func NewScalable(initialCapacity int, falsePositiveRate float64) (*Scalable, error) {
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		return nil, ErrInvalidFalsePositiveRate
	}

	// The first stage already gets a tightened budget; the overall target is
	// the sum of the geometric series over all stages.
	first, err := NewBloomer(initialCapacity, falsePositiveRate*tighteningRatio)
	if err != nil {
		return nil, err
	}

	return &Scalable{
		falsePositiveRate: falsePositiveRate,
		bloomers:          []*Bloomer{first},
	}, nil
}

// Add inserts item into the active stage and reports whether it appeared to
// be new. If the add saturated the active stage, the next stage is created
// before returning.
func (s *Scalable) Add(item string) bool {
	active := s.bloomers[len(s.bloomers)-1]
	added := active.Add(item)
	if added && active.Count() > active.Capacity() {
		s.grow()
	}
	return added
}

// grow appends the next stage: double the last capacity, tighten the budget
// by another factor of tighteningRatio.
func (s *Scalable) grow() {
	last := s.bloomers[len(s.bloomers)-1]
	rate := s.falsePositiveRate * math.Pow(tighteningRatio, float64(len(s.bloomers)))
	next, err := NewBloomer(last.Capacity()*growthFactor, rate)
	if err != nil {
		// Unreachable: capacity doubles from a positive value and the
		// tightened rate stays in (0, 1).
		panic(err)
	}
	s.bloomers = append(s.bloomers, next)
}

// Contains reports whether item may have been added to any stage.
// A false result is definitive.
func (s *Scalable) Contains(item string) bool {
	for _, b := range s.bloomers {
		if b.Contains(item) {
			return true
		}
	}
	return false
}

// Capacity returns the capacity of the active stage, not the sum across
// stages. Callers sizing storage from Capacity must account for this.
func (s *Scalable) Capacity() int {
	return s.bloomers[len(s.bloomers)-1].Capacity()
}

// Count returns the number of novel adds summed over all stages.
func (s *Scalable) Count() int {
	total := 0
	for _, b := range s.bloomers {
		total += b.Count()
	}
	return total
}

// Stages returns the number of chained stages.
func (s *Scalable) Stages() int {
	return len(s.bloomers)
}

// EstimatedFalsePositiveRate returns the compound rate over all stages:
// 1 - Π(1 - p_i).
func (s *Scalable) EstimatedFalsePositiveRate() float64 {
	miss := 1.0
	for _, b := range s.bloomers {
		miss *= 1 - b.EstimatedFalsePositiveRate()
	}
	return 1 - miss
}
