// Package bloomgo implements Bloom filters and Scalable Bloom filters for Go.
//
// A Bloom filter answers set-membership queries in sub-linear memory: a "no"
// is always correct, a "yes" is correct up to a tunable false-positive rate.
// A Scalable Bloom filter chains fixed filters of geometrically growing
// capacity and tightening error budgets, so the stream size never has to be
// declared up front.
//
// # Quick Start
//
// Fixed capacity:
//
//	bf, _ := bloomgo.NewBloomer(10_000, bloomgo.DefaultFalsePositiveRate)
//	bf.Add("cat")
//	bf.Contains("cat") // true
//	bf.Contains("dog") // false (or a bounded false positive)
//
// Unbounded stream:
//
//	sf, _ := bloomgo.NewScalable(bloomgo.DefaultInitialCapacity, 0.001)
//	for item := range stream {
//	    sf.Add(item)
//	}
//
// # Serialization
//
// Filters round-trip through tagged JSON records via Marshal/Unmarshal, and
// through a checksummed, compressed binary container via WriteSnapshot and
// ReadSnapshot. Records are self-describing: deserialization dispatches on
// the "type" tag and fails closed on anything it does not recognize.
//
// # Concurrency
//
// Filters perform no locking. Concurrent mutation is undefined behavior;
// callers that share a filter across goroutines must serialize access.
package bloomgo
