package bloomgo

// Filter is the behavior shared by Bloomer and Scalable.
//
// Every item passed to Add is reported present by Contains for the lifetime
// of the filter (no false negatives). Contains may also report true for items
// never added, with a probability bounded by the construction-time target.
//
// Filters are not safe for concurrent use; callers must serialize access.
type Filter interface {
	// Add inserts item and reports whether it appeared to be new.
	Add(item string) bool

	// Contains reports whether item may have been added. False is definitive.
	Contains(item string) bool

	// Capacity returns the declared capacity of the filter.
	Capacity() int

	// Count returns the number of adds that were judged novel.
	Count() int
}
