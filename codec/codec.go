// Package codec centralizes encoding of serialized filter records.
//
// Codec selection is a compatibility boundary: filter records are plain JSON
// and every built-in codec produces interchangeable bytes, but snapshots store
// the codec name in their header so they can be decoded by the codec that
// wrote them.
package codec

import "fmt"

// Codec encodes/decodes filter records.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used by self-describing snapshots that store the codec name in
// their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
