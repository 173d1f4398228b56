package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Filter records are flat maps of numbers and strings, which JSON carries
// portably; the bit-array field is restricted to single-byte code points so
// it survives the UTF-8 round trip losslessly.
//
// If you need the most portable/lowest-dependency option, use JSON. Snapshots
// always record the codec name, so the default may change over time without
// breaking existing data.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// NOTE: This affects newly-written records and snapshots. Snapshots are
// self-describing (they store the codec name in their header) and are opened
// by selecting the appropriate codec by name.
var Default Codec = GoJSON{}
