package bloomgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a filter is constructed with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("bloomgo: capacity must be positive")

	// ErrInvalidFalsePositiveRate is returned when the target false-positive
	// rate is outside (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("bloomgo: false positive rate must be in (0, 1)")

	// ErrMalformedRecord indicates a serialized record with missing or
	// inconsistent fields. The detail is available via errors.Unwrap.
	ErrMalformedRecord = errors.New("bloomgo: malformed filter record")

	// ErrBadMagic indicates data that is not a filter snapshot.
	ErrBadMagic = errors.New("bloomgo: not a filter snapshot")

	// ErrIncompatibleVersion indicates a snapshot version this library does
	// not support.
	ErrIncompatibleVersion = errors.New("bloomgo: incompatible snapshot version")

	// ErrChecksumMismatch indicates a snapshot whose payload does not match
	// its recorded checksum.
	ErrChecksumMismatch = errors.New("bloomgo: snapshot checksum mismatch")

	// ErrUnknownCodec indicates a snapshot written by a codec this build does
	// not provide.
	ErrUnknownCodec = errors.New("bloomgo: unknown snapshot codec")
)

// ErrUnknownFilterType indicates a serialized record whose type tag matches
// no recognized filter shape.
type ErrUnknownFilterType struct {
	Type string
}

func (e *ErrUnknownFilterType) Error() string {
	return fmt.Sprintf("bloomgo: unknown filter type %q", e.Type)
}
