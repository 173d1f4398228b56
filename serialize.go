package bloomgo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/bloomgo/codec"
	"github.com/hupe1980/bloomgo/internal/bitfield"
)

// Type tags carried by serialized records. The tags, field names, and the
// byte-field encoding are a wire format shared with other implementations;
// keep them stable.
const (
	typeBloomer  = "Bloomer"
	typeScalable = "Scalable"
)

// bloomerRecord is the serialized form of a Bloomer.
//
// ba_size is the bit-array length in bits; ba_field carries the packed bit
// bytes with one code point per byte (U+0000..U+00FF) so the record survives
// UTF-8 transports losslessly.
type bloomerRecord struct {
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Count    int    `json:"count"`
	K        int    `json:"k"`
	BASize   int    `json:"ba_size"`
	BAField  string `json:"ba_field"`
}

// scalableRecord is the serialized form of a Scalable: the overall target and
// the ordered stage records, each carrying its own type tag.
type scalableRecord struct {
	Type                     string            `json:"type"`
	FalsePositiveProbability float64           `json:"false_positive_probability"`
	Bloomers                 []json.RawMessage `json:"bloomers"`
}

// envelope is decoded first to pick the concrete record shape.
type envelope struct {
	Type string `json:"type"`
}

// Marshal encodes f as its tagged record. A nil codec means codec.Default.
func Marshal(c codec.Codec, f Filter) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}

	switch v := f.(type) {
	case *Bloomer:
		return c.Marshal(v.record())
	case *Scalable:
		rec := scalableRecord{
			Type:                     typeScalable,
			FalsePositiveProbability: v.falsePositiveRate,
			Bloomers:                 make([]json.RawMessage, 0, len(v.bloomers)),
		}
		for _, b := range v.bloomers {
			raw, err := c.Marshal(b.record())
			if err != nil {
				return nil, err
			}
			rec.Bloomers = append(rec.Bloomers, json.RawMessage(raw))
		}
		return c.Marshal(&rec)
	default:
		return nil, fmt.Errorf("bloomgo: cannot marshal filter of type %T", f)
	}
}

// Unmarshal decodes a tagged filter record, dispatching on its "type" tag.
// A nil codec means codec.Default.
//
// Unknown tags fail with *ErrUnknownFilterType; missing or inconsistent
// fields fail with ErrMalformedRecord. A record that does not validate never
// yields a filter.
func Unmarshal(c codec.Codec, data []byte) (Filter, error) {
	if c == nil {
		c = codec.Default
	}

	var env envelope
	if err := c.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	switch env.Type {
	case typeBloomer:
		var rec bloomerRecord
		if err := c.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		return rec.restore()
	case typeScalable:
		var rec scalableRecord
		if err := c.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		if rec.FalsePositiveProbability <= 0 || rec.FalsePositiveProbability >= 1 {
			return nil, fmt.Errorf("%w: false positive probability %v out of range", ErrMalformedRecord, rec.FalsePositiveProbability)
		}
		if len(rec.Bloomers) == 0 {
			return nil, fmt.Errorf("%w: scalable record has no stages", ErrMalformedRecord)
		}
		s := &Scalable{
			falsePositiveRate: rec.FalsePositiveProbability,
			bloomers:          make([]*Bloomer, 0, len(rec.Bloomers)),
		}
		for _, raw := range rec.Bloomers {
			nested, err := Unmarshal(c, raw)
			if err != nil {
				return nil, err
			}
			b, ok := nested.(*Bloomer)
			if !ok {
				return nil, fmt.Errorf("%w: stage record must be a Bloomer", ErrMalformedRecord)
			}
			s.bloomers = append(s.bloomers, b)
		}
		return s, nil
	default:
		return nil, &ErrUnknownFilterType{Type: env.Type}
	}
}

// record builds the serialized form of b.
func (b *Bloomer) record() *bloomerRecord {
	return &bloomerRecord{
		Type:     typeBloomer,
		Capacity: b.capacity,
		Count:    b.count,
		K:        b.k,
		BASize:   int(b.bits.Len()),
		BAField:  encodeByteField(b.bits.Bytes()),
	}
}

// restore rebuilds a Bloomer directly from its stored fields. Nothing is
// re-derived: capacity, count, k, and the bit array come back exactly as
// serialized.
func (r *bloomerRecord) restore() (*Bloomer, error) {
	if r.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrMalformedRecord, r.Capacity)
	}
	if r.K <= 0 {
		return nil, fmt.Errorf("%w: k %d", ErrMalformedRecord, r.K)
	}
	if r.Count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrMalformedRecord, r.Count)
	}
	if r.BASize <= 0 {
		return nil, fmt.Errorf("%w: ba_size %d", ErrMalformedRecord, r.BASize)
	}

	raw, err := decodeByteField(r.BAField)
	if err != nil {
		return nil, err
	}
	bits, err := bitfield.FromBytes(uint(r.BASize), raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return &Bloomer{
		capacity: r.Capacity,
		k:        r.K,
		count:    r.Count,
		bits:     bits,
	}, nil
}

// encodeByteField maps each storage byte to one code point in U+0000..U+00FF.
func encodeByteField(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}

// decodeByteField inverts encodeByteField. Code points above U+00FF (or
// invalid UTF-8) mean the field was not produced by this encoding.
func decodeByteField(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: byte field contains code point %U", ErrMalformedRecord, r)
		}
		out = append(out, byte(r))
	}
	return out, nil
}
