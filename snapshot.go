package bloomgo

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/bloomgo/codec"
	"github.com/hupe1980/bloomgo/internal/hash"
)

const (
	snapshotMagic   = 0x424C4D46 // "BLMF"
	snapshotVersion = 1
)

// WriteSnapshot writes f to w as a self-describing binary snapshot.
//
// Format:
//
//	Header (16 bytes):
//	  Magic    (4 bytes)
//	  Version  (4 bytes)
//	  Checksum (4 bytes) - CRC32C of payload
//	  Length   (4 bytes) - payload length in bytes
//
//	Payload:
//	  CodecNameLen (2 bytes)
//	  CodecName    (bytes)
//	  Record       (zstd-compressed codec output)
//
// The codec name in the payload lets ReadSnapshot decode records written by
// any built-in codec. A nil codec means codec.Default.
func WriteSnapshot(w io.Writer, c codec.Codec, f Filter) error {
	if c == nil {
		c = codec.Default
	}

	record, err := Marshal(c, f)
	if err != nil {
		return err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	compressed := enc.EncodeAll(record, nil)
	if err := enc.Close(); err != nil {
		return err
	}

	name := c.Name()
	payload := make([]byte, 0, 2+len(name)+len(compressed))
	payload = binary.LittleEndian.AppendUint16(payload, uint16(len(name)))
	payload = append(payload, name...)
	payload = append(payload, compressed...)

	header := make([]byte, 16)
	binary.LittleEndian.PutUint32(header[0:4], snapshotMagic)
	binary.LittleEndian.PutUint32(header[4:8], snapshotVersion)
	binary.LittleEndian.PutUint32(header[8:12], hash.CRC32C(payload))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(payload)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadSnapshot reads a filter snapshot written by WriteSnapshot.
//
// It fails closed: a wrong magic, an unsupported version, or a checksum
// mismatch never yields a filter.
func ReadSnapshot(r io.Reader) (Filter, error) {
	header := make([]byte, 16)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	if magic := binary.LittleEndian.Uint32(header[0:4]); magic != snapshotMagic {
		return nil, ErrBadMagic
	}
	if version := binary.LittleEndian.Uint32(header[4:8]); version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrIncompatibleVersion, version)
	}
	checksum := binary.LittleEndian.Uint32(header[8:12])
	length := binary.LittleEndian.Uint32(header[12:16])

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	if hash.CRC32C(payload) != checksum {
		return nil, ErrChecksumMismatch
	}

	if len(payload) < 2 {
		return nil, fmt.Errorf("%w: truncated snapshot payload", ErrMalformedRecord)
	}
	nameLen := int(binary.LittleEndian.Uint16(payload[:2]))
	if len(payload) < 2+nameLen {
		return nil, fmt.Errorf("%w: truncated codec name", ErrMalformedRecord)
	}
	name := string(payload[2 : 2+nameLen])
	c, ok := codec.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	record, err := dec.DecodeAll(payload[2+nameLen:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return Unmarshal(c, record)
}
