// Package hash provides the checksum used for snapshot integrity.
//
// Snapshots are checksummed with CRC32-Castagnoli (CRC32C): hardware
// accelerated on x86 (SSE4.2) and ARM, and the standard choice for storage
// formats (iSCSI, RocksDB, LevelDB).
package hash

import "hash/crc32"

// crc32cTable is pre-computed once to avoid repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}
