// Package hash provides the 32-bit hash primitives shared by the index
// structures. All node hashing goes through CRC32-Castagnoli so that every
// index variant agrees bit-for-bit on slot placement.
package hash

import "hash/crc32"

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
// Computing this once avoids repeated MakeTable calls.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// CRC32CUpdate continues a running CRC32-Castagnoli checksum with data.
func CRC32CUpdate(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, crc32cTable, data)
}
