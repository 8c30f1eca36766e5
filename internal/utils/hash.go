package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the length in bytes of every digest produced by this file.
const DigestSize = blake2b.Size256

// Side prefixes keep a tombstone from colliding with any live value.
const (
	liveSide      byte = 0x00
	tombstoneSide byte = 0x01
)

// hasherPool is a package-level pool of reusable BLAKE2b-256 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hash computes a BLAKE2b-256 digest over the given byte slice
// using a hasher pulled from the global hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString returns the hex-encoded BLAKE2b-256 digest of data.
//
// Example usage:
//
//	digest := utils.HashString(body)
func HashString(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// ValueDigest returns the digest of one side of an entry. Every tombstone
// hashes to the same digest regardless of the stale value it carries.
func ValueDigest(value []byte, deleted bool) [DigestSize]byte {
	var out [DigestSize]byte
	if deleted {
		copy(out[:], Hash([]byte{tombstoneSide}))
		return out
	}
	buf := make([]byte, 0, len(value)+1)
	buf = append(buf, liveSide)
	buf = append(buf, value...)
	copy(out[:], Hash(buf))
	return out
}
