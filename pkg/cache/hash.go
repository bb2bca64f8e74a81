package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DatasetKey returns the cache key for a remote dataset location.
func DatasetKey(location string) string {
	return "dataset:" + Hash([]byte(location))
}
