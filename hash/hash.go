package hash

import (
	"encoding/hex"

	"github.com/minio/sha256-simd"
)

const (
	// Size is an alias to minio sha256.Size (32 bytes).
	Size = sha256.Size
)

var (
	// New is an alias to minio sha256.New.
	New = sha256.New
	// Sum is an alias to minio sha256.Sum256.
	Sum = sha256.Sum256
)

// Hex returns the lowercase hex encoding of the SHA-256 digest of data.
func Hex(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}
