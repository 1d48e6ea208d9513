package hash

import (
	stdhash "hash"
	"sync"
)

// Pool is a global sha256 hasher pool. It is meant to amortize allocations
// of hashers over time by allowing clients to reuse them.
var pool = &sync.Pool{
	New: func() any {
		return New()
	},
}

// GetHasher will get a sha256 hasher from the pool.
// It may or may not allocate a new one. Consumers are expected
// to call Reset() on the hasher before putting it back in
// the pool.
func GetHasher() stdhash.Hash {
	return pool.Get().(stdhash.Hash)
}

// PutHasher returns the hasher back to the pool.
// Consumers are expected to call Reset() on the
// instance before putting it back in the pool.
func PutHasher(hasher stdhash.Hash) {
	pool.Put(hasher)
}
