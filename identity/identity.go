// Package identity derives locnet node ids.
//
// A node id is the SHA-256 digest of a random UUIDv4 rendered in canonical
// form. The digest is a pure function of the seed, the seed is fresh per
// process, so ids are not reproducible across runs.
package identity

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spacemeshos/locnet-idgen/crypto"
	"github.com/spacemeshos/locnet-idgen/hash"
	"github.com/spacemeshos/locnet-idgen/log"
)

// ErrEmptySeed is returned when a source yields an empty seed.
var ErrEmptySeed = errors.New("empty seed")

// NodeID is a locnet node identifier.
type NodeID [hash.Size]byte

// String returns the id as 64 lowercase hex characters.
func (id NodeID) String() string {
	return hex.EncodeToString(id[:])
}

// Field implements log.LoggableField.
func (id NodeID) Field() log.Field {
	return log.NodeID(id.String())
}

// Derive hashes the UTF-8 encoding of seed.
func Derive(seed string) NodeID {
	h := hash.GetHasher()
	defer func() {
		h.Reset()
		hash.PutHasher(h)
	}()
	h.Write([]byte(seed))

	var id NodeID
	h.Sum(id[:0])
	return id
}

type uuidSource struct{}

func (uuidSource) Seed() (string, error) {
	return crypto.UUIDString()
}

// Generator creates fresh node ids.
type Generator struct {
	src    Source
	logger log.Log
}

type Opt func(*Generator)

// WithSource replaces the default UUIDv4 source.
func WithSource(src Source) Opt {
	return func(g *Generator) {
		g.src = src
	}
}

func WithLogger(logger log.Log) Opt {
	return func(g *Generator) {
		g.logger = logger
	}
}

func NewGenerator(opts ...Opt) *Generator {
	g := &Generator{
		src:    uuidSource{},
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws a new seed and derives a node id from it.
func (g *Generator) Generate() (NodeID, error) {
	seed, err := g.src.Seed()
	if err != nil {
		return NodeID{}, fmt.Errorf("draw seed: %w", err)
	}
	if len(seed) == 0 {
		return NodeID{}, ErrEmptySeed
	}
	id := Derive(seed)
	g.logger.With().Debug("generated node id", id)
	return id, nil
}
