// Package genkey derives content-addressed keys from generator values.
//
// A Keyer turns a generator into a short, stable string key by encoding the
// generator deterministically and hashing the bytes. Equal generators always
// produce the same key; the cache still confirms value equality behind the
// key, so an (unlikely) hash collision costs a bucket scan, never a wrong
// dedup.
package genkey

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Encoder serializes a generator's content into deterministic bytes.
// Two Equal generators must encode to identical bytes.
type Encoder[G any] interface {
	Encode(G) ([]byte, error)
}

// Func adapts a plain function into an Encoder.
type Func[G any] func(G) ([]byte, error)

func (f Func[G]) Encode(g G) ([]byte, error) { return f(g) }

// Keyer hashes an Encoder's output into a short hex key, suitable for
// gencache's Options.Keyer.
type Keyer[G any] struct {
	enc Encoder[G]
}

func NewKeyer[G any](enc Encoder[G]) Keyer[G] {
	return Keyer[G]{enc: enc}
}

// Key returns the content key for g.
func (k Keyer[G]) Key(g G) (string, error) {
	b, err := k.enc.Encode(g)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
