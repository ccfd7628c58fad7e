package genkey

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR is an Encoder that serializes generators using fxamacker/cbor with
// RFC 8949 Core Deterministic encoding, so byte-for-byte stable outputs are
// guaranteed (map ordering included). The zero value is NOT ready to use.
// Construct with NewCBOR or MustCBOR.
//
// Time values are encoded as RFC3339Nano for stable timestamps.
type CBOR[G any] struct {
	enc cbor.EncMode
}

var _ Encoder[struct{}] = CBOR[struct{}]{}

func NewCBOR[G any]() (CBOR[G], error) {
	eo := cbor.CoreDetEncOptions()
	eo.Time = cbor.TimeRFC3339Nano
	em, err := eo.EncMode()
	if err != nil {
		return CBOR[G]{}, err
	}
	return CBOR[G]{enc: em}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples.
func MustCBOR[G any]() CBOR[G] {
	c, err := NewCBOR[G]()
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[G]) Encode(g G) ([]byte, error) {
	return c.enc.Marshal(g)
}
