package genkey

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is an Encoder using vmihailenco/msgpack/v5 with sorted map keys for
// deterministic output. The zero value is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack[G any] struct{}

func (Msgpack[G]) Encode(g G) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
