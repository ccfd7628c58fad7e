package genkey

import "encoding/json"

// JSON is an Encoder backed by encoding/json. Map keys are sorted by the
// standard library, so struct- and map-shaped generators encode stably.
// Prefer CBOR when generators contain floats or time values.
type JSON[G any] struct{}

func (JSON[G]) Encode(g G) ([]byte, error) { return json.Marshal(g) }
