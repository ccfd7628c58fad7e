package genkey

import "google.golang.org/protobuf/proto"

// Proto encodes proto.Message generators with deterministic marshaling.
// Note: protobuf's deterministic mode is stable within a single binary, not
// across protobuf library versions; good enough for in-process dedup keys.
type Proto[M proto.Message] struct {
	opts proto.MarshalOptions
}

func NewProto[M proto.Message]() Proto[M] {
	return Proto[M]{opts: proto.MarshalOptions{Deterministic: true}}
}

func (p Proto[M]) Encode(m M) ([]byte, error) {
	return p.opts.Marshal(m)
}
