package genkey

import (
	"errors"
	"testing"
	"time"
)

type texDesc struct {
	URL     string            `json:"url" msgpack:"url"`
	Mip     int               `json:"mip" msgpack:"mip"`
	Options map[string]string `json:"options" msgpack:"options"`
	Stamp   time.Time         `json:"stamp" msgpack:"stamp"`
}

func sameDesc() texDesc {
	return texDesc{
		URL: "file:///a.png",
		Mip: 3,
		Options: map[string]string{
			"filter": "linear",
			"wrap":   "clamp",
			"aniso":  "16",
		},
		Stamp: time.Unix(1700000000, 42).UTC(),
	}
}

func TestKeyerStableForEqualContent(t *testing.T) {
	encoders := map[string]Encoder[texDesc]{
		"cbor":    MustCBOR[texDesc](),
		"json":    JSON[texDesc]{},
		"msgpack": Msgpack[texDesc]{},
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			k := NewKeyer[texDesc](enc)
			// two independently built values, equal content
			k1, err := k.Key(sameDesc())
			if err != nil {
				t.Fatalf("Key: %v", err)
			}
			k2, err := k.Key(sameDesc())
			if err != nil {
				t.Fatalf("Key: %v", err)
			}
			if k1 != k2 {
				t.Fatalf("equal content must key identically: %q vs %q", k1, k2)
			}

			changed := sameDesc()
			changed.Mip = 4
			k3, err := k.Key(changed)
			if err != nil {
				t.Fatalf("Key: %v", err)
			}
			if k3 == k1 {
				t.Fatalf("different content should not share a key")
			}
		})
	}
}

// Re-keying the same value many times must be deterministic even with map
// fields; this is the property the hashed cache index depends on.
func TestKeyerDeterministicAcrossRuns(t *testing.T) {
	k := NewKeyer[texDesc](MustCBOR[texDesc]())
	first, err := k.Key(sameDesc())
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	for i := 0; i < 50; i++ {
		got, err := k.Key(sameDesc())
		if err != nil {
			t.Fatalf("Key: %v", err)
		}
		if got != first {
			t.Fatalf("iteration %d: key drifted: %q vs %q", i, got, first)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	k := NewKeyer[string](Func[string](func(s string) ([]byte, error) {
		return []byte(s), nil
	}))
	a, err := k.Key("hello")
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	b, err := k.Key("hello")
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if a != b {
		t.Fatalf("Func keyer not stable: %q vs %q", a, b)
	}
	if c, _ := k.Key("other"); c == a {
		t.Fatalf("distinct inputs should key differently")
	}
}

func TestKeyerPropagatesEncodeError(t *testing.T) {
	boom := errors.New("boom")
	k := NewKeyer[string](Func[string](func(string) ([]byte, error) {
		return nil, boom
	}))
	if _, err := k.Key("x"); !errors.Is(err, boom) {
		t.Fatalf("encode error must surface from Key, got %v", err)
	}
}
