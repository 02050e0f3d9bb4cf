package vault

import "github.com/ashgrove/swordvault/internal/wire"

// Entries is the mapping from field name to Value shared by header,
// record, and collection metadata. Order is not semantically
// significant.
type Entries map[string]Value

// Clone returns a shallow copy, so callers cannot mutate the receiver's
// backing map through the returned value.
func (e Entries) Clone() Entries {
	out := make(Entries, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Set inserts or overwrites key with a new Value, matching Record's and
// Collection's add_extra contract (overwrite on duplicate key).
func (e Entries) Set(key string, b []byte, secret bool) {
	e[key] = NewValue(b, secret)
}

func (e Entries) toWire() wire.Entries {
	out := make(wire.Entries, len(e))
	for k, v := range e {
		out[k] = v.wire()
	}
	return out
}

func entriesFromWire(w wire.Entries) Entries {
	out := make(Entries, len(w))
	for k, v := range w {
		out[k] = fromWire(v)
	}
	return out
}

// byteMap converts all extras, secret or not, into the plain map the cipher registry
// expects (e.g. {"nonce": <bytes>}), per spec §4.7's decrypt_fn
// signature.
func (e Entries) byteMap() map[string][]byte {
	out := make(map[string][]byte, len(e))
	for k, v := range e {
		out[k] = v.bytes
	}
	return out
}
