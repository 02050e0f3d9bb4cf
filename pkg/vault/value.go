// Package vault is the public object graph for the swordvault container
// format: Value, Record, Collection, Header, and Container. It mediates
// between the raw byte language in internal/wire and the tree callers
// build and mutate in memory.
package vault

import "github.com/ashgrove/swordvault/internal/wire"

// Value is a leaf byte-string carrying a secret flag. Content is
// immutable after construction: replace a Value rather than mutating it.
type Value struct {
	bytes  []byte
	secret bool
}

// NewValue constructs a Value from raw bytes and a secrecy flag.
func NewValue(b []byte, secret bool) Value {
	return Value{bytes: b, secret: secret}
}

// Bytes returns the Value's raw payload.
func (v Value) Bytes() []byte { return v.bytes }

// IsSecret reports whether this Value is marked secret. Secrecy is a
// property of the leaf, independent of any key: it survives round-trip
// regardless of whether the container is locked or unlocked.
func (v Value) IsSecret() bool { return v.secret }

// ParseString interprets the Value's bytes as UTF-8, failing with
// wire.ErrEncoding if they are not valid text.
func (v Value) ParseString() (string, error) {
	return v.wire().ParseString()
}

func (v Value) wire() wire.Value {
	return wire.NewValue(v.bytes, v.secret)
}

func fromWire(w wire.Value) Value {
	return Value{bytes: w.Bytes, secret: w.Secret}
}
