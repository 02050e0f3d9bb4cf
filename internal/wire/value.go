package wire

import (
	"fmt"
	"unicode/utf8"
)

// Value is a framed byte payload tagged secret or non-secret. It is the
// leaf of the format's byte language: keys and values alike serialize as
// [starter][u16 length BE][payload].
type Value struct {
	Bytes  []byte
	Secret bool
}

// NewValue constructs a Value from raw bytes. Content is immutable after
// construction: callers that need a different payload build a new Value
// rather than mutating this one.
func NewValue(b []byte, secret bool) Value {
	return Value{Bytes: b, Secret: secret}
}

// ParseString interprets the Value's bytes as UTF-8, failing with
// ErrEncoding if they are not valid text. Named ParseString (not
// String) to signal it can fail — a plain Stringer would have to panic
// or silently replace invalid bytes, neither of which this format allows.
func (v Value) ParseString() (string, error) {
	if !utf8.Valid(v.Bytes) {
		return "", ErrEncoding
	}
	return string(v.Bytes), nil
}

// starterByte returns the wire starter for this Value's secrecy flag.
func (v Value) starterByte() byte {
	if v.Secret {
		return SecretValueStarter
	}
	return ValueStarter
}

// AppendTo appends this Value's wire encoding to dst and returns the
// extended slice. Returns an error if the payload exceeds MaxValueLength.
func (v Value) AppendTo(dst []byte) ([]byte, error) {
	if len(v.Bytes) > MaxValueLength {
		return nil, fmt.Errorf("wire: value length %d exceeds maximum %d", len(v.Bytes), MaxValueLength)
	}
	dst = append(dst, v.starterByte())
	var lenBuf [2]byte
	PutU16(lenBuf[:], 0, uint16(len(v.Bytes)))
	dst = append(dst, lenBuf[:]...)
	dst = append(dst, v.Bytes...)
	return dst, nil
}

// AppendKeyTo appends key's wire encoding to dst as a key: the KeyStarter
// functions as a shared starter with non-secret Values (spec §4.1), so
// keys are never marked secret on the wire.
func AppendKeyTo(dst []byte, key string) ([]byte, error) {
	return NewValue([]byte(key), false).AppendTo(dst)
}

// parseValueBody reads a single Value's [u16 length BE][payload] (starter
// already consumed by the caller's grammar decision) — see ParseKeyValue
// for the full key/value pair.
func parseValueBody(c *Cursor, secret bool) (Value, error) {
	payload, err := c.ReadFramedPayload()
	if err != nil {
		return Value{}, err
	}
	return NewValue(payload, secret), nil
}

// ParseKeyValue parses one [KEY][VALUE] pair at the cursor's current
// position. The caller is responsible for having confirmed the next
// byte is KeyStarter before calling.
func ParseKeyValue(c *Cursor) (string, Value, error) {
	if err := c.ExpectByte(KeyStarter); err != nil {
		return "", Value{}, err
	}
	keyPayload, err := c.ReadFramedPayload()
	if err != nil {
		return "", Value{}, err
	}
	keyValue := NewValue(keyPayload, false)
	key, err := keyValue.ParseString()
	if err != nil {
		return "", Value{}, err
	}

	starter, err := c.ReadByte()
	if err != nil {
		return "", Value{}, err
	}
	var secret bool
	switch starter {
	case ValueStarter:
		secret = false
	case SecretValueStarter:
		secret = true
	default:
		return "", Value{}, ErrUnexpectedStarterByte
	}

	value, err := parseValueBody(c, secret)
	if err != nil {
		return "", Value{}, err
	}
	return key, value, nil
}
