// Package serializer turns a swordvault Container object graph back
// into bytes in the layout internal/parser accepts, per spec §4.9. The
// derived record-encryption key and any revealed plaintext are never
// written: both live only on the in-memory types and have no wire
// representation.
package serializer

import (
	"github.com/ashgrove/swordvault/internal/wire"
	"github.com/ashgrove/swordvault/pkg/vault"
)

// Serialize encodes c as MAGIC_NUMBER || header_bytes ||
// root_collection_bytes.
func Serialize(c *vault.Container) ([]byte, error) {
	out := append([]byte{}, wire.MagicNumber...)

	out, err := appendHeader(out, c.Header())
	if err != nil {
		return nil, err
	}

	out, err = appendCollection(out, c.Root())
	if err != nil {
		return nil, err
	}

	return out, nil
}

func appendHeader(dst []byte, h *vault.Header) ([]byte, error) {
	var verBuf [4]byte
	wire.PutU32(verBuf[:], 0, h.Version())
	dst = append(dst, verBuf[:]...)

	var err error
	dst, err = appendKV(dst, wire.FieldVersion, verBuf[:], false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldMasterKeyHashFnName, []byte(h.MasterKeyHashFnName()), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldKeyHashFnName, []byte(h.KeyHashFnName()), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldMasterKeySalt, h.MasterKeySalt(), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldKeySalt, h.KeySalt(), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldMasterKeyHash, h.MasterKeyHash(), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldKeyCipherName, []byte(h.KeyCipherName()), false)
	if err != nil {
		return nil, err
	}

	return appendExtras(dst, h.Extras())
}

func appendCollection(dst []byte, c *vault.Collection) ([]byte, error) {
	dst = append(dst, wire.CollectionStarter)

	var err error
	dst, err = appendKV(dst, wire.FieldLabel, []byte(c.Label()), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendExtras(dst, c.Extras())
	if err != nil {
		return nil, err
	}

	for _, child := range c.Children() {
		dst, err = appendCollection(dst, child)
		if err != nil {
			return nil, err
		}
	}
	for _, rec := range c.Records() {
		dst, err = appendRecord(dst, rec)
		if err != nil {
			return nil, err
		}
	}

	dst = append(dst, wire.CollectionEnder)
	return dst, nil
}

func appendRecord(dst []byte, r *vault.Record) ([]byte, error) {
	dst = append(dst, wire.RecordStarter)

	var err error
	dst, err = appendKV(dst, wire.FieldLabel, []byte(r.Label()), false)
	if err != nil {
		return nil, err
	}
	dst, err = appendKV(dst, wire.FieldSecret, r.Secret(), true)
	if err != nil {
		return nil, err
	}

	return appendExtras(dst, r.Extras())
}

func appendKV(dst []byte, key string, value []byte, secret bool) ([]byte, error) {
	dst, err := wire.AppendKeyTo(dst, key)
	if err != nil {
		return nil, err
	}
	return wire.NewValue(value, secret).AppendTo(dst)
}

func appendExtras(dst []byte, extras vault.Entries) ([]byte, error) {
	var err error
	for k, v := range extras {
		dst, err = appendKV(dst, k, v.Bytes(), v.IsSecret())
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
