// Package parser turns a swordvault container's bytes into the object
// graph exposed by pkg/vault. It enforces framing, required/forbidden
// fields, and the secrecy invariants described in spec §4.6 — anything
// that fails surfaces to the caller immediately, discarding whatever was
// under construction.
package parser

import (
	"bytes"
	"fmt"

	"github.com/ashgrove/swordvault/internal/cryptoreg"
	"github.com/ashgrove/swordvault/internal/wire"
	"github.com/ashgrove/swordvault/pkg/vault"
)

// Parse decodes buf into a Container using the given registries. The
// registries are attached to the returned Container for later Unlock /
// Reveal calls; they play no role in parsing itself.
func Parse(buf []byte, ciphers *cryptoreg.CipherRegistry, hashes *cryptoreg.HashRegistry) (*vault.Container, error) {
	c := wire.NewCursor(buf)

	if err := ensureMagicNumber(c); err != nil {
		return nil, err
	}

	header, err := parseHeader(c)
	if err != nil {
		return nil, err
	}

	root, err := parseCollection(c, 0)
	if err != nil {
		return nil, err
	}

	// Trailing bytes after the root collection are rejected (spec §9,
	// open question 3).
	if c.Remaining() != 0 {
		return nil, wire.ErrUnexpectedStarterByte
	}

	return vault.NewContainer(header, root, ciphers, hashes), nil
}

func ensureMagicNumber(c *wire.Cursor) error {
	got, err := c.ReadN(len(wire.MagicNumber))
	if err != nil {
		if _, ok := err.(*wire.ValueLengthError); ok {
			return wire.ErrUnexpectedEndOfFile
		}
		return err
	}
	if !bytes.Equal(got, wire.MagicNumber) {
		return wire.ErrInvalidMagicNumber
	}
	return nil
}

func parseHeader(c *wire.Cursor) (*vault.Header, error) {
	version, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("header version: %w", wire.ErrUnexpectedEndOfFile)
	}

	raw := make(wire.Entries)
	for {
		starter, err := c.PeekByte()
		if err != nil {
			return nil, err
		}
		if starter != wire.ValueStarter {
			break
		}
		key, value, err := wire.ParseKeyValue(c)
		if err != nil {
			return nil, err
		}
		raw[key] = value
	}

	return headerFromEntries(version, raw)
}

// headerFromEntries validates raw against the required header fields and
// constructs a Header, leaving the remaining entries as extras. Per
// spec §9 (open questions 1-2), the canonical version lives in the raw
// 4-byte prefix only; "v" (if present) is left as an ordinary extra and
// is never consulted, and "mkhf" is read exactly once, as a string.
func headerFromEntries(version uint32, raw wire.Entries) (*vault.Header, error) {
	for _, field := range wire.RequiredHeaderFields {
		if err := raw.RequireNonSecret(field); err != nil {
			return nil, err
		}
	}

	mkhf, err := raw.TakeRequiredNonSecret(wire.FieldMasterKeyHashFnName)
	if err != nil {
		return nil, err
	}
	khf, err := raw.TakeRequiredNonSecret(wire.FieldKeyHashFnName)
	if err != nil {
		return nil, err
	}
	kc, err := raw.TakeRequiredNonSecret(wire.FieldKeyCipherName)
	if err != nil {
		return nil, err
	}
	mks, err := raw.TakeRequiredBytes(wire.FieldMasterKeySalt)
	if err != nil {
		return nil, err
	}
	ks, err := raw.TakeRequiredBytes(wire.FieldKeySalt)
	if err != nil {
		return nil, err
	}
	mkh, err := raw.TakeRequiredBytes(wire.FieldMasterKeyHash)
	if err != nil {
		return nil, err
	}

	extras := vault.Entries{}
	for k, v := range raw {
		extras[k] = vault.NewValue(v.Bytes, v.Secret)
	}

	return vault.NewHeader(version, mkhf, khf, kc, mks, ks, mkh, extras), nil
}

func parseCollection(c *wire.Cursor, depth int) (*vault.Collection, error) {
	if depth >= wire.MaxDepth {
		return nil, wire.ErrUnexpectedStarterByte
	}
	if err := c.ExpectByte(wire.CollectionStarter); err != nil {
		return nil, err
	}

	extras := make(wire.Entries)
	var children []*vault.Collection
	var records []*vault.Record

	for {
		starter, err := c.PeekByte()
		if err != nil {
			return nil, err
		}
		if starter == wire.CollectionEnder {
			break
		}
		switch starter {
		case wire.ValueStarter:
			key, value, err := wire.ParseKeyValue(c)
			if err != nil {
				return nil, err
			}
			extras[key] = value
		case wire.RecordStarter:
			rec, err := parseRecord(c)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		case wire.CollectionStarter:
			child, err := parseCollection(c, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		default:
			return nil, wire.ErrUnexpectedStarterByte
		}
	}
	if err := c.ExpectByte(wire.CollectionEnder); err != nil {
		return nil, err
	}

	label, err := extras.TakeRequiredNonSecret(wire.FieldLabel)
	if err != nil {
		return nil, err
	}

	coll := vault.NewCollection(label)
	for _, child := range children {
		coll.AddChild(child)
	}
	for _, rec := range records {
		coll.AddRecord(rec)
	}
	for k, v := range extras {
		coll.AddExtra(k, v.Bytes, v.Secret)
	}
	return coll, nil
}

func parseRecord(c *wire.Cursor) (*vault.Record, error) {
	if err := c.ExpectByte(wire.RecordStarter); err != nil {
		return nil, err
	}

	raw := make(wire.Entries)
	for {
		starter, err := c.PeekByte()
		if err != nil {
			return nil, err
		}
		if starter != wire.ValueStarter {
			break
		}
		key, value, err := wire.ParseKeyValue(c)
		if err != nil {
			return nil, err
		}
		raw[key] = value
	}

	for _, field := range wire.RequiredRecordFields {
		if err := raw.RequireNonSecret(field); err != nil {
			return nil, err
		}
	}
	for _, field := range wire.RequiredRecordSecretFields {
		v, ok := raw[field]
		if !ok {
			return nil, wire.MissingRequiredField(field)
		}
		if !v.Secret {
			return nil, wire.ForbiddenNonSecretField(field)
		}
	}

	label, err := raw.TakeRequiredNonSecret(wire.FieldLabel)
	if err != nil {
		return nil, err
	}
	secret, err := raw.TakeRequiredSecret(wire.FieldSecret)
	if err != nil {
		return nil, err
	}

	rec := vault.NewRecord(label, secret)
	for k, v := range raw {
		rec.AddExtra(k, v.Bytes, v.Secret)
	}
	return rec, nil
}
