// Package wire houses the low-level byte framing for the swordvault
// container format. The goal is to keep the framing decoders focused,
// bounds-checked, and independent from the object-graph API so higher
// level packages can orchestrate the data in a more ergonomic form.
package wire

// MagicNumber is the fixed 8-byte prefix at file offset 0. Mismatch is
// rejected by the parser before anything else is read.
var MagicNumber = []byte{'s', 'w', 'o', 'r', 'd', 'v', 0x01, 0x00}

// Starter and framing bytes. See spec §6.
const (
	// ValueStarter marks a non-secret Value and doubles as the KeyStarter
	// for entry keys (keys are never marked secret on the wire).
	ValueStarter = 0x00
	// KeyStarter is an alias of ValueStarter; keys share the non-secret
	// framing.
	KeyStarter = ValueStarter
	// SecretValueStarter marks a secret Value.
	SecretValueStarter = 0x01
	// RecordStarter begins a Record.
	RecordStarter = 0x02
	// CollectionStarter begins a Collection.
	CollectionStarter = 0x03
	// CollectionEnder closes a Collection.
	CollectionEnder = 0x04
)

// MaxValueLength is the largest payload a Value may carry; the length
// prefix is a 16-bit unsigned integer.
const MaxValueLength = 0xFFFF

// MaxDepth bounds recursive Collection descent. A hostile file with
// unbounded nesting would otherwise blow the Go call stack; crossing this
// limit is treated as a framing violation rather than a distinct error
// kind, per spec §9 ("suggested 128").
const MaxDepth = 128

// Required field names, shared between the parser's validation pass and
// the serializer's field ordering.
const (
	FieldLabel  = "label"
	FieldSecret = "secret"

	FieldVersion             = "v"
	FieldMasterKeyHashFnName = "mkhf"
	FieldKeyHashFnName       = "khf"
	FieldMasterKeySalt       = "mks"
	FieldKeySalt             = "ks"
	FieldMasterKeyHash       = "mkh"
	FieldKeyCipherName       = "kc"
)

// RequiredHeaderFields lists the header fields validated at construction.
var RequiredHeaderFields = []string{
	FieldMasterKeyHashFnName,
	FieldKeyHashFnName,
	FieldMasterKeySalt,
	FieldKeySalt,
	FieldMasterKeyHash,
	FieldKeyCipherName,
}

// RequiredCollectionFields lists the collection fields validated at
// construction.
var RequiredCollectionFields = []string{FieldLabel}

// RequiredRecordFields lists the non-secret record fields validated at
// construction.
var RequiredRecordFields = []string{FieldLabel}

// RequiredRecordSecretFields lists the record fields that must carry the
// secret starter.
var RequiredRecordSecretFields = []string{FieldSecret}
