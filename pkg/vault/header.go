package vault

// Header carries the version, algorithm names, salts, and the stored
// master-key digest needed to authenticate and unlock a Container. All
// seven named fields are required and non-secret; the derived key slot
// is transient and never serialized.
type Header struct {
	version uint32

	masterKeyHashFnName string
	keyHashFnName       string
	keyCipherName       string

	masterKeySalt []byte
	keySalt       []byte
	masterKeyHash []byte

	key []byte // transient, populated by Container.Unlock

	extras Entries
}

// NewHeader constructs a Header from its required fields.
func NewHeader(version uint32, masterKeyHashFnName, keyHashFnName, keyCipherName string, masterKeySalt, keySalt, masterKeyHash []byte, extras Entries) *Header {
	if extras == nil {
		extras = make(Entries)
	}
	return &Header{
		version:             version,
		masterKeyHashFnName: masterKeyHashFnName,
		keyHashFnName:       keyHashFnName,
		keyCipherName:       keyCipherName,
		masterKeySalt:       masterKeySalt,
		keySalt:             keySalt,
		masterKeyHash:       masterKeyHash,
		extras:              extras,
	}
}

// Version returns the container format version.
func (h *Header) Version() uint32 { return h.version }

// MasterKeyHashFnName is the registry name of the hash used to verify
// the master key against MasterKeyHash.
func (h *Header) MasterKeyHashFnName() string { return h.masterKeyHashFnName }

// KeyHashFnName is the registry name of the hash used to derive the
// record-encryption key from the master key and KeySalt.
func (h *Header) KeyHashFnName() string { return h.keyHashFnName }

// KeyCipherName is the registry name of the cipher used to encrypt and
// decrypt record secrets.
func (h *Header) KeyCipherName() string { return h.keyCipherName }

// MasterKeySalt is the opaque salt mixed into the master key before
// hashing for unlock verification.
func (h *Header) MasterKeySalt() []byte { return h.masterKeySalt }

// KeySalt is the opaque salt mixed into the master key before hashing
// to derive the record-encryption key.
func (h *Header) KeySalt() []byte { return h.keySalt }

// MasterKeyHash is the stored digest checked against at unlock time.
func (h *Header) MasterKeyHash() []byte { return h.masterKeyHash }

// Extras returns a copy of the header's extra fields.
func (h *Header) Extras() Entries { return h.extras.Clone() }

// AddExtra inserts into extras, overwriting on duplicate key.
func (h *Header) AddExtra(key string, b []byte, secret bool) {
	h.extras.Set(key, b, secret)
}

// SetKey writes the transient derived record-encryption key. Never
// serialized; populated only by a successful Container.Unlock.
func (h *Header) SetKey(key []byte) {
	h.key = key
}

// GetKey returns a copy of the derived key, or nil before a successful
// unlock. A copy is returned so callers cannot mutate the Header's
// internal state through the returned slice.
func (h *Header) GetKey() []byte {
	if h.key == nil {
		return nil
	}
	out := make([]byte, len(h.key))
	copy(out, h.key)
	return out
}

// Destroy zeroes the derived key buffer and clears it. Best-effort: Go's
// garbage collector may have already moved or copied the backing bytes.
func (h *Header) Destroy() {
	for i := range h.key {
		h.key[i] = 0
	}
	h.key = nil
}
