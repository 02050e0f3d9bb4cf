package vault

import "github.com/ashgrove/swordvault/internal/cryptoreg"

// Record is a named leaf carrying an encrypted secret plus arbitrary
// extras (e.g. the nonce used to encrypt it).
type Record struct {
	label          string
	secret         []byte // always ciphertext+tag, never plaintext
	revealedSecret *string
	extras         Entries
}

// NewRecord constructs a Record with empty extras and no revealed
// plaintext. encryptedSecret must already be ciphertext produced by the
// container's configured cipher — Record never encrypts on the caller's
// behalf.
func NewRecord(label string, encryptedSecret []byte) *Record {
	return &Record{
		label:  label,
		secret: encryptedSecret,
		extras: make(Entries),
	}
}

// Label returns the record's non-secret name.
func (r *Record) Label() string { return r.label }

// Secret returns the stored ciphertext.
func (r *Record) Secret() []byte { return r.secret }

// RevealedSecret returns the plaintext obtained by the last successful
// Reveal call, or ("", false) if none has succeeded since construction.
func (r *Record) RevealedSecret() (string, bool) {
	if r.revealedSecret == nil {
		return "", false
	}
	return *r.revealedSecret, true
}

// Extras returns a copy of the record's extra fields.
func (r *Record) Extras() Entries {
	return r.extras.Clone()
}

// AddExtra inserts into extras, overwriting on duplicate key.
func (r *Record) AddExtra(key string, b []byte, secret bool) {
	r.extras.Set(key, b, secret)
}

// Reveal decrypts the stored secret using decrypt and key, passing the
// record's extras as the cipher's side-channel map (e.g. "nonce"). On
// success, the UTF-8 decoded plaintext is stored in RevealedSecret and
// Reveal returns true. On cipher failure or invalid UTF-8, Reveal
// returns false and leaves any previously revealed plaintext unchanged.
// Reveal never panics.
func (r *Record) Reveal(decrypt cryptoreg.DecryptFunc, key []byte) bool {
	plaintext, err := decrypt(r.secret, key, r.extras.byteMap())
	if err != nil {
		return false
	}
	if !validUTF8(plaintext) {
		return false
	}
	s := string(plaintext)
	r.revealedSecret = &s
	return true
}

// Destroy drops the reference to the revealed plaintext, if any. The
// plaintext is held as a Go string, so its bytes are not overwritten;
// they remain in memory until the garbage collector reclaims them.
func (r *Record) Destroy() {
	r.revealedSecret = nil
}
