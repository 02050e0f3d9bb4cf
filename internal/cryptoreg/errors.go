package cryptoreg

import "errors"

// Sentinel errors returned by the cipher layer. CipherError wraps one of
// these with the extra context spec §7 requires (the missing extra's
// name).
var (
	// ErrMissingRequiredExtra indicates an encrypt/decrypt call lacked a
	// named extra the cipher requires (e.g. "nonce").
	ErrMissingRequiredExtra = errors.New("cryptoreg: missing required extra")
	// ErrEncryption indicates the underlying cipher rejected the input
	// (bad key, tag mismatch, wrong nonce size, ...).
	ErrEncryption = errors.New("cryptoreg: encryption error")
	// ErrUnknownAlgorithm indicates a lookup by name found no registered
	// binding. The format guarantees only names already present were
	// ever written, but a hostile file can violate that, so lookup
	// failure is a recoverable error rather than a panic.
	ErrUnknownAlgorithm = errors.New("cryptoreg: unknown algorithm")
)

// CipherError is returned by Encrypt/Decrypt functions. Kind is one of
// the sentinels above; Extra names the offending extra (for
// ErrMissingRequiredExtra); Cause carries the underlying library error
// (for ErrEncryption), if any.
type CipherError struct {
	Kind  error
	Extra string
	Cause error
}

func (e *CipherError) Error() string {
	switch {
	case e.Extra != "":
		return e.Kind.Error() + ": " + e.Extra
	case e.Cause != nil:
		return e.Kind.Error() + ": " + e.Cause.Error()
	default:
		return e.Kind.Error()
	}
}

func (e *CipherError) Unwrap() error { return e.Kind }

// MissingRequiredExtra builds a CipherError naming the absent extra.
func MissingRequiredExtra(name string) error {
	return &CipherError{Kind: ErrMissingRequiredExtra, Extra: name}
}

// EncryptionFailed wraps an underlying cipher library error as
// ErrEncryption.
func EncryptionFailed(cause error) error {
	return &CipherError{Kind: ErrEncryption, Cause: cause}
}
