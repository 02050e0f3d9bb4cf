package vault

import (
	"github.com/ashgrove/swordvault/internal/cryptoreg"
	"github.com/ashgrove/swordvault/internal/parser"
	"github.com/ashgrove/swordvault/internal/serializer"
)

// CurrentVersion is the container format version written by NewContainerV1.
const CurrentVersion uint32 = 1

// ParseBytes decodes a swordvault container from buf and attaches the
// given registries to it. DefaultCiphers and DefaultHashes supply the
// aes-gcm and sha3-256 bindings.
//
// Example:
//
//	c, err := vault.ParseBytes(data, vault.DefaultCiphers(), vault.DefaultHashes())
func ParseBytes(buf []byte, ciphers *cryptoreg.CipherRegistry, hashes *cryptoreg.HashRegistry) (*Container, error) {
	return parser.Parse(buf, ciphers, hashes)
}

// ToBytes encodes c back into the container's on-disk byte layout.
// parse(ToBytes(c)) yields a Container equal to c for any legally
// constructed c (spec §8's round-trip property), except that the parsed
// header also carries the written "v" entry as an extra.
func ToBytes(c *Container) ([]byte, error) {
	return serializer.Serialize(c)
}

// DefaultCiphers returns a cipher registry carrying the format's required
// "aes-gcm" binding.
func DefaultCiphers() *cryptoreg.CipherRegistry {
	return cryptoreg.DefaultCipherRegistry()
}

// DefaultHashes returns a hash registry carrying the format's required
// "sha3-256" binding.
func DefaultHashes() *cryptoreg.HashRegistry {
	return cryptoreg.DefaultHashRegistry()
}

// NewContainerV1 builds a fresh, empty Container at CurrentVersion. The
// caller supplies the master key, freshly generated salts (swordctl new
// defaults to 16 bytes, but any length the chosen hash accepts works),
// and the algorithm names to
// bind. Random salt generation is an external collaborator per spec §1;
// this function never reaches for crypto/rand itself.
func NewContainerV1(rootLabel string, masterKey, masterKeySalt, keySalt []byte, hashFnName, keyCipherName string, hashes *cryptoreg.HashRegistry, ciphers *cryptoreg.CipherRegistry) (*Container, error) {
	hashFn, err := hashes.GetFunction(hashFnName)
	if err != nil {
		return nil, err
	}
	masterKeyHash := hashFn(append(append([]byte{}, masterKey...), masterKeySalt...))

	header := NewHeader(CurrentVersion, hashFnName, hashFnName, keyCipherName, masterKeySalt, keySalt, masterKeyHash, nil)
	root := NewCollection(rootLabel)
	return NewContainer(header, root, ciphers, hashes), nil
}
