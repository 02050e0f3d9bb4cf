package vault

import (
	"bytes"

	"github.com/ashgrove/swordvault/internal/cryptoreg"
)

// Container is the top-level binding of a Header to a root Collection,
// plus the algorithm registries it unlocks against. Registries are
// process-wide lookup tables, not owned by individual Containers.
type Container struct {
	header  *Header
	root    *Collection
	ciphers *cryptoreg.CipherRegistry
	hashes  *cryptoreg.HashRegistry
}

// NewContainer binds header to root using the given registries.
func NewContainer(header *Header, root *Collection, ciphers *cryptoreg.CipherRegistry, hashes *cryptoreg.HashRegistry) *Container {
	return &Container{header: header, root: root, ciphers: ciphers, hashes: hashes}
}

// Header returns the container's header.
func (c *Container) Header() *Header { return c.header }

// Root returns the container's root collection.
func (c *Container) Root() *Collection { return c.root }

// Ciphers returns the container's cipher registry.
func (c *Container) Ciphers() *cryptoreg.CipherRegistry { return c.ciphers }

// Hashes returns the container's hash registry.
func (c *Container) Hashes() *cryptoreg.HashRegistry { return c.hashes }

// Unlock authenticates masterKey against the header's stored digest and,
// on success, derives and stores the record-encryption key.
//
//  1. Look up the hash named by MasterKeyHashFnName.
//  2. Compute digest = hash(masterKey || MasterKeySalt).
//  3. If digest != MasterKeyHash, return false; the container is
//     unchanged.
//  4. Otherwise look up the hash named by KeyHashFnName, compute
//     derived = hash(masterKey || KeySalt), store it in the header's key
//     slot, and return true.
//
// Unlock does constant work per call (no retry logic at this layer) and
// is idempotent on repeated success with the same master key. This
// implementation does not provide timing guarantees beyond what
// bytes.Equal offers; the digest comparison is not constant-time.
func (c *Container) Unlock(masterKey []byte) (bool, error) {
	masterHash, err := c.hashes.GetFunction(c.header.masterKeyHashFnName)
	if err != nil {
		return false, err
	}
	digest := masterHash(append(append([]byte{}, masterKey...), c.header.masterKeySalt...))
	if !bytes.Equal(digest, c.header.masterKeyHash) {
		return false, nil
	}

	keyHash, err := c.hashes.GetFunction(c.header.keyHashFnName)
	if err != nil {
		return false, err
	}
	derived := keyHash(append(append([]byte{}, masterKey...), c.header.keySalt...))
	c.header.SetKey(derived)
	return true, nil
}
