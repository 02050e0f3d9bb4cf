package serializer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashgrove/swordvault/internal/wire"
	"github.com/ashgrove/swordvault/pkg/vault"
)

func TestSerialize_StartsWithMagicNumber(t *testing.T) {
	hashes := vault.DefaultHashes()
	ciphers := vault.DefaultCiphers()
	c, err := vault.NewContainerV1("root", []byte("master"), []byte("mks12345678901234"), []byte("ks123456789012345"), "sha3-256", "aes-gcm", hashes, ciphers)
	require.NoError(t, err)

	out, err := Serialize(c)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, wire.MagicNumber))
}

func TestSerialize_NestedCollectionsAndRecords(t *testing.T) {
	hashes := vault.DefaultHashes()
	ciphers := vault.DefaultCiphers()
	c, err := vault.NewContainerV1("root", []byte("master"), []byte("mks12345678901234"), []byte("ks123456789012345"), "sha3-256", "aes-gcm", hashes, ciphers)
	require.NoError(t, err)

	c.Root().AddRecord(vault.NewRecord("a", []byte("ciphertext-a")))
	child := vault.NewCollection("child")
	child.AddRecord(vault.NewRecord("b", []byte("ciphertext-b")))
	c.Root().AddChild(child)

	out, err := Serialize(c)
	require.NoError(t, err)
	assert.Contains(t, string(out), "child")
	assert.Contains(t, string(out), "ciphertext-a")
	assert.Contains(t, string(out), "ciphertext-b")

	// A collection starter appears after the magic number, and the output
	// ends with the root collection's ender.
	rootStart := bytes.IndexByte(out[len(wire.MagicNumber):], wire.CollectionStarter)
	require.GreaterOrEqual(t, rootStart, 0)
	assert.Equal(t, wire.CollectionEnder, out[len(out)-1])
}
