package cryptoreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA3256_Deterministic(t *testing.T) {
	r := DefaultHashRegistry()
	fn, err := r.GetFunction("sha3-256")
	require.NoError(t, err)

	a := fn([]byte("master-key|salt"))
	b := fn([]byte("master-key|salt"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestSHA3256_DifferentInputsDiffer(t *testing.T) {
	r := DefaultHashRegistry()
	fn, _ := r.GetFunction("sha3-256")
	assert.NotEqual(t, fn([]byte("a")), fn([]byte("b")))
}

func TestHashRegistry_UnknownAlgorithm(t *testing.T) {
	r := NewHashRegistry()
	_, err := r.GetFunction("does-not-exist")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestHashRegistry_Names(t *testing.T) {
	r := DefaultHashRegistry()
	assert.Equal(t, []string{"sha3-256"}, r.Names())
}
