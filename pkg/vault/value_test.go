package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_BytesAndSecrecy(t *testing.T) {
	v := NewValue([]byte("hunter2"), true)
	assert.Equal(t, []byte("hunter2"), v.Bytes())
	assert.True(t, v.IsSecret())
}

func TestValue_ParseString_InvalidUTF8(t *testing.T) {
	v := NewValue([]byte{0xff, 0xfe}, false)
	_, err := v.ParseString()
	assert.Error(t, err)
}

func TestEntries_Set_OverwritesOnDuplicateKey(t *testing.T) {
	e := make(Entries)
	e.Set("nonce", []byte("first"), true)
	e.Set("nonce", []byte("second"), true)
	assert.Equal(t, []byte("second"), e["nonce"].Bytes())
}

func TestEntries_Clone_IsIndependentCopy(t *testing.T) {
	e := make(Entries)
	e.Set("k", []byte("v"), false)
	clone := e.Clone()
	clone.Set("k", []byte("other"), false)
	assert.Equal(t, []byte("v"), e["k"].Bytes())
}
