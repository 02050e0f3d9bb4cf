package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_AppendAndParseRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
	}{
		{"empty non-secret", NewValue([]byte{}, false)},
		{"non-secret", NewValue([]byte("hello"), false)},
		{"secret", NewValue([]byte("hunter2"), true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.value.AppendTo(nil)
			require.NoError(t, err)

			c := NewCursor(buf)
			// parseValueBody expects the starter byte already consumed.
			_, err = c.ReadByte()
			require.NoError(t, err)
			got, err := parseValueBody(c, tt.value.Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.value.Bytes, got.Bytes)
			assert.Equal(t, tt.value.Secret, got.Secret)
			assert.Zero(t, c.Remaining())
		})
	}
}

func TestValue_AppendTo_RejectsOversizedPayload(t *testing.T) {
	v := NewValue(make([]byte, MaxValueLength+1), false)
	_, err := v.AppendTo(nil)
	require.Error(t, err)
}

func TestValue_ParseString_RejectsInvalidUTF8(t *testing.T) {
	v := NewValue([]byte{0xff, 0xfe, 0xfd}, false)
	_, err := v.ParseString()
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestParseKeyValue(t *testing.T) {
	var buf []byte
	buf, err := AppendKeyTo(buf, "label")
	require.NoError(t, err)
	buf, err = NewValue([]byte("drawer"), false).AppendTo(buf)
	require.NoError(t, err)

	c := NewCursor(buf)
	key, value, err := ParseKeyValue(c)
	require.NoError(t, err)
	assert.Equal(t, "label", key)
	assert.Equal(t, []byte("drawer"), value.Bytes)
	assert.False(t, value.Secret)
}

func TestParseKeyValue_RejectsSecretStarterForKey(t *testing.T) {
	buf := []byte{SecretValueStarter, 0x00, 0x05}
	buf = append(buf, []byte("label")...)

	c := NewCursor(buf)
	_, _, err := ParseKeyValue(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStarterByte)
}
