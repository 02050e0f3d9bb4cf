package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadN_ShortInput(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	_, err := c.ReadN(5)
	require.Error(t, err)
	var lenErr *ValueLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 2, lenErr.Remaining)
	assert.Equal(t, 5, lenErr.Needed)
}

func TestCursor_ExpectByte_Mismatch(t *testing.T) {
	c := NewCursor([]byte{CollectionEnder})
	err := c.ExpectByte(CollectionStarter)
	assert.ErrorIs(t, err, ErrUnexpectedStarterByte)
}

func TestCursor_PeekByte_DoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{0x42})
	b, err := c.PeekByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x42), b)
	assert.Equal(t, 1, c.Remaining())
}

func TestCursor_ReadU32_BigEndian(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00, 0x00, 0x01})
	v, err := c.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)
}

func TestCursor_ReadFramedPayload(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x03, 'f', 'o', 'o'})
	payload, err := c.ReadFramedPayload()
	require.NoError(t, err)
	assert.Equal(t, []byte("foo"), payload)
	assert.Zero(t, c.Remaining())
}
