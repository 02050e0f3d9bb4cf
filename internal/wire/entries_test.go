package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_TakeRequiredNonSecret(t *testing.T) {
	e := Entries{"label": NewValue([]byte("drawer"), false)}

	v, err := e.TakeRequiredNonSecret("label")
	require.NoError(t, err)
	assert.Equal(t, "drawer", v)
	_, present := e["label"]
	assert.False(t, present, "TakeRequiredNonSecret should remove the field")
}

func TestEntries_TakeRequiredNonSecret_Missing(t *testing.T) {
	e := Entries{}
	_, err := e.TakeRequiredNonSecret("label")
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "label", fe.Field)
}

func TestEntries_TakeRequiredNonSecret_RejectsSecret(t *testing.T) {
	e := Entries{"label": NewValue([]byte("drawer"), true)}
	_, err := e.TakeRequiredNonSecret("label")
	assert.ErrorIs(t, err, ErrForbiddenSecretField)
}

func TestEntries_TakeRequiredSecret_RejectsNonSecret(t *testing.T) {
	e := Entries{"secret": NewValue([]byte("s3cr3t"), false)}
	_, err := e.TakeRequiredSecret("secret")
	assert.ErrorIs(t, err, ErrForbiddenNonSecretField)
}

func TestEntries_Clone_IsIndependent(t *testing.T) {
	e := Entries{"label": NewValue([]byte("drawer"), false)}
	clone := e.Clone()
	clone["label"] = NewValue([]byte("other"), false)
	assert.Equal(t, []byte("drawer"), e["label"].Bytes)
}

func TestEntries_AppendTo_RoundTrips(t *testing.T) {
	e := Entries{
		"a": NewValue([]byte("1"), false),
		"b": NewValue([]byte("2"), true),
	}
	buf, err := e.AppendTo(nil)
	require.NoError(t, err)

	c := NewCursor(buf)
	got := make(Entries, len(e))
	for c.Remaining() > 0 {
		k, v, err := ParseKeyValue(c)
		require.NoError(t, err)
		got[k] = v
	}
	assert.Equal(t, e, got)
}
