package wire

// Entries is the mapping from field name to Value shared by header,
// record, and collection metadata. Order is not semantically
// significant: the serializer is free to pick any iteration order and
// the parser accepts any order.
type Entries map[string]Value

// Clone returns a shallow copy of the map (Values are immutable, so a
// shallow copy is sufficient to hand out an independent Entries without
// leaking the receiver's backing map).
func (e Entries) Clone() Entries {
	out := make(Entries, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// AppendTo appends every entry to dst as [KEY][VALUE] pairs, in whatever
// order Go's map iteration happens to produce. Required fields get no
// fixed position here; internal/serializer writes them itself, ahead of
// the extras.
func (e Entries) AppendTo(dst []byte) ([]byte, error) {
	var err error
	for k, v := range e {
		dst, err = AppendKeyTo(dst, k)
		if err != nil {
			return nil, err
		}
		dst, err = v.AppendTo(dst)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// TakeRequiredNonSecret removes and returns a required, non-secret
// string field from e. It fails with MissingRequiredField if absent or
// ForbiddenSecretField if the stored Value carries the secret starter.
func (e Entries) TakeRequiredNonSecret(field string) (string, error) {
	v, ok := e[field]
	if !ok {
		return "", MissingRequiredField(field)
	}
	if v.Secret {
		return "", ForbiddenSecretField(field)
	}
	delete(e, field)
	return v.ParseString()
}

// TakeRequiredBytes removes and returns a required, non-secret byte
// field from e without interpreting it as text (used for opaque salts
// and digests).
func (e Entries) TakeRequiredBytes(field string) ([]byte, error) {
	v, ok := e[field]
	if !ok {
		return nil, MissingRequiredField(field)
	}
	if v.Secret {
		return nil, ForbiddenSecretField(field)
	}
	delete(e, field)
	return v.Bytes, nil
}

// RequireNonSecret validates that field is present and non-secret
// without removing it from e.
func (e Entries) RequireNonSecret(field string) error {
	v, ok := e[field]
	if !ok {
		return MissingRequiredField(field)
	}
	if v.Secret {
		return ForbiddenSecretField(field)
	}
	return nil
}

// TakeRequiredSecret removes and returns a required field that must
// carry the secret starter. Fails with ForbiddenNonSecretField if it
// does not.
func (e Entries) TakeRequiredSecret(field string) ([]byte, error) {
	v, ok := e[field]
	if !ok {
		return nil, MissingRequiredField(field)
	}
	if !v.Secret {
		return nil, ForbiddenNonSecretField(field)
	}
	delete(e, field)
	return v.Bytes, nil
}
