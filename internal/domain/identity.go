package domain

import "context"

// Identity is the verified caller principal. It is used verbatim as the
// ownership key on every task record: two identities are the same owner only
// if they are byte-for-byte equal.
type Identity string

// IsZero reports whether the identity is empty, i.e. no caller was resolved.
func (id Identity) IsZero() bool {
	return id == ""
}

// String implements fmt.Stringer.
func (id Identity) String() string {
	return string(id)
}

type identityKey struct{}

// WithIdentity returns a new context carrying the resolved caller identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller identity stored by WithIdentity.
// The boolean is false when no identity was stored or it is empty.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.IsZero() {
		return "", false
	}
	return id, true
}
