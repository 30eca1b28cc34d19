package store

import "context"

type ctxKey struct{}

// WithContext returns a copy of ctx carrying s. Everything derived from the
// returned context resolves to s until another store is provided below it.
func (s *RemoteCodeStore) WithContext(ctx context.Context) context.Context {
	if current, ok := ctx.Value(ctxKey{}).(*RemoteCodeStore); ok && current == s {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, s)
}

// Provide creates a store and registers it on a child of ctx.
func Provide(ctx context.Context, baseURL string, opts ...Option) (context.Context, *RemoteCodeStore, error) {
	s, err := New(baseURL, opts...)
	if err != nil {
		return ctx, nil, err
	}

	return s.WithContext(ctx), s, nil
}

// Resolve returns the store closest to ctx in its ancestry.
func Resolve(ctx context.Context) (*RemoteCodeStore, error) {
	s, ok := ctx.Value(ctxKey{}).(*RemoteCodeStore)
	if !ok || s == nil {
		return nil, ErrNotProvided
	}

	return s, nil
}
