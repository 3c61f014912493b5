package types

import "context"

// DataService is the capability set every backend satisfies, generic
// over the payload it exchanges: the sqlite and typed REST backends
// carry *TeaVariety, the enveloped REST backend carries *ResultEnvelope.
//
// The context-taking form is canonical; callers needing timeouts attach
// a deadline to ctx, no operation retries or cancels internally. The
// Sync adapter provides blocking counterparts.
type DataService[T any] interface {
	// Initialize performs one-time setup against a locator (file path
	// or base URL). Returns an ArgumentError for an empty locator.
	// After a successful call, further calls are a no-op.
	Initialize(ctx context.Context, locator string) error

	// List returns every stored payload in the store's natural order.
	List(ctx context.Context) ([]T, error)

	// FindByID returns the payload with the given identity. A
	// non-positive id is rejected with an ArgumentError before any I/O.
	FindByID(ctx context.Context, id int64) (T, error)

	// Add persists a new payload and returns it with its
	// store-assigned identity populated.
	Add(ctx context.Context, item T) (T, error)

	// Update overwrites an existing payload; the payload must already
	// carry a positive identity.
	Update(ctx context.Context, item T) (T, error)

	// Delete removes an existing payload and reports whether a row was
	// removed. The sqlite backend additionally refuses to remove the
	// last remaining row.
	Delete(ctx context.Context, item T) (bool, error)
}

// Sync adapts a DataService to blocking calls by waiting on the
// context-taking form with context.Background. It exists for callers
// that cannot suspend; do not call Sync methods from code that already
// runs under a cancellable context, wrap the underlying service instead.
type Sync[T any] struct {
	svc DataService[T]
}

// NewSync wraps a DataService in its blocking form.
func NewSync[T any](svc DataService[T]) *Sync[T] {
	return &Sync[T]{svc: svc}
}

func (s *Sync[T]) Initialize(locator string) error {
	return s.svc.Initialize(context.Background(), locator)
}

func (s *Sync[T]) List() ([]T, error) {
	return s.svc.List(context.Background())
}

func (s *Sync[T]) FindByID(id int64) (T, error) {
	return s.svc.FindByID(context.Background(), id)
}

func (s *Sync[T]) Add(item T) (T, error) {
	return s.svc.Add(context.Background(), item)
}

func (s *Sync[T]) Update(item T) (T, error) {
	return s.svc.Update(context.Background(), item)
}

func (s *Sync[T]) Delete(item T) (bool, error) {
	return s.svc.Delete(context.Background(), item)
}
