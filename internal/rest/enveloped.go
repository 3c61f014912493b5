package rest

import (
	"context"
	"net/http"

	"github.com/steepworks/steeper/pkg/types"
)

// Compile-time interface check.
var _ types.DataService[*types.ResultEnvelope] = (*EnvelopedStore)(nil)

// EnvelopedStore is the remote backend that exchanges result envelopes.
// Its envelope-returning methods never fail: every problem, validation
// failures included, is reported as an envelope with Success false and
// a descriptive message, and nothing is sent over the wire once a
// request is known to be invalid. Callers check Success, not errors.
//
// The DataService methods adapt the envelope shape to the common
// contract: List yields a one-element envelope slice and Delete
// reports the envelope's Success flag.
type EnvelopedStore struct {
	client
}

// NewEnvelopedStore creates an uninitialized enveloped remote backend
// using the given HTTP client, or http.DefaultClient when nil.
func NewEnvelopedStore(httpClient *http.Client) *EnvelopedStore {
	return &EnvelopedStore{client: client{http: httpClient}}
}

// Initialize sets the base URL. No-op after the first successful call.
// InitializeEnvelope is the report-don't-raise form.
func (s *EnvelopedStore) Initialize(_ context.Context, locator string) error {
	return s.initialize(locator)
}

// InitializeEnvelope sets the base URL, reporting failure through the
// envelope instead of an error.
func (s *EnvelopedStore) InitializeEnvelope(locator string) *types.ResultEnvelope {
	if err := s.initialize(locator); err != nil {
		return types.FailEnvelope(err.Error())
	}
	return types.OKEnvelope()
}

// ListEnvelope fetches the full collection as one envelope.
func (s *EnvelopedStore) ListEnvelope(ctx context.Context) *types.ResultEnvelope {
	return s.exchange(ctx, http.MethodGet, nil, teasPath)
}

// GetEnvelope fetches one variety as an envelope.
func (s *EnvelopedStore) GetEnvelope(ctx context.Context, id int64) *types.ResultEnvelope {
	if err := checkID(id); err != nil {
		return types.FailEnvelope(err.Error())
	}
	return s.exchange(ctx, http.MethodGet, nil, teasPath, itemID(id))
}

// AddEnvelope validates the enveloped varieties and posts them to the
// collection. A validation failure is reported without a network call.
func (s *EnvelopedStore) AddEnvelope(ctx context.Context, env *types.ResultEnvelope) *types.ResultEnvelope {
	if fail := validateEnvelope(env); fail != nil {
		return fail
	}
	return s.exchange(ctx, http.MethodPost, env, teasPath)
}

// UpdateEnvelope validates the enveloped varieties and puts them to
// the collection path, this variant's full-collection update route.
func (s *EnvelopedStore) UpdateEnvelope(ctx context.Context, env *types.ResultEnvelope) *types.ResultEnvelope {
	if fail := validateEnvelope(env); fail != nil {
		return fail
	}
	for _, tea := range env.Teas {
		if err := checkID(tea.ID); err != nil {
			return types.FailEnvelope(err.Error())
		}
	}
	return s.exchange(ctx, http.MethodPut, env, teasPath)
}

// DeleteEnvelope validates the first enveloped variety and deletes its
// item resource.
func (s *EnvelopedStore) DeleteEnvelope(ctx context.Context, env *types.ResultEnvelope) *types.ResultEnvelope {
	if fail := validateEnvelope(env); fail != nil {
		return fail
	}
	id := env.Teas[0].ID
	if err := checkID(id); err != nil {
		return types.FailEnvelope(err.Error())
	}
	return s.exchange(ctx, http.MethodDelete, nil, teasPath, itemID(id))
}

// List satisfies the contract's sequence-returning shape with a
// one-element envelope slice; the backend's natural unit of work is a
// single envelope carrying many varieties.
func (s *EnvelopedStore) List(ctx context.Context) ([]*types.ResultEnvelope, error) {
	return []*types.ResultEnvelope{s.ListEnvelope(ctx)}, nil
}

// FindByID satisfies the contract; failures are inside the envelope.
func (s *EnvelopedStore) FindByID(ctx context.Context, id int64) (*types.ResultEnvelope, error) {
	return s.GetEnvelope(ctx, id), nil
}

// Add satisfies the contract; failures are inside the envelope.
func (s *EnvelopedStore) Add(ctx context.Context, env *types.ResultEnvelope) (*types.ResultEnvelope, error) {
	return s.AddEnvelope(ctx, env), nil
}

// Update satisfies the contract; failures are inside the envelope.
func (s *EnvelopedStore) Update(ctx context.Context, env *types.ResultEnvelope) (*types.ResultEnvelope, error) {
	return s.UpdateEnvelope(ctx, env), nil
}

// Delete satisfies the contract, reporting the envelope's Success flag.
func (s *EnvelopedStore) Delete(ctx context.Context, env *types.ResultEnvelope) (bool, error) {
	return s.DeleteEnvelope(ctx, env).Success, nil
}

// exchange performs one enveloped round-trip. Any failure along the
// way, transport errors included, comes back as a failed envelope.
func (s *EnvelopedStore) exchange(ctx context.Context, method string, body *types.ResultEnvelope, elem ...string) *types.ResultEnvelope {
	endpoint, err := s.endpoint(elem...)
	if err != nil {
		return types.FailEnvelope(err.Error())
	}

	var payload any
	if body != nil {
		payload = body
	}
	resp, err := s.roundTrip(ctx, method, endpoint, payload)
	if err != nil {
		return types.FailEnvelope(err.Error())
	}

	var env types.ResultEnvelope
	if decodeErr := decode(resp, &env); decodeErr != nil {
		if err := statusErr(resp); err != nil {
			return types.FailEnvelope(err.Error())
		}
		return types.FailEnvelope(decodeErr.Error())
	}
	return &env
}

// validateEnvelope runs Validate over every enveloped variety,
// returning a failed envelope on the first violation and nil when the
// envelope is sendable.
func validateEnvelope(env *types.ResultEnvelope) *types.ResultEnvelope {
	if env == nil || len(env.Teas) == 0 {
		return types.FailEnvelope("envelope contains no tea varieties")
	}
	for i := range env.Teas {
		if err := env.Teas[i].Validate(); err != nil {
			return types.FailEnvelope(err.Error())
		}
	}
	return nil
}
