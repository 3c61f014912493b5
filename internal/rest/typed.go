package rest

import (
	"context"
	"net/http"

	"github.com/steepworks/steeper/pkg/types"
)

// Compile-time interface check.
var _ types.DataService[*types.TeaVariety] = (*TypedStore)(nil)

// TypedStore is the remote backend that exchanges tea varieties
// directly: bare JSON entities on the wire, failures returned as
// errors (TransportError for HTTP failures).
type TypedStore struct {
	client
}

// NewTypedStore creates an uninitialized typed remote backend using
// the given HTTP client, or http.DefaultClient when nil.
func NewTypedStore(httpClient *http.Client) *TypedStore {
	return &TypedStore{client: client{http: httpClient}}
}

// Initialize sets the base URL the api/teas resources are resolved
// against. No-op after the first successful call.
func (s *TypedStore) Initialize(_ context.Context, locator string) error {
	return s.initialize(locator)
}

// List fetches every variety from the collection resource in
// server-determined order.
func (s *TypedStore) List(ctx context.Context) ([]*types.TeaVariety, error) {
	endpoint, err := s.endpoint(teasPath)
	if err != nil {
		return nil, err
	}

	resp, err := s.roundTrip(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if err := statusErr(resp); err != nil {
		return nil, err
	}

	var teas []*types.TeaVariety
	if err := decode(resp, &teas); err != nil {
		return nil, err
	}
	return teas, nil
}

// FindByID fetches one variety. A 404 answer surfaces as a
// TransportError with that status code.
func (s *TypedStore) FindByID(ctx context.Context, id int64) (*types.TeaVariety, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	endpoint, err := s.endpoint(teasPath, itemID(id))
	if err != nil {
		return nil, err
	}

	resp, err := s.roundTrip(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if err := statusErr(resp); err != nil {
		return nil, err
	}

	var tea types.TeaVariety
	if err := decode(resp, &tea); err != nil {
		return nil, err
	}
	return &tea, nil
}

// Add validates the variety and posts it to the collection, returning
// the server's representation with the assigned id.
func (s *TypedStore) Add(ctx context.Context, tea *types.TeaVariety) (*types.TeaVariety, error) {
	if err := tea.Validate(); err != nil {
		return nil, err
	}
	endpoint, err := s.endpoint(teasPath)
	if err != nil {
		return nil, err
	}

	resp, err := s.roundTrip(ctx, http.MethodPost, endpoint, tea)
	if err != nil {
		return nil, err
	}
	if err := statusErr(resp); err != nil {
		return nil, err
	}

	var created types.TeaVariety
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update validates the variety and puts it to its item resource.
func (s *TypedStore) Update(ctx context.Context, tea *types.TeaVariety) (*types.TeaVariety, error) {
	if err := checkID(tea.ID); err != nil {
		return nil, err
	}
	if err := tea.Validate(); err != nil {
		return nil, err
	}
	endpoint, err := s.endpoint(teasPath, itemID(tea.ID))
	if err != nil {
		return nil, err
	}

	resp, err := s.roundTrip(ctx, http.MethodPut, endpoint, tea)
	if err != nil {
		return nil, err
	}
	if err := statusErr(resp); err != nil {
		return nil, err
	}

	var updated types.TeaVariety
	if err := decode(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete validates the variety and deletes its item resource,
// reporting whether the server accepted the removal.
func (s *TypedStore) Delete(ctx context.Context, tea *types.TeaVariety) (bool, error) {
	if err := checkID(tea.ID); err != nil {
		return false, err
	}
	if err := tea.Validate(); err != nil {
		return false, err
	}
	endpoint, err := s.endpoint(teasPath, itemID(tea.ID))
	if err != nil {
		return false, err
	}

	resp, err := s.roundTrip(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return false, err
	}
	if err := statusErr(resp); err != nil {
		return false, err
	}
	resp.Body.Close()
	return true, nil
}
