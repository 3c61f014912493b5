package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steepworks/steeper/pkg/types"
)

func TestEnvelopedInitialize(t *testing.T) {
	s := NewEnvelopedStore(nil)

	env := s.InitializeEnvelope("")
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "locator")

	env = s.InitializeEnvelope("http://example.test/envelope")
	assert.True(t, env.Success)

	// The contract's error-returning form also exists and is a no-op
	// once the base address is set.
	require.NoError(t, s.Initialize(context.Background(), "http://other.test"))
	endpoint, err := s.endpoint(teasPath)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/envelope/api/teas", endpoint)
}

func TestEnvelopedAddValidatesWithoutNetworkCall(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	defer srv.Close()

	s := NewEnvelopedStore(srv.Client())
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx, srv.URL+"/envelope"))

	env := s.AddEnvelope(ctx, types.OKEnvelope(types.TeaVariety{
		Name:      "  ",
		SteepTime: types.DefaultSteepTime,
		BrewTemp:  212,
	}))
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "name")
	assert.Zero(t, requests, "validation failures must not reach the wire")

	env = s.AddEnvelope(ctx, types.OKEnvelope())
	assert.False(t, env.Success)
	assert.Zero(t, requests)

	env = s.AddEnvelope(ctx, nil)
	assert.False(t, env.Success)
	assert.Zero(t, requests)
}

func TestEnvelopedNeverRaises(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // unreachable from here on

	s := NewEnvelopedStore(nil)
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx, srv.URL+"/envelope"))

	env := s.ListEnvelope(ctx)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)

	// The contract form reports through the envelope, never the error.
	envs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.False(t, envs[0].Success)

	ok, err := s.Delete(ctx, types.OKEnvelope(types.TeaVariety{ID: 1, Name: "x", SteepTime: types.DefaultSteepTime, BrewTemp: 212}))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnvelopedNonEnvelopeAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "catastrophe", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewEnvelopedStore(srv.Client())
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx, srv.URL+"/envelope"))

	env := s.ListEnvelope(ctx)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

// TestEnvelopedCRUDAgainstServer exercises the enveloped backend end to
// end against the reference server's /envelope mount.
func TestEnvelopedCRUDAgainstServer(t *testing.T) {
	srv := newTeaServer(t)
	s := NewEnvelopedStore(srv.Client())
	ctx := context.Background()
	require.NoError(t, s.Initialize(ctx, srv.URL+"/envelope"))

	env := s.ListEnvelope(ctx)
	require.True(t, env.Success, env.Message)
	require.Len(t, env.Teas, 1)
	assert.Equal(t, "Earl Grey", env.Teas[0].Name)

	oolong, err := types.NewFromText("Oolong", "00:03:00", 195)
	require.NoError(t, err)
	created := s.AddEnvelope(ctx, types.OKEnvelope(*oolong))
	require.True(t, created.Success, created.Message)
	require.Len(t, created.Teas, 1)
	assert.Equal(t, int64(2), created.Teas[0].ID)

	got := s.GetEnvelope(ctx, 2)
	require.True(t, got.Success, got.Message)
	assert.Equal(t, created.Teas[0], got.Teas[0])

	// Full-collection update path.
	update := created.Teas[0]
	update.BrewTemp = 200
	updated := s.UpdateEnvelope(ctx, types.OKEnvelope(update))
	require.True(t, updated.Success, updated.Message)
	assert.Equal(t, 200, updated.Teas[0].BrewTemp)

	deleted := s.DeleteEnvelope(ctx, types.OKEnvelope(env.Teas[0]))
	assert.True(t, deleted.Success, deleted.Message)

	// Removing the survivor reports the conflict in the envelope.
	conflicted := s.DeleteEnvelope(ctx, types.OKEnvelope(updated.Teas[0]))
	assert.False(t, conflicted.Success)
	assert.NotEmpty(t, conflicted.Message)

	// Missing ids fail inside the envelope, nothing is raised.
	missing := s.GetEnvelope(ctx, 99)
	assert.False(t, missing.Success)

	invalid := s.GetEnvelope(ctx, -1)
	assert.False(t, invalid.Success)
}
