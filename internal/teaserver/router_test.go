package teaserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steepworks/steeper/internal/sqlite"
	"github.com/steepworks/steeper/pkg/types"
)

// newServer returns a test server over a freshly seeded store.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := sqlite.NewStore()
	path := filepath.Join(t.TempDir(), "teas.db")
	require.NoError(t, store.Initialize(context.Background(), path))

	srv := httptest.NewServer(NewRouter(store))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func postJSON(t *testing.T, url string, body, v any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := newServer(t)
	resp := getJSON(t, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTypedListAndGet(t *testing.T) {
	srv := newServer(t)

	var teas []types.TeaVariety
	resp := getJSON(t, srv.URL+"/api/teas", &teas)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, teas, 1)
	assert.Equal(t, "Earl Grey", teas[0].Name)

	var tea types.TeaVariety
	resp = getJSON(t, srv.URL+"/api/teas/1", &tea)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, teas[0], tea)

	resp = getJSON(t, srv.URL+"/api/teas/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/teas/banana", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTypedCreate(t *testing.T) {
	srv := newServer(t)

	tea, err := types.NewFromText("Oolong", "00:03:00", 195)
	require.NoError(t, err)

	var created types.TeaVariety
	resp := postJSON(t, srv.URL+"/api/teas", tea, &created)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, "Oolong", created.Name)

	// Duplicate names violate the unique constraint.
	resp = postJSON(t, srv.URL+"/api/teas", tea, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Validation failures are a 400.
	resp = postJSON(t, srv.URL+"/api/teas", types.TeaVariety{Name: " "}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTypedUpdateAndDelete(t *testing.T) {
	srv := newServer(t)

	tea, err := types.NewFromText("Oolong", "00:03:00", 195)
	require.NoError(t, err)
	var created types.TeaVariety
	postJSON(t, srv.URL+"/api/teas", tea, &created)

	created.BrewTemp = 200
	data, err := json.Marshal(created)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/teas/2", bytes.NewReader(data))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/api/teas/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// The surviving row cannot be removed.
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/api/teas/2", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestEnvelopedRoutes(t *testing.T) {
	srv := newServer(t)

	var env types.ResultEnvelope
	resp := getJSON(t, srv.URL+"/envelope/api/teas", &env)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	require.Len(t, env.Teas, 1)
	assert.Equal(t, "Earl Grey", env.Teas[0].Name)

	// Missing rows come back as a failed envelope, not a 404.
	env = types.ResultEnvelope{}
	resp = getJSON(t, srv.URL+"/envelope/api/teas/99", &env)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)

	// Create through an envelope.
	oolong, err := types.NewFromText("Oolong", "00:03:00", 195)
	require.NoError(t, err)
	in := types.OKEnvelope(*oolong)
	var out types.ResultEnvelope
	postJSON(t, srv.URL+"/envelope/api/teas", in, &out)
	assert.True(t, out.Success)
	require.Len(t, out.Teas, 1)
	assert.Equal(t, int64(2), out.Teas[0].ID)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "tracked")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "tracked", resp.Header.Get("X-Request-ID"))
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "teas.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}
