package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steepworks/steeper/pkg/types"
)

func resetFlags() {
	flagConfig = ""
	flagBackend = ""
	flagLocator = ""
	flagJSON = false
}

func TestResolveBackendPrecedence(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	require.NoError(t, loadConfig())
	assert.Equal(t, backendSQLite, resolveBackend(), "default backend is sqlite")

	flagBackend = backendREST
	assert.Equal(t, backendREST, resolveBackend(), "flag overrides config")
}

func TestResolveLocatorDefaults(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	require.NoError(t, loadConfig())
	assert.Equal(t, defaultDBPath, resolveLocator(backendSQLite))
	assert.Equal(t, defaultBaseURL, resolveLocator(backendREST))
	assert.Equal(t, defaultBaseURL+"envelope", resolveLocator(backendRESTEnvelope))

	flagLocator = "/tmp/other.db"
	assert.Equal(t, "/tmp/other.db", resolveLocator(backendSQLite), "flag overrides defaults")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(types.ErrNotFound))
	assert.Equal(t, exitUserError, exitCode(types.ErrEmptyName))
	assert.Equal(t, exitUserError, exitCode(types.ErrLastVariety))
	assert.Equal(t, exitUserError, exitCode(&types.ArgumentError{Param: "id"}))
	assert.Equal(t, exitSysError, exitCode(errors.New("disk on fire")))
	assert.Equal(t, exitSysError, exitCode(&types.StorageError{Message: "boom"}))
}
