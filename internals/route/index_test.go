package routes_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semillero_backend/internals/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, body := testutil.DoJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "backend", body["service"])
}

func TestUsersHealthEndpoint(t *testing.T) {
	db := testutil.OpenTestDB(t)
	app := testutil.NewApp(t, db, nil, nil)

	status, body := testutil.DoJSON(t, app, http.MethodGet, "/users/health", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "users", body["service"])
}
