package api

import (
	"net/http"
	"testing"

	"campus_market/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginScenario(t *testing.T) {
	r, db := newTestRouter(t)

	// Register alice
	code, resp := doJSON(t, r, http.MethodPost, "/api/users/register", map[string]any{
		"username":     "alice",
		"password":     "secret123",
		"email":        "a@x.com",
		"phone_number": "555-0101",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.NotZero(t, resp["userId"])

	// The stored password is a bcrypt hash, not the cleartext
	var stored domain.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, len(stored.Password) > 20)

	// Same username again is a conflict
	code, resp = doJSON(t, r, http.MethodPost, "/api/users/register", map[string]any{
		"username": "alice",
		"password": "other",
		"email":    "b@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])

	// Same email with a new username is a conflict too
	code, _ = doJSON(t, r, http.MethodPost, "/api/users/register", map[string]any{
		"username": "bob",
		"password": "other",
		"email":    "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// Wrong password is unauthorized
	code, resp = doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, resp["success"])

	// Unknown username is unauthorized as well
	code, _ = doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{
		"username": "nobody",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	// Correct credentials return the public user fields
	code, resp = doJSON(t, r, http.MethodPost, "/api/users/login", map[string]any{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	user, ok := resp["user"].(map[string]any)
	require.True(t, ok, "login response must carry a user object")
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotContains(t, user, "password", "password must never leave the server")
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	code, resp := doJSON(t, r, http.MethodPost, "/api/users/register", map[string]any{
		"username": "carol",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])
}
