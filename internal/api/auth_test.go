package api

import (
	"net/http"
	"testing"

	"suddenlyspaces/internal/domain"
	"suddenlyspaces/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	r, gdb := newTestRouter(t)

	register := gin.H{
		"email":    "Owner1@Example.com",
		"name":     "John Property Owner",
		"password": "password123",
		"role":     "OWNER",
	}
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", "", register)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The email is stored lowercase and the role sticks
	var user domain.User
	require.NoError(t, gdb.First(&user, "email = ?", "owner1@example.com").Error)
	assert.Equal(t, domain.RoleOwner, user.Role)

	// Registering the same email again fails
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", "", register)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Login returns a token that resolves back to the user
	w = doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "owner1@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res AuthResponse
	decode(t, w, &res)
	claims, err := utils.ParseJWT(res.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// Wrong passwords and unknown accounts both come back unauthorized
	w = doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "owner1@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doRequest(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"email": "ghost@example.com", "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    "not-an-email",
		"name":     "X",
		"password": "short",
		"role":     "WIZARD",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var res struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &res)
	assert.Equal(t, "Validation error", res.Error)
	assert.Equal(t, "Invalid email address", res.Fields["email"])
	assert.Equal(t, "Password must be at least 8 characters", res.Fields["password"])
	assert.Equal(t, "Role must be OWNER or TENANT", res.Fields["role"])
}

func TestProtectedRoutesRequireValidToken(t *testing.T) {
	r, _ := newTestRouter(t)

	// No token
	w := doRequest(t, r, http.MethodGet, "/api/properties/my-properties", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = doRequest(t, r, http.MethodGet, "/api/properties/my-properties", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
