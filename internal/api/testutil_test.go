package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"suddenlyspaces/internal/domain"
	"suddenlyspaces/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestRouter builds the full route tree over a fresh in-memory database.
// The redis client points at an unreachable address, so every cache lookup
// degrades to the database, which is the behavior under test.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Unique shared-cache name keeps the database alive across pool connections
	// without leaking state between tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.User{}, &domain.Property{}, &domain.Application{}))
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1", // Nothing listens here
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	return NewRouter(gdb, rdb, testSecret), gdb
}

// createUser inserts a user and returns it
func createUser(t *testing.T, gdb *gorm.DB, email, role string) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := domain.User{Email: email, Name: "Test " + role, Password: string(hash), Role: role}
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

// createProperty inserts a property with an explicit creation time so ordering
// assertions are deterministic
func createProperty(t *testing.T, gdb *gorm.DB, owner domain.User, title, city string, rent float64, propertyType, leaseType string, available bool, createdAt time.Time) domain.Property {
	t.Helper()
	p := domain.Property{
		OwnerID:      owner.ID,
		Title:        title,
		Location:     "1 " + title + " St",
		City:         city,
		RentAmount:   rent,
		PropertyType: propertyType,
		LeaseType:    leaseType,
		IsAvailable:  available,
		CreatedAt:    createdAt,
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

// authToken mints a valid bearer token for a user
func authToken(t *testing.T, u domain.User) string {
	t.Helper()
	token, err := utils.GenerateJWT(u.ID, testSecret)
	require.NoError(t, err)
	return token
}

// doRequest performs a JSON request against the router, optionally authenticated
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into dest
func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), "body: %s", w.Body.String())
}
