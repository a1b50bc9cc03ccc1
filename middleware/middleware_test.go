package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mohvmedezzvt/task-manager/middleware"
	"github.com/mohvmedezzvt/task-manager/utils"
)

func TestJWTAuthMissingHeader(t *testing.T) {
	auth := middleware.JWTAuth(utils.NewJWTManager("test-secret"))
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg": "Authorization header missing"}`, rec.Body.String())
}

func TestJWTAuthInvalidToken(t *testing.T) {
	auth := middleware.JWTAuth(utils.NewJWTManager("test-secret"))
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg": "Invalid or expired token"}`, rec.Body.String())
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token, err := utils.NewJWTManager("other-secret").GenerateToken(primitive.NewObjectID().Hex(), "user")
	require.NoError(t, err)

	auth := middleware.JWTAuth(utils.NewJWTManager("test-secret"))
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a badly signed token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthAttachesIdentity(t *testing.T) {
	manager := utils.NewJWTManager("test-secret")
	userID := primitive.NewObjectID()

	token, err := manager.GenerateToken(userID.Hex(), "admin")
	require.NoError(t, err)

	var got middleware.AuthUser
	auth := middleware.JWTAuth(manager)
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		require.True(t, ok)
		got = user
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, "admin", got.Role)
}
