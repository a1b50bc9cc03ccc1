package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginAndMe(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "johndoe",
		"email":    "john@example.com",
		"password": "Abcdef12!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	user := decodeBody(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "johndoe", user["username"])
	assert.Equal(t, "user", user["role"])
	assert.NotContains(t, user, "password")

	rec = f.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "john@example.com",
		"password": "Abcdef12!",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = f.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeBody(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "johndoe", me["username"])
}

func TestRegisterWeakPassword(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "johndoe",
		"email":    "john@example.com",
		"password": "abc",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password should be at least 8 characters long", decodeBody(t, rec)["msg"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newFixture()
	f.addUser(t, "johndoe", "john@example.com")

	rec := f.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "johndoe",
		"email":    "other@example.com",
		"password": "Abcdef12!",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user with username already exists", decodeBody(t, rec)["msg"])
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"username": "johndoe",
		"email":    "john@example.com",
		"password": "Abcdef12!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{
		"email":    "john@example.com",
		"password": "WrongPass1!",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeBody(t, rec)["msg"])
}

func TestListNotifications(t *testing.T) {
	f := newFixture()
	creator := f.addUser(t, "creator", "creator@example.com")
	assignee := f.addUser(t, "johndoe", "john@example.com")

	rec := f.do(t, http.MethodPost, "/api/v1/tasks", f.tokenFor(t, creator), map[string]string{
		"title":      "Write spec",
		"assignedTo": assignee.ID.Hex(),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The assignee sees their notification; the creator sees none.
	rec = f.do(t, http.MethodGet, "/api/v1/notifications", f.tokenFor(t, assignee), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["amount"])
	notification := body["notifications"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "You have been assigned a new task: Write spec", notification["message"])

	rec = f.do(t, http.MethodGet, "/api/v1/notifications", f.tokenFor(t, creator), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["amount"])
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture()
	user := f.addUser(t, "johndoe", "john@example.com")
	token := f.tokenFor(t, user)

	rec := f.do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]string{"username": "johnd"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)["user"].(map[string]interface{})
	assert.Equal(t, "johnd", updated["username"])

	rec = f.do(t, http.MethodPatch, "/api/v1/users/me", token, map[string]string{"email": "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"email" must be a valid email`, decodeBody(t, rec)["msg"])
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture()
	user := f.addUser(t, "johndoe", "john@example.com")
	token := f.tokenFor(t, user)

	rec := f.do(t, http.MethodDelete, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
