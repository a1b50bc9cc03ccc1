package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohvmedezzvt/task-manager/utils"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := utils.NewJWTManager("test-secret")

	token, err := manager.GenerateToken("64f1b2c3d4e5f6a7b8c9d0e1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", claims.ID)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := utils.NewJWTManager("secret-one").GenerateToken("id", "user")
	require.NoError(t, err)

	_, err = utils.NewJWTManager("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	// Hand-craft a token that expired an hour ago, signed with the right key.
	claims := &utils.Claims{
		ID:   "id",
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = utils.NewJWTManager("test-secret").ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenMalformed(t *testing.T) {
	_, err := utils.NewJWTManager("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
