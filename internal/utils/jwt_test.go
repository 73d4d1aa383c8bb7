package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megapos_terminal/internal/config"
	"megapos_terminal/internal/models"
)

func TestGenerateJWTSignedWithConfigSecret(t *testing.T) {
	user := models.UserAccount{UserID: 7, FullName: "Lan Nguyễn"}

	signed, err := GenerateJWT(user)
	require.NoError(t, err)

	// Le jeton doit se vérifier avec le secret exposé par la config — c'est
	// le même que celui du middleware.
	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret()), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(7), claims["user_id"])
	assert.Equal(t, "Lan Nguyễn", claims["full_name"])
	assert.Equal(t, false, claims["guest"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, exp, float64(time.Now().Unix()))
}

func TestGenerateJWTGuestClaim(t *testing.T) {
	signed, err := GenerateJWT(models.GuestUser())
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret()), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(0), claims["user_id"])
	assert.Equal(t, true, claims["guest"])
}
