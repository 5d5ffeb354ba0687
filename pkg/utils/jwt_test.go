package utils

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJWTTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	tokenString, err := CreateJWTToken(42, "Jo", "01ARZ3NDEKTSV4RRFFQ69G5FAV", true, secret)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["userID"])
	assert.Equal(t, "Jo", claims["name"])
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", claims["externalID"])
	assert.Equal(t, true, claims["admin"])
}
