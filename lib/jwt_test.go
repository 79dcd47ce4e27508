package lib

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseToken(t *testing.T) {
	userID := uuid.New()
	secret := "test-secret"

	token, err := SignAccessToken(userID, "admin@example.com", "admin", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.Sub)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Exp, time.Minute)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignAccessToken(uuid.New(), "admin@example.com", "admin", "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := SignAccessToken(uuid.New(), "admin@example.com", "admin", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	assert.Error(t, err)
}
