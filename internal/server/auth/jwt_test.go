package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, jti, err := GenerateToken("u1", "refugee", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := ParseToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "refugee", claims.Role)
	assert.Equal(t, jti, claims.ID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("u1", "refugee", secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	token, _, err := GenerateToken("u1", "refugee", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestUniqueJTIs(t *testing.T) {
	_, jti1, err := GenerateToken("u1", "refugee", secret, time.Hour)
	require.NoError(t, err)
	_, jti2, err := GenerateToken("u1", "refugee", secret, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, jti1, jti2)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
