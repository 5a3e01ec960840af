package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"royalpalace/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "royalpalace-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "guest@royalpalace.test", "USER")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "guest@royalpalace.test", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, AccessToken, claims.Type)
}

func TestValidateTokenRejectsWrongType(t *testing.T) {
	svc := New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "guest@royalpalace.test", "USER")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := New(testConfig())

	pair, err := svc.GenerateTokenPair("user-1", "guest@royalpalace.test", "ADMIN")
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = ExtractTokenFromHeader("Token abc")
	assert.Error(t, err)
}
