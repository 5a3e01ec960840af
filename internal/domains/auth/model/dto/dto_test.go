package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"royalpalace/infras/jwt"
	"royalpalace/internal/domains/auth/model/dto"
	userModel "royalpalace/internal/domains/user/model"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Sita Sharma",
		Email:    "sita@example.com",
		Password: "plaintext",
	}

	user := req.ToUserModel("system", "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "USER", user.Role)
	assert.Equal(t, "hashed", user.Password)
	assert.True(t, user.Active)
	assert.Equal(t, "system", user.CreatedBy)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}
	user := userModel.User{
		ID:    "user-1",
		Name:  "Sita Sharma",
		Email: "sita@example.com",
		Role:  "USER",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, user)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, user.ID, response.UserID)
	assert.Equal(t, user.Role, response.Role)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}
