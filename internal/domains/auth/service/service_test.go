package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/jwt"
	jwtMocks "royalpalace/infras/jwt/mocks"
	"royalpalace/infras/otel/mocks"
	"royalpalace/internal/domains/auth/model/dto"
	"royalpalace/internal/domains/auth/service"
	userMocks "royalpalace/internal/domains/user/mocks"
	userModel "royalpalace/internal/domains/user/model"
	"royalpalace/shared/constant"
	"royalpalace/shared/failure"
	"royalpalace/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	return service.New(mockUserRepo, cfg, mockOtel, mockJWT), mockUserRepo, mockJWT
}

func hashFor(t *testing.T, plain string) string {
	hashed, err := password.Hash(plain)
	require.NoError(t, err)

	return hashed
}

func TestAuthService_Login(t *testing.T) {
	validUser := func(t *testing.T) userModel.User {
		return userModel.User{
			ID:       "user-id-123",
			Name:     "Test Guest",
			Email:    "test@example.com",
			Password: hashFor(t, "password"),
			Role:     constant.RoleUser,
			Active:   true,
		}
	}

	t.Run("successful login", func(t *testing.T) {
		svc, repo, jwtSvc := newAuthService(t)
		user := validUser(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		jwtSvc.EXPECT().GenerateTokenPair(user.ID, user.Email, user.Role).Return(&jwt.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    900,
		}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "test@example.com",
			Password: "password",
		})
		require.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, user.ID, res.UserID)
		assert.Equal(t, constant.RoleUser, res.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password",
		})
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(t), nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "test@example.com",
			Password: "wrong",
		})
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)
		user := validUser(t)
		user.Active = false

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "test@example.com",
			Password: "password",
		})
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.NotEqual(t, "password123", user.Password)

				return nil
			})

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Name:     "Test Guest",
			Email:    "test@example.com",
			Password: "password123",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Register(context.Background(), dto.RegisterRequest{
			Name:     "Test Guest",
			Email:    "test@example.com",
			Password: "password123",
		})
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		svc, _, jwtSvc := newAuthService(t)

		jwtSvc.EXPECT().RefreshTokens("refresh-token").Return(&jwt.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
		}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})
		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, _, jwtSvc := newAuthService(t)

		jwtSvc.EXPECT().RefreshTokens("bad-token").Return(nil, errors.New("expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{
			ID:       "user-1",
			Email:    "test@example.com",
			Password: hashFor(t, "correct"),
		}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "incorrect",
			NewPassword:     "newpassword",
		}, "user-1")
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("successful change", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{
			ID:       "user-1",
			Email:    "test@example.com",
			Password: hashFor(t, "correct"),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "correct",
			NewPassword:     "newpassword",
		}, "user-1")
		assert.NoError(t, err)
	})
}
