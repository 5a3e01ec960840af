package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/otel/mocks"
	userMocks "royalpalace/internal/domains/user/mocks"
	"royalpalace/internal/domains/user/model"
	"royalpalace/internal/domains/user/model/dto"
	"royalpalace/internal/domains/user/service"
	cacheMocks "royalpalace/shared/cache/mocks"
	"royalpalace/shared/failure"
)

func newTestService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateUserRequest{
				Name:     "Sita Sharma",
				Email:    "sita@example.com",
				Password: "supersecret",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "USER", user.Role)
						assert.True(t, user.Active)
						assert.NotEmpty(t, user.ID)
						assert.NotEqual(t, "supersecret", user.Password)

						return nil
					})
			},
		},
		{
			name: "duplicate email",
			req: dto.CreateUserRequest{
				Name:     "Sita Sharma",
				Email:    "sita@example.com",
				Password: "supersecret",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			req: dto.CreateUserRequest{
				Name:     "Sita Sharma",
				Email:    "sita@example.com",
				Password: "supersecret",
			},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, repo, _ := newTestService(t)
			test.setupMock(repo)

			err := svc.Create(context.Background(), test.req)
			if test.wantErr {
				assert.Error(t, err)
				if test.wantCode != 0 {
					assert.Equal(t, test.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo, cache := newTestService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID:    "user-1",
			Name:  "Sita Sharma",
			Email: "sita@example.com",
			Role:  "USER",
		}, nil)

		res, err := svc.Get(context.Background(), "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "sita@example.com", res.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, cache := newTestService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.Update(context.Background(), dto.UpdateUserRequest{}, "user-1")
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("user missing", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		name := "New Name"
		err := svc.Update(context.Background(), dto.UpdateUserRequest{Name: &name}, "user-1")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, "New Name", *fields["name"].(*string))

				return nil
			})

		name := "New Name"
		err := svc.Update(context.Background(), dto.UpdateUserRequest{Name: &name}, "user-1")
		assert.NoError(t, err)
	})
}
