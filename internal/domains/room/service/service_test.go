package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/otel/mocks"
	roomMocks "royalpalace/internal/domains/room/mocks"
	"royalpalace/internal/domains/room/model"
	"royalpalace/internal/domains/room/model/dto"
	"royalpalace/internal/domains/room/service"
	roomTypeMocks "royalpalace/internal/domains/roomtype/mocks"
	cacheMocks "royalpalace/shared/cache/mocks"
	"royalpalace/shared/failure"
)

func newTestService(t *testing.T) (service.Room, *roomMocks.MockRoom, *roomTypeMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockRoomTypeRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockRoomTypeRepo, cfg, mockCache, mockOtel), mockRepo, mockRoomTypeRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber: "101",
		Floor:      1,
		RoomTypeID: "7b339cbe-15d6-4a34-9c37-7b1f6bca1fa1",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, repo, typeRepo, _ := newTestService(t)

		typeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "101", room.RoomNumber)
				assert.Equal(t, model.StatusAvailable, room.Status)

				return nil
			})

		assert.NoError(t, svc.Create(context.Background(), req))
	})

	t.Run("unknown room type", func(t *testing.T) {
		svc, _, typeRepo, _ := newTestService(t)

		typeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Create(context.Background(), req)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("duplicate room number", func(t *testing.T) {
		svc, repo, typeRepo, _ := newTestService(t)

		typeRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(context.Background(), req)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("occupied room", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:     "room-1",
			Status: model.StatusOccupied,
		}, nil)

		err := svc.Delete(context.Background(), "room-1")
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("available room", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:     "room-1",
			Status: model.StatusAvailable,
		}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "room-1"))
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("includes room type columns", func(t *testing.T) {
		svc, repo, _, cache := newTestService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:           "room-1",
			RoomNumber:   "101",
			Status:       model.StatusAvailable,
			RoomTypeID:   "type-1",
			RoomTypeName: "Deluxe Room",
			SingleRate:   4500,
		}, nil)

		res, err := svc.Get(context.Background(), "room-1")
		assert.NoError(t, err)
		assert.Equal(t, "Deluxe Room", res.RoomTypeName)
		assert.Equal(t, 4500.0, res.SingleRate)
	})
}
