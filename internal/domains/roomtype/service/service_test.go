package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/otel/mocks"
	s3Mocks "royalpalace/infras/s3/mocks"
	roomTypeMocks "royalpalace/internal/domains/roomtype/mocks"
	"royalpalace/internal/domains/roomtype/model"
	"royalpalace/internal/domains/roomtype/model/dto"
	"royalpalace/internal/domains/roomtype/service"
	cacheMocks "royalpalace/shared/cache/mocks"
	"royalpalace/shared/failure"
)

func newTestService(t *testing.T) (service.RoomType, *roomTypeMocks.MockRoomType, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)

	mockRepo := roomTypeMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "royalpalace-assets"

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mockOtel, mockS3), mockRepo, mockCache, mockS3
}

func TestRoomTypeService_Create(t *testing.T) {
	t.Run("without image", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.Equal(t, "Royal Suite", roomType.Name)
				assert.Equal(t, 12000.0, roomType.SingleRate)
				assert.True(t, roomType.Active)
				assert.NotEmpty(t, roomType.ID)

				return nil
			})

		err := svc.Create(context.Background(), dto.CreateRoomTypeRequest{
			Name:         "Royal Suite",
			SingleRate:   12000,
			MaxOccupancy: 4,
			Amenities:    []string{"Air Conditioning", "Mini Bar"},
		})
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		err := svc.Create(context.Background(), dto.CreateRoomTypeRequest{
			Name:         "Royal Suite",
			SingleRate:   12000,
			MaxOccupancy: 4,
		})
		assert.Error(t, err)
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, repo, cache, _ := newTestService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		svc, repo, cache, _ := newTestService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{
			ID:           "type-1",
			Name:         "Deluxe Room",
			SingleRate:   4500,
			MaxOccupancy: 2,
		}, nil)

		res, err := svc.Get(context.Background(), "type-1")
		assert.NoError(t, err)
		assert.Equal(t, "Deluxe Room", res.Name)
		assert.Equal(t, 4500.0, res.SingleRate)
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	t.Run("deletes stored image", func(t *testing.T) {
		svc, repo, _, s3 := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{
			ID:    "type-1",
			Image: "https://assets.example.com/room_type/abc.jpg",
		}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		s3.EXPECT().GetObjectNameFromURL("royalpalace-assets", "https://assets.example.com/room_type/abc.jpg").Return("abc.jpg")
		s3.EXPECT().DeleteFile(gomock.Any(), "royalpalace-assets", model.EntityName, "abc.jpg").Return(nil)

		err := svc.Delete(context.Background(), "type-1")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		err := svc.Delete(context.Background(), "missing")
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
