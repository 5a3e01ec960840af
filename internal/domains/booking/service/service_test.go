package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/otel/mocks"
	bookingMocks "royalpalace/internal/domains/booking/mocks"
	"royalpalace/internal/domains/booking/model"
	"royalpalace/internal/domains/booking/model/dto"
	"royalpalace/internal/domains/booking/service"
	roomMocks "royalpalace/internal/domains/room/mocks"
	roomModel "royalpalace/internal/domains/room/model"
	"royalpalace/internal/events"
	eventMocks "royalpalace/internal/events/mocks"
	cacheMocks "royalpalace/shared/cache/mocks"
	"royalpalace/shared/constant"
	gDto "royalpalace/shared/dto"
	"royalpalace/shared/failure"
)

const (
	guestID = "8c6a30a3-5f89-4a0f-92f2-2f78ab6e7a01"
	adminID = "b0db54b1-44a4-4f8f-b0bb-6cb5ef2a7f02"
	roomID  = "9f1f42c8-1b9c-41c5-b9c1-5d6e0f8a9b03"
	bookID  = "fcadf0f4-2d10-4cae-bb78-0f52c4a7cd04"
	otherID = "aa1b2c3d-4e5f-6071-8293-a4b5c6d7e805"
)

func guestCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, guestID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "guest@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

	return ctx
}

func adminCtx() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, adminID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "admin@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	return ctx
}

func newTestService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *roomMocks.MockRoom, *eventMocks.MockPublisher) {
	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.ExtraBedCharge = 30
	cfg.Hotel.ReferencePrefix = "BK"

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockRoomRepo, mockPublisher, cfg, mockCache, mockOtel), mockRepo, mockRoomRepo, mockPublisher
}

func availableRoom() roomModel.Room {
	doubleRate := 200.0

	return roomModel.Room{
		ID:           roomID,
		RoomNumber:   "101",
		Status:       roomModel.StatusAvailable,
		RoomTypeName: "Deluxe",
		SingleRate:   150,
		DoubleRate:   &doubleRate,
	}
}

// joinGuestAndRoom mirrors what the repository's joined read adds on top of
// the inserted row.
func joinGuestAndRoom(booking model.Booking) model.Booking {
	booking.GuestName = "Sita Sharma"
	booking.GuestEmail = "guest@example.com"
	booking.RoomNumber = "101"
	booking.RoomTypeName = "Deluxe"

	return booking
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    roomID,
		CheckIn:   "2026-09-10",
		CheckOut:  "2026-09-13",
		Adults:    1,
		Occupancy: model.OccupancySingle,
	}

	t.Run("successful booking prices the stay server-side", func(t *testing.T) {
		svc, repo, roomRepo, _ := newTestService(t)

		var inserted model.Booking

		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		repo.EXPECT().CreateWithRoomStatus(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ string) error {
				assert.Equal(t, guestID, booking.UserID)
				assert.Equal(t, model.StatusConfirmed, booking.Status)
				assert.Equal(t, 3, booking.Nights)
				assert.Equal(t, 450.0, booking.TotalAmount)
				assert.NotEmpty(t, booking.ID)
				assert.Contains(t, booking.ReferenceCode, "BK")

				inserted = booking

				return nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
				return joinGuestAndRoom(inserted), nil
			})

		res, err := svc.Create(guestCtx(), req)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, 450.0, res.TotalAmount)
		assert.Equal(t, "101", res.RoomNumber)
	})

	t.Run("double occupancy with extra bed", func(t *testing.T) {
		svc, repo, roomRepo, _ := newTestService(t)

		doubleReq := req
		doubleReq.Occupancy = model.OccupancyDouble
		doubleReq.ExtraBed = true
		doubleReq.Adults = 2

		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		repo.EXPECT().CreateWithRoomStatus(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ string) error {
				assert.Equal(t, 200.0, booking.NightlyRate)
				assert.Equal(t, 690.0, booking.TotalAmount)

				return nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookID}, nil)

		_, err := svc.Create(guestCtx(), doubleReq)
		require.NoError(t, err)
	})

	t.Run("confirmation event carries the guest details", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := bookingMocks.NewMockBooking(ctrl)
		roomRepo := roomMocks.NewMockRoom(ctrl)
		publisher := eventMocks.NewMockPublisher(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600
		cfg.Hotel.ExtraBedCharge = 30
		cfg.Hotel.ReferencePrefix = "BK"

		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		published := make(chan events.BookingEvent, 1)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event events.BookingEvent) error {
				published <- event

				return nil
			})

		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		repo.EXPECT().CreateWithRoomStatus(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).Return(nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
				stored := model.Booking{ID: bookID, UserID: guestID, ReferenceCode: "BK123456001", TotalAmount: 450}

				return joinGuestAndRoom(stored), nil
			})

		svc := service.New(repo, roomRepo, publisher, cfg, mockCache, mocks.NewOtel())

		_, err := svc.Create(guestCtx(), req)
		require.NoError(t, err)

		select {
		case event := <-published:
			assert.Equal(t, events.TypeBookingConfirmed, event.Type)
			assert.Equal(t, "Sita Sharma", event.GuestName)
			assert.Equal(t, "guest@example.com", event.GuestEmail)
			assert.Equal(t, "101", event.RoomNumber)
		case <-time.After(time.Second):
			t.Fatal("booking event was not published")
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, _, roomRepo, _ := newTestService(t)

		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := svc.Create(guestCtx(), req)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("occupied room is rejected", func(t *testing.T) {
		svc, _, roomRepo, _ := newTestService(t)

		room := availableRoom()
		room.Status = roomModel.StatusOccupied
		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := svc.Create(guestCtx(), req)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("checkout before checkin is rejected", func(t *testing.T) {
		svc, _, roomRepo, _ := newTestService(t)

		badReq := req
		badReq.CheckIn = "2026-09-13"
		badReq.CheckOut = "2026-09-10"

		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)

		_, err := svc.Create(guestCtx(), badReq)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, roomRepo, _ := newTestService(t)

		roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		repo.EXPECT().CreateWithRoomStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(guestCtx(), req)
		assert.Error(t, err)
	})
}

func TestBookingService_Get(t *testing.T) {
	stored := model.Booking{
		ID:     bookID,
		UserID: guestID,
		RoomID: roomID,
		Status: model.StatusConfirmed,
	}

	t.Run("owner reads own booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := svc.Get(guestCtx(), bookID)
		require.NoError(t, err)
		assert.Equal(t, bookID, res.ID)
	})

	t.Run("admin reads any booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		_, err := svc.Get(adminCtx(), bookID)
		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		other := stored
		other.UserID = otherID
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		_, err := svc.Get(guestCtx(), bookID)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(guestCtx(), bookID)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("guest listing is scoped to own bookings", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				require.Len(t, filter.Filters, 1)
				ownerFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldUserID, ownerFilter.Field)
				assert.Equal(t, guestID, ownerFilter.Value)

				return []model.Booking{{ID: bookID, UserID: guestID}}, nil
			})

		res, err := svc.GetAll(guestCtx(), params, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("admin listing is unscoped", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Empty(t, filter.Filters)

				return []model.Booking{{ID: bookID}, {ID: otherID}}, nil
			})

		res, err := svc.GetAll(adminCtx(), params, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	confirmed := model.Booking{
		ID:     bookID,
		UserID: guestID,
		RoomID: roomID,
		Status: model.StatusConfirmed,
	}

	t.Run("guest cancels own booking and frees the room", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		repo.EXPECT().UpdateStatusWithRoom(gomock.Any(), gomock.Any(), bookID, roomID, roomModel.StatusAvailable).
			DoAndReturn(func(_ context.Context, fields map[string]any, _, _, _ string) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})

		err := svc.UpdateStatus(guestCtx(), dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}, bookID)
		assert.NoError(t, err)
	})

	t.Run("guest cannot complete a booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		err := svc.UpdateStatus(guestCtx(), dto.UpdateBookingStatusRequest{Status: model.StatusCompleted}, bookID)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("guest cannot touch another guest's booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		other := confirmed
		other.UserID = otherID
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(other, nil)

		err := svc.UpdateStatus(guestCtx(), dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}, bookID)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("admin completes any confirmed booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		repo.EXPECT().UpdateStatusWithRoom(gomock.Any(), gomock.Any(), bookID, roomID, roomModel.StatusAvailable).Return(nil)

		err := svc.UpdateStatus(adminCtx(), dto.UpdateBookingStatusRequest{Status: model.StatusCompleted}, bookID)
		assert.NoError(t, err)
	})

	t.Run("terminal bookings never transition again", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		cancelled := confirmed
		cancelled.Status = model.StatusCancelled
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		err := svc.UpdateStatus(adminCtx(), dto.UpdateBookingStatusRequest{Status: model.StatusCompleted}, bookID)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, repo, _, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.UpdateStatus(adminCtx(), dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}, bookID)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
