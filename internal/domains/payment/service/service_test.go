package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/otel/mocks"
	bookingMocks "royalpalace/internal/domains/booking/mocks"
	bookingModel "royalpalace/internal/domains/booking/model"
	paymentMocks "royalpalace/internal/domains/payment/mocks"
	"royalpalace/internal/domains/payment/model"
	"royalpalace/internal/domains/payment/model/dto"
	"royalpalace/internal/domains/payment/service"
	eventMocks "royalpalace/internal/events/mocks"
	cacheMocks "royalpalace/shared/cache/mocks"
	"royalpalace/shared/constant"
	"royalpalace/shared/failure"
)

const (
	guestID = "8c6a30a3-5f89-4a0f-92f2-2f78ab6e7a01"
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
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, otherID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "admin@example.com")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

	return ctx
}

func newTestService(t *testing.T) (service.Payment, *paymentMocks.MockPayment, *bookingMocks.MockBooking, *eventMocks.MockPublisher) {
	ctrl := gomock.NewController(t)

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockBookingRepo, mockPublisher, cfg, mockCache, mockOtel), mockRepo, mockBookingRepo, mockPublisher
}

func ownedBooking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:            bookID,
		UserID:        guestID,
		ReferenceCode: "BK123456001",
		Status:        bookingModel.StatusConfirmed,
	}
}

func TestPaymentService_Create(t *testing.T) {
	req := dto.CreatePaymentRequest{
		Amount: 450,
		Method: model.MethodBankTransfer,
	}

	t.Run("owner records a payment", func(t *testing.T) {
		svc, repo, bookingRepo, _ := newTestService(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(), nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.Payment) error {
				assert.Equal(t, bookID, payment.BookingID)
				assert.Equal(t, model.StatusCompleted, payment.Status)
				assert.True(t, strings.HasPrefix(payment.TransactionID, "TXN"))
				assert.Equal(t, 450.0, payment.Amount)

				return nil
			})

		res, err := svc.Create(guestCtx(), req, bookID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Status)
		assert.True(t, strings.HasPrefix(res.TransactionID, "TXN"))
	})

	t.Run("admin records against any booking", func(t *testing.T) {
		svc, repo, bookingRepo, _ := newTestService(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(), nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Create(adminCtx(), req, bookID)
		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc, _, bookingRepo, _ := newTestService(t)

		booking := ownedBooking()
		booking.UserID = otherID
		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := svc.Create(guestCtx(), req, bookID)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, _, bookingRepo, _ := newTestService(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		_, err := svc.Create(guestCtx(), req, bookID)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, bookingRepo, _ := newTestService(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(), nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(guestCtx(), req, bookID)
		assert.Error(t, err)
	})
}

func TestPaymentService_GetAllByBooking(t *testing.T) {
	t.Run("owner lists the ledger", func(t *testing.T) {
		svc, repo, bookingRepo, _ := newTestService(t)

		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedBooking(), nil)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{
				{ID: "p1", BookingID: bookID, Amount: 200, Status: model.StatusCompleted},
				{ID: "p2", BookingID: bookID, Amount: 250, Status: model.StatusCompleted},
			}, nil)

		res, err := svc.GetAllByBooking(guestCtx(), bookID)
		require.NoError(t, err)
		assert.Len(t, res.Payments, 2)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc, _, bookingRepo, _ := newTestService(t)

		booking := ownedBooking()
		booking.UserID = otherID
		bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		_, err := svc.GetAllByBooking(guestCtx(), bookID)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}
