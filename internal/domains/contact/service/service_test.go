package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	"royalpalace/infras/otel/mocks"
	contactMocks "royalpalace/internal/domains/contact/mocks"
	"royalpalace/internal/domains/contact/model"
	"royalpalace/internal/domains/contact/model/dto"
	"royalpalace/internal/domains/contact/service"
	eventMocks "royalpalace/internal/events/mocks"
	cacheMocks "royalpalace/shared/cache/mocks"
	"royalpalace/shared/failure"
)

func newTestService(t *testing.T) (service.Contact, *contactMocks.MockContact, *eventMocks.MockPublisher) {
	ctrl := gomock.NewController(t)

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockPublisher := eventMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, mockPublisher, cfg, mockCache, mockOtel), mockRepo, mockPublisher
}

func TestContactService_Create(t *testing.T) {
	req := dto.CreateContactMessageRequest{
		Name:    "Asha Gurung",
		Email:   "asha@example.com",
		Subject: "Airport pickup",
		Message: "Is an airport pickup available for early arrivals?",
	}

	t.Run("successful submission", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message model.ContactMessage) error {
				assert.Equal(t, "Asha Gurung", message.Name)
				assert.False(t, message.Read)
				assert.NotEmpty(t, message.ID)

				return nil
			})

		res, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Airport pickup", res.Subject)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestContactService_MarkRead(t *testing.T) {
	const messageID = "c5a1de9b-96cf-4b71-b4d5-08f8b2f4e906"

	t.Run("marks an existing message", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ContactMessage{ID: messageID}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldRead])

				return nil
			})

		assert.NoError(t, svc.MarkRead(context.Background(), messageID))
	})

	t.Run("missing message", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ContactMessage{}, nil)

		err := svc.MarkRead(context.Background(), messageID)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
