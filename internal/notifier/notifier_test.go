package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"royalpalace/config"
	mailerMocks "royalpalace/infras/mailer/mocks"
	otelMocks "royalpalace/infras/otel/mocks"
	"royalpalace/internal/events"
)

func newTestNotifier(t *testing.T) (*Notifier, *mailerMocks.MockMailer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mail := mailerMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.Hotel.Name = "Royal Palace Hotel"
	cfg.Hotel.ContactEmail = "frontdesk@royalpalace.test"
	cfg.Hotel.ContactPhone = "041-591471"
	cfg.Hotel.Currency = "NPR"

	return New(cfg, nil, mail, otelMocks.NewOtel()), mail
}

func TestNotifyBookingConfirmed(t *testing.T) {
	notifier, mail := newTestNotifier(t)

	event := events.BookingEvent{
		Type:          events.TypeBookingConfirmed,
		ReferenceCode: "BK123456001",
		GuestName:     "Sita Sharma",
		GuestEmail:    "sita@example.com",
		RoomNumber:    "101",
		RoomTypeName:  "Deluxe",
		CheckIn:       "2026-09-01",
		CheckOut:      "2026-09-04",
		TotalAmount:   450,
	}

	mail.EXPECT().
		Send(gomock.Any(), "sita@example.com", "Royal Palace Hotel - Booking Confirmation #BK123456001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			assert.Contains(t, body, "Dear Sita Sharma")
			assert.Contains(t, body, "BK123456001")
			assert.Contains(t, body, "101 (Deluxe)")
			assert.Contains(t, body, "NPR 450.00")

			return nil
		})

	err := notifier.Notify(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotifyPaymentRecorded(t *testing.T) {
	notifier, mail := newTestNotifier(t)

	event := events.BookingEvent{
		Type:          events.TypePaymentRecorded,
		ReferenceCode: "BK123456001",
		GuestName:     "Sita Sharma",
		GuestEmail:    "sita@example.com",
		TransactionID: "TXN1756380000000",
		Method:        "CASH",
		TotalAmount:   450,
	}

	mail.EXPECT().
		Send(gomock.Any(), "sita@example.com", "Royal Palace Hotel - Payment Receipt #TXN1756380000000", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			assert.Contains(t, body, "TXN1756380000000")
			assert.Contains(t, body, "CASH")

			return nil
		})

	err := notifier.Notify(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotifyContactGoesToFrontDesk(t *testing.T) {
	notifier, mail := newTestNotifier(t)

	event := events.BookingEvent{
		Type:       events.TypeContactReceived,
		GuestName:  "Ram Thapa",
		GuestEmail: "ram@example.com",
		Subject:    "Airport pickup",
		Message:    "Do you offer airport pickup?",
	}

	mail.EXPECT().
		Send(gomock.Any(), "frontdesk@royalpalace.test", "New Contact Form Submission: Airport pickup", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			assert.Contains(t, body, "ram@example.com")
			assert.Contains(t, body, "Do you offer airport pickup?")

			return nil
		})

	err := notifier.Notify(context.Background(), event)

	assert.NoError(t, err)
}

func TestNotifyUnknownEventTypeIsDropped(t *testing.T) {
	notifier, _ := newTestNotifier(t)

	err := notifier.Notify(context.Background(), events.BookingEvent{Type: "booking.unknown"})

	assert.NoError(t, err)
}
