// Package events defines the notification envelope published to Kafka
// whenever a booking changes or money moves. The notifier binary consumes
// these and turns them into guest emails.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"royalpalace/config"
	"royalpalace/infras/kafka"
	"royalpalace/shared/constant"
	"royalpalace/shared/timezone"
)

const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingCompleted = "booking.completed"
	TypePaymentRecorded  = "payment.recorded"
	TypeContactReceived  = "contact.received"
)

type BookingEvent struct {
	Type          string  `json:"type"`
	BookingID     string  `json:"booking_id,omitempty"`
	ReferenceCode string  `json:"reference_code,omitempty"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	RoomNumber    string  `json:"room_number,omitempty"`
	RoomTypeName  string  `json:"room_type_name,omitempty"`
	CheckIn       string  `json:"check_in,omitempty"`
	CheckOut      string  `json:"check_out,omitempty"`
	TotalAmount   float64 `json:"total_amount,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Method        string  `json:"method,omitempty"`
	Subject       string  `json:"subject,omitempty"`
	Message       string  `json:"message,omitempty"`
	OccurredAt    string  `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
}

type publisherImpl struct {
	kafka  kafka.Client
	config *config.Config
}

func NewPublisher(kafkaClient kafka.Client, config *config.Config) Publisher {
	return &publisherImpl{
		kafka:  kafkaClient,
		config: config,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event BookingEvent) error {
	if event.OccurredAt == "" {
		event.OccurredAt = timezone.Format(timezone.Now(), constant.DateFormat)
	}

	message := kafka.Message{
		Key:   event.Type,
		Value: event,
	}

	return p.kafka.SendMessages(ctx, p.config.Kafka.BookingTopic, message)
}
