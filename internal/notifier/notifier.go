// Package notifier turns booking lifecycle events into guest emails. It runs
// as its own binary so a slow SMTP server never blocks the API.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"royalpalace/config"
	"royalpalace/infras/kafka"
	"royalpalace/infras/mailer"
	"royalpalace/infras/otel"
	"royalpalace/internal/events"
	"royalpalace/shared/constant"
)

type Notifier struct {
	config *config.Config
	kafka  kafka.Client
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, mail mailer.Mailer, otl otel.Otel) *Notifier {
	return &Notifier{
		config: cfg,
		kafka:  kafkaClient,
		mailer: mail,
		otel:   otl,
	}
}

// Run consumes booking events until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	log.Info().
		Str("topic", n.config.Kafka.BookingTopic).
		Str("consumer_group", n.config.Kafka.ConsumerGroup).
		Msg("Starting up notifier.")

	n.kafka.Consume(ctx, n.config.Kafka.ConsumerGroup, n.config.Kafka.BookingTopic, n.handleMessage)
}

func (n *Notifier) handleMessage(msg kafkaGo.Message) {
	ctx, scope := n.otel.NewScope(context.Background(), constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".handleMessage")
	defer scope.End()

	decoded, err := kafka.DecodeKafkaMessage[events.BookingEvent](msg)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode booking event")

		return
	}

	event, ok := decoded.Value.(events.BookingEvent)
	if !ok {
		log.Error().Str("key", decoded.Key).Msg("unexpected booking event payload")

		return
	}

	if err := n.Notify(ctx, event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("type", event.Type).Msg("failed to send notification email")
	}
}

// Notify renders and sends the email for a single event. Unknown event types
// are dropped so old notifier builds survive newer producers.
func (n *Notifier) Notify(ctx context.Context, event events.BookingEvent) error {
	var (
		to      string
		subject string
		body    string
		err     error
	)

	switch event.Type {
	case events.TypeBookingConfirmed:
		to = event.GuestEmail
		subject = fmt.Sprintf("%s - Booking Confirmation #%s", n.config.Hotel.Name, event.ReferenceCode)
		body, err = n.render(bookingConfirmedTemplate, event)
	case events.TypeBookingCancelled:
		to = event.GuestEmail
		subject = fmt.Sprintf("%s - Booking Cancelled #%s", n.config.Hotel.Name, event.ReferenceCode)
		body, err = n.render(bookingCancelledTemplate, event)
	case events.TypeBookingCompleted:
		to = event.GuestEmail
		subject = fmt.Sprintf("%s - Thank You For Staying With Us #%s", n.config.Hotel.Name, event.ReferenceCode)
		body, err = n.render(bookingCompletedTemplate, event)
	case events.TypePaymentRecorded:
		to = event.GuestEmail
		subject = fmt.Sprintf("%s - Payment Receipt #%s", n.config.Hotel.Name, event.TransactionID)
		body, err = n.render(paymentReceiptTemplate, event)
	case events.TypeContactReceived:
		// Contact form submissions go to the front desk, not the sender.
		to = n.config.Hotel.ContactEmail
		subject = fmt.Sprintf("New Contact Form Submission: %s", event.Subject)
		body, err = n.render(contactReceivedTemplate, event)
	default:
		log.Warn().Str("type", event.Type).Msg("skipping unknown event type")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	return n.mailer.Send(ctx, to, subject, body)
}

type templateData struct {
	Event events.BookingEvent
	Hotel hotelData
}

type hotelData struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Currency     string
}

func (n *Notifier) render(tmpl *template.Template, event events.BookingEvent) (string, error) {
	data := templateData{
		Event: event,
		Hotel: hotelData{
			Name:         n.config.Hotel.Name,
			ContactEmail: n.config.Hotel.ContactEmail,
			ContactPhone: n.config.Hotel.ContactPhone,
			Currency:     n.config.Hotel.Currency,
		},
	}

	var buffer bytes.Buffer
	if err := tmpl.Execute(&buffer, data); err != nil {
		return "", err
	}

	return buffer.String(), nil
}
