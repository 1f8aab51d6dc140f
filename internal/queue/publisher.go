package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"venue-booking/internal/service"
)

const bookingQueueName = "booking.events"

// Publisher sends booking lifecycle events to RabbitMQ. It satisfies
// the booking service's EventPublisher. Publishing is best effort:
// failures are logged and swallowed so a broker outage never fails a
// booking request.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the given AMQP URL.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

// BookingCreated publishes a BookingCreatedEvent.
func (p *Publisher) BookingCreated(ctx context.Context, resp service.BookingResponse) {
	ev := BookingCreatedEvent{
		BookingID: resp.BookingID,
		ShowName:  resp.ShowName,
		UserEmail: resp.UserEmail,
		SeatID:    resp.SeatID,
		VenueArea: string(resp.VenueArea),
		CreatedAt: resp.CreatedAt.UTC().Format(time.RFC3339),
	}
	p.publish(ctx, "booking created", ev)
}

// BookingCancelled publishes a BookingCancelledEvent.
func (p *Publisher) BookingCancelled(ctx context.Context, bookingID, seatID uint64) {
	ev := BookingCancelledEvent{
		BookingID:   bookingID,
		SeatID:      seatID,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}
	p.publish(ctx, "booking cancelled", ev)
}

// publish dials the broker, declares the durable queue and sends one
// persistent JSON message. Errors are logged, never returned.
func (p *Publisher) publish(ctx context.Context, kind string, event interface{}) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed publishing %s: %v", kind, err)
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed publishing %s: %v", kind, err)
		return
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		bookingQueueName, // name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed publishing %s: %v", kind, err)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal %s event failed: %v", kind, err)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",               // default exchange
		bookingQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish %s failed: %v", kind, err)
	}
}
