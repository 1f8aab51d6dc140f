package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartConsumer connects to RabbitMQ, declares the booking.events
// queue and appends each event to logs/booking.log as a single line.
// It runs a reconnect loop with backoff and keeps going through
// broker restarts; failed messages are rejected without requeue so a
// poison message cannot wedge the loop.
func StartConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("booking-consumer: dial failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(bookingQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("booking-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// envelope covers both event shapes; CancelledAt distinguishes them.
type envelope struct {
	BookingID   uint64 `json:"booking_id"`
	ShowName    string `json:"show_name"`
	UserEmail   string `json:"user_email"`
	SeatID      uint64 `json:"seat_id"`
	VenueArea   string `json:"venue_area"`
	CreatedAt   string `json:"created_at"`
	CancelledAt string `json:"cancelled_at"`
}

func handleMessage(body []byte) error {
	var ev envelope
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "booking.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var line string
	if ev.CancelledAt != "" {
		line = fmt.Sprintf("[%s] Booking cancelled | booking_id=%d | seat_id=%d\n",
			ev.CancelledAt, ev.BookingID, ev.SeatID)
	} else {
		line = fmt.Sprintf("[%s] Booking created | booking_id=%d | show=%q | user=%q | seat_id=%d | area=%s\n",
			ev.CreatedAt, ev.BookingID, ev.ShowName, ev.UserEmail, ev.SeatID, ev.VenueArea)
	}
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
