// Package queue_publisher publishes import events to RabbitMQ.  Errors are
// logged and returned so callers can ignore failures without interrupting
// the request that triggered them.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/theatre-catalog/internal/queue"
)

// NewImportCompletedEvent stamps an event with a fresh batch id.
func NewImportCompletedEvent(family string, accepted, rejected int, at time.Time) q.ImportCompletedEvent {
	return q.ImportCompletedEvent{
		BatchID:     uuid.NewString(),
		Family:      family,
		Accepted:    accepted,
		Rejected:    rejected,
		CompletedAt: at.UTC().Format(time.RFC3339),
	}
}

// Publisher sends events to the default exchange, routed to the
// import.completed queue.  It dials per publish; import calls are rare
// enough that a long-lived channel is not worth the reconnect handling.
type Publisher struct {
	URL string
}

// PublishImportCompleted publishes ev as a persistent JSON message.
func (p *Publisher) PublishImportCompleted(ctx context.Context, ev q.ImportCompletedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		q.ImportCompletedQueue, // name
		true,                   // durable
		false,                  // autoDelete
		false,                  // exclusive
		false,                  // noWait
		nil,                    // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.BatchID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", q.ImportCompletedQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
