// Package queue consumes re-parse requests from RabbitMQ and publishes
// their progress.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"
)

// UpdatesExchange receives a status message for every request, routed as
// candidate.<id>.
const UpdatesExchange = "parse_updates"

// Request asks for the candidate's stored resume to be parsed again.
type Request struct {
	CandidateID int64 `json:"candidate_id"`
}

// Update is published as a request moves through the consumer.
type Update struct {
	CandidateID int64     `json:"candidate_id"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

// Handler does the work for one request.
type Handler func(ctx context.Context, req Request) error

type Consumer struct {
	url     string
	queue   string
	handler Handler
	logger  *slog.Logger
	now     func() time.Time
}

func NewConsumer(url, queue string, handler Handler) *Consumer {
	return &Consumer{
		url:     url,
		queue:   queue,
		handler: handler,
		logger:  slog.Default().With("component", "amqp", "queue", queue),
		now:     time.Now,
	}
}

// Run consumes until ctx is cancelled or the connection drops.
func (c *Consumer) Run(ctx context.Context) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		c.queue, // queue name
		true,    // durable
		false,   // auto-delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.ExchangeDeclare(UpdatesExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	msgs, err := ch.Consume(
		c.queue, // queue name
		"",      // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	publish := func(u Update) {
		if err := publishUpdate(ch, u); err != nil {
			c.logger.Warn("failed to publish update", "candidate_id", u.CandidateID, "error", err)
		}
	}

	c.logger.Info("consumer started")
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("consumer stopping")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			if c.process(ctx, msg.Body, publish) {
				_ = msg.Ack(false)
			} else {
				_ = msg.Nack(false, false)
			}
		}
	}
}

// process handles one delivery and reports whether it succeeded. Failed
// messages are not requeued; the failure is visible on the updates exchange.
func (c *Consumer) process(ctx context.Context, body []byte, publish func(Update)) bool {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil || req.CandidateID <= 0 {
		c.logger.Warn("invalid parse request", "body", string(body), "error", err)
		publish(Update{CandidateID: req.CandidateID, Status: "failed", Message: "invalid request", Timestamp: c.now()})
		return false
	}

	publish(Update{CandidateID: req.CandidateID, Status: "processing", Message: "parse started", Timestamp: c.now()})
	if err := c.handler(ctx, req); err != nil {
		c.logger.Error("parse request failed", "candidate_id", req.CandidateID, "error", err)
		publish(Update{CandidateID: req.CandidateID, Status: "failed", Message: err.Error(), Timestamp: c.now()})
		return false
	}
	publish(Update{CandidateID: req.CandidateID, Status: "completed", Message: "parse completed", Timestamp: c.now()})
	return true
}

func publishUpdate(ch *amqp.Channel, u Update) error {
	body, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return ch.Publish(
		UpdatesExchange,
		fmt.Sprintf("candidate.%d", u.CandidateID),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
