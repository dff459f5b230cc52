// Package events publishes task lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/domain/task"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/platform/telemetry"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// Compile-time check that Publisher implements ports.EventPublisher.
var _ ports.EventPublisher = (*Publisher)(nil)

// Message is the JSON value written for each event.
type Message struct {
	Type      string    `json:"type"`
	TaskID    string    `json:"taskId"`
	Owner     string    `json:"owner"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Config holds producer settings.
type Config struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Publisher writes one Kafka message per event, keyed by owner so a
// caller's events stay ordered within a partition.
type Publisher struct {
	writer  messageWriter
	brokers []string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewPublisher creates a Publisher backed by a kafka.Writer.
func NewPublisher(cfg Config, metrics *telemetry.Metrics, logger *slog.Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka publisher requires at least one broker")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka publisher requires a topic")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           cfg.WriteTimeout,
		// Publish runs on the request path; do not wait for a batch to fill.
		BatchSize:              1,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return newPublisher(writer, cfg.Brokers, metrics, logger), nil
}

func newPublisher(w messageWriter, brokers []string, metrics *telemetry.Metrics, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{writer: w, brokers: brokers, metrics: metrics, logger: logger}
}

// Publish encodes event as JSON and writes it synchronously.
func (p *Publisher) Publish(ctx context.Context, event task.Event) error {
	value, err := json.Marshal(Message{
		Type:      string(event.Type),
		TaskID:    event.TaskID,
		Owner:     event.Owner.String(),
		Status:    string(event.Status),
		Timestamp: event.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Owner.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	p.record(ctx, event.Type, err)
	if err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

func (p *Publisher) record(ctx context.Context, typ task.EventType, err error) {
	if p.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	p.metrics.EventPublishTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEventType.String(string(typ)),
		telemetry.AttrResult.String(result),
	))
}

// Name implements ports.HealthChecker.
func (p *Publisher) Name() string { return "kafka" }

// HealthCheck dials the first reachable broker.
func (p *Publisher) HealthCheck(ctx context.Context) error {
	var errs []error
	for _, broker := range p.brokers {
		conn, err := kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			return conn.Close()
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("no kafka broker reachable: %w", errors.Join(errs...))
}

// Close flushes pending writes and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
