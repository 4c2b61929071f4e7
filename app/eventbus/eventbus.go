// Package eventbus provides the NATS JetStream-backed message bus the engine
// publishes league events on.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	wnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fairway-collective/league-engine/app/events"
	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// EventBus publishes JSON payloads to league subjects and hands out a
// subscriber for the message router.
type EventBus interface {
	Publish(ctx context.Context, subject string, payload any) error
	Subscriber() message.Subscriber
	Close() error
}

type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	natsConn   *nc.Conn
	logger     *slog.Logger
}

// NewEventBus connects to NATS, ensures the league stream exists, and wires
// watermill publisher/subscriber pairs over JetStream.
func NewEventBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     events.StreamName,
		Subjects: []string{events.StreamName + ".>"},
	})
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to ensure stream %q: %w", events.StreamName, err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &wnats.NATSMarshaler{}

	publisher, err := wnats.NewPublisher(wnats.PublisherConfig{
		URL:       natsURL,
		Marshaler: marshaler,
		NatsOptions: []nc.Option{
			nc.RetryOnFailedConnect(true),
		},
	}, watermillLogger)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	subscriber, err := wnats.NewSubscriber(wnats.SubscriberConfig{
		URL:         natsURL,
		Unmarshaler: marshaler,
		NatsOptions: []nc.Option{
			nc.RetryOnFailedConnect(true),
		},
	}, watermillLogger)
	if err != nil {
		publisher.Close()
		natsConn.Close()
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &eventBus{
		publisher:  publisher,
		subscriber: subscriber,
		natsConn:   natsConn,
		logger:     logger,
	}, nil
}

func (eb *eventBus) Publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	if id := attr.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	eb.logger.DebugContext(ctx, "Publishing event",
		attr.String("subject", subject),
		attr.Int("payload_bytes", len(data)),
	)

	if err := eb.publisher.Publish(subject, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

func (eb *eventBus) Subscriber() message.Subscriber {
	return eb.subscriber
}

func (eb *eventBus) Close() error {
	var firstErr error
	if err := eb.publisher.Close(); err != nil {
		firstErr = err
	}
	if err := eb.subscriber.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	eb.natsConn.Close()
	return firstErr
}
