// Package messaging consumes decoded chain events from NATS JetStream and
// feeds them to the aggregation engine one at a time, in stream order.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/adapter"
	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
)

// Config holds the configuration for the event subscriber
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Processor applies one chain event to the persisted state. An error return
// means the event was not applied and should be redelivered.
type Processor interface {
	Process(ctx context.Context, ev *domain.ChainEvent) error
}

// Subscriber defines the interface for the event subscriber
type Subscriber interface {
	// Run starts consuming until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the subscriber and cleans up resources
	Close()
}

type subscriber struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	processor Processor
	json      adapter.JSON
	config    Config
}

// NewSubscriber connects to NATS and creates a new event subscriber
func NewSubscriber(
	cfg Config,
	natsJS adapter.NatsJetStream,
	processor Processor,
	jsonAdapter adapter.JSON,
) (Subscriber, error) {
	opts := []nats.Option{
		nats.Name(fmt.Sprintf("%s-%s", cfg.ConnectionName, uuid.NewString())),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	s := &subscriber{
		nc:        nc,
		js:        js,
		processor: processor,
		json:      jsonAdapter,
		config:    cfg,
	}

	return s, nil
}

// Run starts the event subscriber
func (s *subscriber) Run(ctx context.Context) error {
	logger.Info("Starting event subscriber", zap.String("stream", s.config.StreamName), zap.String("consumer", s.config.ConsumerName))

	// The aggregation is order sensitive: a deposit applied before the
	// listing that created its market is silently dropped, and snapshots
	// taken out of block order corrupt the series. MaxAckPending 1 keeps
	// the server from handing out a second message before the first is
	// acked, so redeliveries cannot overtake fresh messages.
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWaitTimeout,
		MaxDeliver:    s.config.MaxDeliver,
		MaxAckPending: 1,
	}

	consumer, err := s.createConsumer(ctx, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	// Process messages strictly one at a time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event subscriber")
			return ctx.Err()
		case msg := <-msgChan:
			s.handleMessage(ctx, msg)
		}
	}
}

// createConsumer creates or updates the durable consumer, retrying with
// exponential backoff while the stream is still being provisioned
func (s *subscriber) createConsumer(ctx context.Context, cfg jetstream.ConsumerConfig) (adapter.Consumer, error) {
	var consumer adapter.Consumer
	op := func() error {
		var err error
		consumer, err = s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, cfg)
		if err != nil {
			logger.Warn("Consumer creation failed, retrying", zap.Error(err), zap.String("stream", s.config.StreamName))
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = time.Minute
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return consumer, nil
}

// handleMessage processes a single NATS message
func (s *subscriber) handleMessage(ctx context.Context, msg adapter.Message) {
	// Get metadata for logging
	metadata, _ := msg.Metadata()

	var event domain.ChainEvent
	if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	fields := []zap.Field{
		zap.String("type", event.Type),
		zap.String("action", string(event.Action())),
		zap.Uint64("height", event.Block.Height),
		zap.String("txHash", event.TxHash),
	}
	if metadata != nil {
		fields = append(fields, zap.Uint64("deliveryCount", metadata.NumDelivered))
	}
	logger.Info("Received event", fields...)

	if err := s.processor.Process(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to process event"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	// ACK message after successful processing
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the subscriber and cleans up resources
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}
