package notification

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
	"github.com/srgjo27/campus_event/internal/platform/rabbitmq"
)

type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

// QueueSender enqueues messages instead of delivering them, so a slow email
// gateway never holds up a request.
type QueueSender struct {
	pub Publisher
}

func NewQueueSender(pub Publisher) *QueueSender {
	return &QueueSender{pub: pub}
}

func (s *QueueSender) Send(ctx context.Context, msg Message) error {
	body, err := sonic.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode queued email: %w", err)
	}

	return s.pub.Publish(ctx, body)
}

type Source interface {
	Consume(ctx context.Context, handle func(ctx context.Context, body []byte, d rabbitmq.Delivery)) error
}

// QueueConsumer drains the notification queue into the email gateway.
type QueueConsumer struct {
	source Source
	sender Sender
	log    zerolog.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

func NewQueueConsumer(source Source, sender Sender, log zerolog.Logger) *QueueConsumer {
	return &QueueConsumer{
		source: source,
		sender: sender,
		log:    log.With().Str("component", "notification_consumer").Logger(),
		done:   make(chan struct{}),
	}
}

func (c *QueueConsumer) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go func() {
		defer close(c.done)

		if err := c.source.Consume(cctx, c.HandleDelivery); err != nil {
			c.log.Error().Err(err).Msg("consumer stopped")
			return
		}

		c.log.Info().Msg("consumer stopped by context")
	}()
}

func (c *QueueConsumer) Stop() {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
}

// HandleDelivery sends one queued message. Failed messages are dropped
// rather than requeued; the gateway is not retried.
func (c *QueueConsumer) HandleDelivery(ctx context.Context, body []byte, d rabbitmq.Delivery) {
	var msg Message
	if err := sonic.Unmarshal(body, &msg); err != nil {
		c.log.Error().Err(err).Str("kind", string(domain.KindDependencyFailure)).Msg("malformed queued email")
		_ = d.Nack(false, false)
		return
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		c.log.Error().Err(err).Str("kind", string(domain.KindDependencyFailure)).Str("to", msg.To).Msg("failed to deliver queued email")
		_ = d.Nack(false, false)
		return
	}

	_ = d.Ack(false)
}
