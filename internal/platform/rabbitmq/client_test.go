package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func collect(bodies *[]string) func(context.Context, []byte, Delivery) {
	return func(_ context.Context, body []byte, _ Delivery) {
		*bodies = append(*bodies, string(body))
	}
}

func TestDrain_ClosedChannelIsError(t *testing.T) {
	msgs := make(chan amqp.Delivery, 2)
	msgs <- amqp.Delivery{Body: []byte("a")}
	msgs <- amqp.Delivery{Body: []byte("b")}
	close(msgs)

	var got []string
	err := drain(context.Background(), msgs, collect(&got))

	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDrain_CancelledContextIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []string
	err := drain(ctx, make(chan amqp.Delivery), collect(&got))

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestDrain_CloseAfterCancelIsClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgs := make(chan amqp.Delivery)
	close(msgs)

	var got []string
	err := drain(ctx, msgs, collect(&got))

	assert.NoError(t, err)
}
