package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_Subscribe_AlreadyStarted(t *testing.T) {
	c := &Consumer{
		started: true,
	}

	err := c.Subscribe()
	assert.NoError(t, err)
}

func TestConsumer_Close(t *testing.T) {
	t.Run("nil consumer", func(t *testing.T) {
		var c *Consumer
		err := c.Close()
		assert.NoError(t, err)
	})

	t.Run("consumer with nil client", func(t *testing.T) {
		c := &Consumer{}
		err := c.Close()
		assert.NoError(t, err)
	})
}

func TestClickEventHandler(t *testing.T) {
	t.Run("handler processes the event", func(t *testing.T) {
		processed := false
		handler := ClickEventHandler(func(ctx context.Context, msg *ClickEventMessage) error {
			processed = true
			assert.Equal(t, "abcd1234", msg.Alias)
			return nil
		})

		err := handler(context.Background(), &ClickEventMessage{
			Alias:      "abcd1234",
			ClientIP:   "203.0.113.7",
			UserAgent:  "test-agent",
			AccessTime: time.Now(),
		})

		assert.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("handler error propagates", func(t *testing.T) {
		handler := ClickEventHandler(func(ctx context.Context, msg *ClickEventMessage) error {
			return assert.AnError
		})

		err := handler(context.Background(), &ClickEventMessage{Alias: "abcd1234"})
		assert.Error(t, err)
	})
}
