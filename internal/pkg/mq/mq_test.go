package mq

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestMessageCarrier(t *testing.T) {
	msg := kafka.Message{}
	c := &messageCarrier{msg: &msg}

	c.Set("traceparent", "00-abc-def-01")
	c.Set("baggage", "k=v")
	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
	assert.Equal(t, "k=v", c.Get("baggage"))
	assert.ElementsMatch(t, []string{"traceparent", "baggage"}, c.Keys())

	// 重复 Set 覆盖而不是追加
	c.Set("traceparent", "00-abc-def-02")
	assert.Equal(t, "00-abc-def-02", c.Get("traceparent"))
	assert.Len(t, msg.Headers, 2)

	assert.Empty(t, c.Get("missing"))
}
