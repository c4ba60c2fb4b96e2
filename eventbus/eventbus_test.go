package eventbus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-cast/eventbus"
)

func TestTopicNames(t *testing.T) {
	topic := eventbus.NewTopic("clip-cast.video.events")

	assert.Equal(t, "clip-cast.video.events", topic.Base())
	assert.Equal(t, "clip-cast.video.events.dlq", topic.DLQ())

	retryTopics := topic.GetRetryTopics()
	require.Len(t, retryTopics, len(eventbus.RetryDelays))
	assert.Equal(t, "clip-cast.video.events.retry.10s", retryTopics[0])
	assert.Equal(t, "clip-cast.video.events.retry.30s", retryTopics[1])
	assert.Equal(t, "clip-cast.video.events.retry.1m0s", retryTopics[2])
	assert.Equal(t, "clip-cast.video.events.retry.5m0s", retryTopics[3])
	assert.Equal(t, "clip-cast.video.events.retry.10m0s", retryTopics[4])
}

func TestGetRetryTopic(t *testing.T) {
	topic := eventbus.NewTopic("clip-cast.video.events")

	name, err := topic.GetRetryTopic(1)
	require.NoError(t, err)
	assert.Equal(t, "clip-cast.video.events.retry.10s", name)

	name, err = topic.GetRetryTopic(len(eventbus.RetryDelays))
	require.NoError(t, err)
	assert.Equal(t, "clip-cast.video.events.retry.10m0s", name)

	_, err = topic.GetRetryTopic(0)
	assert.ErrorIs(t, err, eventbus.ErrMaxRetryExceeded)

	_, err = topic.GetRetryTopic(len(eventbus.RetryDelays) + 1)
	assert.ErrorIs(t, err, eventbus.ErrMaxRetryExceeded)
}

func TestParseRetryDelayFromTopicName(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  time.Duration
		ok    bool
	}{
		{"first retry", "clip-cast.video.events.retry.10s", 10 * time.Second, true},
		{"minute retry", "clip-cast.video.events.retry.1m0s", time.Minute, true},
		{"ten minutes", "clip-cast.video.events.retry.10m0s", 10 * time.Minute, true},
		{"base topic", "clip-cast.video.events", 0, false},
		{"dlq topic", "clip-cast.video.events.dlq", 0, false},
		{"garbage suffix", "clip-cast.video.events.retry.abc", 0, false},
		{"empty suffix", "clip-cast.video.events.retry.", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := eventbus.ParseRetryDelayFromTopicName(tt.topic)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeneratedRetryTopicsRoundTrip(t *testing.T) {
	// GetRetryTopics가 만든 이름은 ParseRetryDelayFromTopicName으로 복원 가능해야 한다.
	topic := eventbus.NewTopic("clip-cast.video.events")
	for i, name := range topic.GetRetryTopics() {
		delay, ok := eventbus.ParseRetryDelayFromTopicName(name)
		require.True(t, ok, "topic %s should parse", name)
		assert.Equal(t, eventbus.RetryDelays[i], delay)
	}
}

func TestNewJSONEvent(t *testing.T) {
	type payload struct {
		VideoID string `json:"video_id"`
	}

	evt, err := eventbus.NewJSONEvent("evt-1", payload{VideoID: "68b1"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "evt-1", evt.ID)
	assert.Equal(t, 0, evt.Retry)
	assert.Equal(t, 3, evt.MaxRetry)
	assert.JSONEq(t, `{"video_id":"68b1"}`, string(evt.Payload))

	decoded, err := eventbus.DecodeJSON[payload](evt)
	require.NoError(t, err)
	assert.Equal(t, "68b1", decoded.VideoID)
}

func TestNewJSONEventDefaults(t *testing.T) {
	evt, err := eventbus.NewJSONEvent("", map[string]string{"k": "v"}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID, "empty id should be generated")
	assert.Equal(t, len(eventbus.RetryDelays), evt.MaxRetry)

	evt, err = eventbus.NewJSONEvent("", map[string]string{"k": "v"}, 100)
	require.NoError(t, err)
	assert.Equal(t, len(eventbus.RetryDelays), evt.MaxRetry)
}

func TestDecodeJSONInvalidPayload(t *testing.T) {
	evt := eventbus.Event{ID: "evt-2", Payload: []byte(`{broken`)}
	_, err := eventbus.DecodeJSON[map[string]string](evt)
	assert.Error(t, err)
}
