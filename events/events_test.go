package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip-cast/events"
)

func TestSerializeDeserializeVideoCreated(t *testing.T) {
	event := events.NewVideoCreatedEvent("68b1", "68b2", "CodeCast", "Go 제네릭 정리", "https://clipcast.dev/v/abc")

	data, err := events.Serialize(event)
	require.NoError(t, err)

	decoded, err := events.DeserializeEvent(data)
	require.NoError(t, err)

	created, ok := decoded.(events.VideoCreatedEvent)
	require.True(t, ok, "expected VideoCreatedEvent, got %T", decoded)
	assert.Equal(t, events.VideoCreated, created.Type)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ingest", created.Source)
	assert.Equal(t, "68b1", created.VideoID)
	assert.Equal(t, "CodeCast", created.ChannelName)
	assert.Equal(t, "https://clipcast.dev/v/abc", created.Link)
	assert.False(t, created.Timestamp.IsZero())
}

func TestSerializeDeserializeVideoEnriched(t *testing.T) {
	event := events.NewVideoEnrichedEvent(
		"68b1",
		"https://clipcast.dev/v/abc",
		"<html><body>content</body></html>",
		"설명 텍스트",
		"https://img.clipcast.dev/t/abc.jpg",
		[]string{"Backend"},
		[]string{"go", "generics"},
		"요약",
		"gemini-2.5-flash",
	)

	data, err := events.Serialize(event)
	require.NoError(t, err)

	decoded, err := events.DeserializeEvent(data)
	require.NoError(t, err)

	enriched, ok := decoded.(events.VideoEnrichedEvent)
	require.True(t, ok, "expected VideoEnrichedEvent, got %T", decoded)
	assert.Equal(t, events.VideoEnriched, enriched.Type)
	assert.Equal(t, "processor", enriched.Source)
	assert.Equal(t, []string{"go", "generics"}, enriched.Tags)
	assert.Equal(t, "gemini-2.5-flash", enriched.ModelName)
}

func TestDeserializeUnknownType(t *testing.T) {
	_, err := events.DeserializeEvent([]byte(`{"type":"video.deleted","timestamp":"2025-09-01T00:00:00Z"}`))
	assert.ErrorContains(t, err, "unknown event type")
}

func TestDeserializeInvalidJSON(t *testing.T) {
	_, err := events.DeserializeEvent([]byte(`{not-json`))
	assert.Error(t, err)
}
