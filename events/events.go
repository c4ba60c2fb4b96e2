package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType은 카프카로 오가는 도메인 이벤트 종류이다.
type EventType string

const (
	VideoCreated  EventType = "video.created"
	VideoEnriched EventType = "video.enriched"
)

// BaseEvent는 모든 도메인 이벤트가 공유하는 공통 필드이다.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// VideoCreatedEvent는 수집기가 새 영상을 저장한 직후 발행한다.
type VideoCreatedEvent struct {
	BaseEvent
	VideoID     string `json:"video_id"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	Title       string `json:"title"`
	Link        string `json:"link"`
}

// VideoEnrichedEvent는 프로세서가 보강을 마친 뒤 발행한다.
type VideoEnrichedEvent struct {
	BaseEvent
	VideoID          string   `json:"video_id"`
	Link             string   `json:"link"`
	RenderedHTML     string   `json:"rendered_html"`
	RenderDurationMs int64    `json:"render_duration_ms"`
	Description      string   `json:"description"`
	ThumbnailURL     string   `json:"thumbnail_url"`
	Categories       []string `json:"categories"`
	Tags             []string `json:"tags"`
	Summary          string   `json:"summary"`
	ModelName        string   `json:"model_name"`
}

func NewVideoCreatedEvent(videoID, channelID, channelName, title, link string) VideoCreatedEvent {
	return VideoCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      VideoCreated,
			Timestamp: time.Now(),
			Source:    "ingest",
			Version:   "1.0",
		},
		VideoID:     videoID,
		ChannelID:   channelID,
		ChannelName: channelName,
		Title:       title,
		Link:        link,
	}
}

func NewVideoEnrichedEvent(videoID, link, renderedHTML, description, thumbnailURL string, categories, tags []string, summary, modelName string) VideoEnrichedEvent {
	return VideoEnrichedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      VideoEnriched,
			Timestamp: time.Now(),
			Source:    "processor",
			Version:   "1.0",
		},
		VideoID:      videoID,
		Link:         link,
		RenderedHTML: renderedHTML,
		Description:  description,
		ThumbnailURL: thumbnailURL,
		Categories:   categories,
		Tags:         tags,
		Summary:      summary,
		ModelName:    modelName,
	}
}

// Serialize marshals an event for publishing.
func Serialize(event any) ([]byte, error) {
	return json.Marshal(event)
}

// DeserializeEvent는 type 필드를 먼저 확인한 뒤 구체 이벤트로 역직렬화한다.
func DeserializeEvent(data []byte) (any, error) {
	var base BaseEvent
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("failed to deserialize base event: %w", err)
	}

	switch base.Type {
	case VideoCreated:
		var e VideoCreatedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to deserialize %s event: %w", base.Type, err)
		}
		return e, nil
	case VideoEnriched:
		var e VideoEnrichedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to deserialize %s event: %w", base.Type, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown event type: %s", base.Type)
	}
}
