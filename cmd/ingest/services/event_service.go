package services

import (
	"context"
	"fmt"

	"clip-cast/eventbus"
	"clip-cast/events"
	"clip-cast/models"
)

// EventService Ingest용 이벤트 발행 서비스
type EventService struct {
	bus eventbus.EventBus
}

// NewEventService 새로운 이벤트 서비스 생성
func NewEventService(bus eventbus.EventBus) *EventService {
	return &EventService{
		bus: bus,
	}
}

// PublishVideoCreated 영상 생성 이벤트 발행
func (s *EventService) PublishVideoCreated(ctx context.Context, video *models.Video) error {
	event := events.NewVideoCreatedEvent(
		video.ID.Hex(),
		video.ChannelID.Hex(),
		video.ChannelName,
		video.Title,
		video.Link,
	)
	evt, err := eventbus.NewJSONEvent("", event, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return s.bus.Publish(ctx, eventbus.TopicVideoEvents.Base(), evt)
}
