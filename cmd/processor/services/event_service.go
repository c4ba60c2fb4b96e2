package services

import (
	"context"
	"fmt"

	"clip-cast/eventbus"
	"clip-cast/events"
	"clip-cast/models"
)

// EventService Processor용 이벤트 발행 서비스
type EventService struct {
	bus eventbus.EventBus
}

// NewEventService 새로운 이벤트 서비스 생성
func NewEventService(bus eventbus.EventBus) *EventService {
	return &EventService{
		bus: bus,
	}
}

// PublishVideoEnriched 보강 완료 이벤트 발행 (DB 반영은 수집기가 담당한다)
func (s *EventService) PublishVideoEnriched(ctx context.Context, videoID, link, renderedHTML string, renderDurationMs int64, description, thumbnailURL string, summary models.AISummary) error {
	event := events.NewVideoEnrichedEvent(
		videoID,
		link,
		renderedHTML,
		description,
		thumbnailURL,
		summary.Categories,
		summary.Tags,
		summary.Summary,
		summary.ModelName,
	)
	event.RenderDurationMs = renderDurationMs

	evt, err := eventbus.NewJSONEvent("", event, 0)
	if err != nil {
		return fmt.Errorf("failed to build event: %w", err)
	}
	return s.bus.Publish(ctx, eventbus.TopicVideoEvents.Base(), evt)
}
