package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clip-cast/config"
	"clip-cast/db"
	"clip-cast/events"
	"clip-cast/models"
	"clip-cast/repositories"
)

// EventHandlers 수집(Ingest) 서버용 이벤트 핸들러 모음
// Processor는 보강까지의 계산만 담당하고, DB 업데이트는 Ingest가 담당한다.
type EventHandlers struct {
	videoRepo     *repositories.VideoRepository
	videoPageRepo *repositories.VideoPageRepository
}

// NewEventHandlers 새로운 이벤트 핸들러 생성
func NewEventHandlers() *EventHandlers {
	return &EventHandlers{
		videoRepo:     repositories.NewVideoRepository(db.Database()),
		videoPageRepo: repositories.NewVideoPageRepository(db.Database()),
	}
}

// HandleVideoEnriched Processor에서 발행한 VideoEnriched 이벤트를 받아
// 페이지 스냅샷과 보강 결과를 DB에 반영한다.
func (h *EventHandlers) HandleVideoEnriched(ctx context.Context, event *events.VideoEnrichedEvent) error {
	config.Logger.Infof("ingest handling VideoEnriched event for video: %s", event.Link)

	videoID, err := primitive.ObjectIDFromHex(event.VideoID)
	if err != nil {
		// ID가 깨진 이벤트는 재시도해도 복구되지 않으므로 커밋하고 버린다.
		config.Logger.Errorf("invalid video id in VideoEnriched event: %s", event.VideoID)
		return nil
	}

	video, err := h.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		config.Logger.Errorf("failed to get video %s: %v", event.VideoID, err)
		return err
	}

	// 렌더링된 페이지 스냅샷 저장
	if event.RenderedHTML != "" {
		if _, err := h.videoPageRepo.UpsertByVideo(ctx, &models.VideoPage{
			VideoID:         videoID,
			ChannelName:     video.ChannelName,
			VideoTitle:      video.Title,
			RawHTML:         event.RenderedHTML,
			FetchedAt:       event.Timestamp,
			FetchDurationMs: event.RenderDurationMs,
			HTMLSizeBytes:   int64(len(event.RenderedHTML)),
		}); err != nil {
			config.Logger.Errorf("failed to upsert video page for %s: %v", event.VideoID, err)
			return err
		}
	}

	summary := models.AISummary{
		Categories:  event.Categories,
		Tags:        event.Tags,
		Summary:     event.Summary,
		ModelName:   event.ModelName,
		GeneratedAt: time.Now(),
	}

	// 수집 단계에서 피드 썸네일을 이미 확보했다면 그것을 우선한다.
	thumbnailURL := event.ThumbnailURL
	if video.ThumbnailURL != "" {
		thumbnailURL = ""
	}

	if err := h.videoRepo.UpdateEnrichment(ctx, videoID, event.Description, thumbnailURL, summary); err != nil {
		config.Logger.Errorf("failed to update enrichment for %s: %v", event.VideoID, err)
		return err
	}

	config.Logger.Infof("ingest DB updated for enriched video: %s", event.Link)
	return nil
}
