package handlers

import (
	"context"
	"time"

	"clip-cast/cmd/processor/parser"
	"clip-cast/cmd/processor/quota"
	"clip-cast/cmd/processor/renderer"
	"clip-cast/cmd/processor/services"
	"clip-cast/cmd/processor/summarizer"
	"clip-cast/config"
	"clip-cast/events"
	"clip-cast/models"
	"clip-cast/repositories"
)

// 영상 설명으로 저장할 본문 텍스트의 최대 길이(룬 기준)
const maxDescriptionRunes = 500

type EventHandlers struct {
	eventService *services.EventService
	summaryQuota *quota.SummaryQuotaLimiter
	aiLogRepo    *repositories.AILogRepository
}

func NewEventHandlers(eventService *services.EventService, summaryQuota *quota.SummaryQuotaLimiter, aiLogRepo *repositories.AILogRepository) *EventHandlers {
	return &EventHandlers{
		eventService: eventService,
		summaryQuota: summaryQuota,
		aiLogRepo:    aiLogRepo,
	}
}

// HandleVideoCreated 는 새 영상에 대해 렌더링 -> 본문 추출 -> 썸네일 추출 -> AI 요약을
// 수행하고 VideoEnriched 이벤트를 발행한다. DB 반영은 수집기 쪽 핸들러가 담당한다.
func (h *EventHandlers) HandleVideoCreated(ctx context.Context, event *events.VideoCreatedEvent) error {
	allowed, err := h.summaryQuota.WaitAndReserve(ctx)
	if err != nil {
		config.Logger.Errorf("failed to apply summary quota for %s: %v", event.Link, err)
		return err
	}
	if !allowed {
		config.Logger.Warnf("summary daily quota exceeded, skip enrichment for %s", event.Link)
		return nil
	}

	config.Logger.Infof("handling VideoCreated event for video: %s", event.Link)

	renderStart := time.Now()
	renderedHtml, err := renderer.RenderHTML(event.Link)
	if err != nil {
		config.Logger.Errorf("failed to render HTML for %s: %v", event.Link, err)
		return err
	}
	renderDurationMs := time.Since(renderStart).Milliseconds()

	// HTML에서 설명으로 쓸 plain text 추출
	page, err := parser.ExtractPageText(renderedHtml)
	if err != nil {
		config.Logger.Errorf("failed to parse HTML to plain text for %s: %v", event.Link, err)
		return err
	}

	// 썸네일 URL 추출
	thumbnailUrl, err := parser.ParseTopImageFromHTML(renderedHtml, event.Link)
	if err != nil {
		config.Logger.Errorf("failed to parse thumbnail for %s: %v", event.Link, err)
		return err
	}
	if thumbnailUrl == "" {
		config.Logger.Warnf("no thumbnail found for %s", event.Link)
	}

	// AI 요약
	summaryResult, reqLog, err := summarizer.SummarizeText(ctx, page.PlainTextContent)
	if err != nil || summaryResult.Error != nil {
		config.Logger.Errorf("failed to summarize %s: %v", event.Link, err)
		return err
	}

	config.Logger.Infof("AI summary completed - model:%s time:%s input:%d output:%d total:%d",
		reqLog.ModelName,
		reqLog.GeneratedAt,
		reqLog.TokenUsage.InputTokens,
		reqLog.TokenUsage.OutputTokens,
		reqLog.TokenUsage.TotalTokens,
	)

	// AI 호출 로그 저장. 실패해도 보강 파이프라인은 계속 진행한다.
	h.insertAILog(ctx, event.Link, reqLog)

	summary := models.AISummary{
		Categories:  summaryResult.Categories,
		Tags:        summaryResult.Tags,
		Summary:     summaryResult.Summary,
		ModelName:   reqLog.ModelName,
		GeneratedAt: reqLog.GeneratedAt,
	}

	// VideoEnriched 이벤트 발행 (수집기가 DB 저장)
	if err := h.eventService.PublishVideoEnriched(ctx, event.VideoID, event.Link, renderedHtml, renderDurationMs, truncateDescription(page.PlainTextContent), thumbnailUrl, summary); err != nil {
		config.Logger.Errorf("failed to publish VideoEnriched event: %v", err)
		return err
	}

	config.Logger.Infof("video enrichment completed for: %s", event.Link)
	return nil
}

func (h *EventHandlers) insertAILog(ctx context.Context, link string, reqLog *summarizer.LLMRequestLog) {
	if h.aiLogRepo == nil || reqLog == nil {
		return
	}

	log := models.AILog{
		ModelName:      reqLog.ModelName,
		ModelVersion:   reqLog.ModelVersion,
		InputTokens:    reqLog.TokenUsage.InputTokens,
		OutputTokens:   reqLog.TokenUsage.OutputTokens,
		TotalTokens:    reqLog.TokenUsage.TotalTokens,
		DurationMs:     reqLog.LatencyMs,
		InputPrompt:    reqLog.Prompt,
		OutputResponse: reqLog.Response,
		RequestedAt:    reqLog.GeneratedAt.Add(-time.Duration(reqLog.LatencyMs) * time.Millisecond),
		CompletedAt:    reqLog.GeneratedAt,
	}
	if _, err := h.aiLogRepo.Insert(ctx, log); err != nil {
		config.Logger.Errorf("failed to insert AI log for %s: %v", link, err)
	}
}

func truncateDescription(text string) string {
	runes := []rune(text)
	if len(runes) <= maxDescriptionRunes {
		return text
	}
	return string(runes[:maxDescriptionRunes])
}
