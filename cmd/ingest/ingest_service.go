package main

import (
	"context"

	"clip-cast/cmd/ingest/feeder"
	eventServices "clip-cast/cmd/ingest/services"
	"clip-cast/config"
	"clip-cast/db"
	"clip-cast/models"
	"clip-cast/repositories"
)

// IngestService 채널 업로드 피드 수집 서비스
type IngestService struct {
	eventService *eventServices.EventService
	channelRepo  *repositories.ChannelRepository
	videoRepo    *repositories.VideoRepository
}

// NewIngestService 새로운 수집 서비스 생성
func NewIngestService(eventService *eventServices.EventService) *IngestService {
	return &IngestService{
		eventService: eventService,
		channelRepo:  repositories.NewChannelRepository(db.Database()),
		videoRepo:    repositories.NewVideoRepository(db.Database()),
	}
}

// RunFeedCollection 업로드 피드 수집 및 새 영상 생성
func (s *IngestService) RunFeedCollection(ctx context.Context) error {
	cfgChannels := config.GetConfig().Channels
	if len(cfgChannels) == 0 {
		config.Logger.Warn("no channels configured in config.yaml (key: channels)")
		return nil
	}

	// 채널 정보 업데이트
	for _, c := range cfgChannels {
		mc := &models.Channel{
			Name:    c.Name,
			URL:     c.URL,
			FeedURL: c.FeedURL,
			ChannelType: func() string {
				if c.ChannelType != "" {
					return c.ChannelType
				}
				return "creator"
			}(),
		}
		if _, err := s.channelRepo.UpsertByFeedURL(ctx, mc); err != nil {
			config.Logger.Errorf("failed to upsert channel %s: %v", c.Name, err)
		}
	}

	// 새 영상 수집 및 이벤트 발행
	for _, channel := range cfgChannels {
		if err := s.collectVideosFromChannel(ctx, channel); err != nil {
			config.Logger.Errorf("failed to collect videos from channel %s: %v", channel.Name, err)
		}
	}

	return nil
}

// collectVideosFromChannel 특정 채널에서 새 영상 수집
func (s *IngestService) collectVideosFromChannel(ctx context.Context, channel config.ChannelSource) error {
	// 채널 문서 조회
	channelDoc, err := s.channelRepo.GetByFeedURL(ctx, channel.FeedURL)
	if err != nil {
		return err
	}

	// 업로드 피드 가져오기
	feed, err := feeder.FetchVideoFeeds(channel.FeedURL, config.GetConfig().Ingest.ChannelFetchBatchSize)
	if err != nil {
		return err
	}

	for _, item := range feed {
		// 영상 존재 여부 확인
		exists, err := s.videoRepo.IsExistByLink(ctx, item.Link)
		if err != nil {
			config.Logger.Errorf("failed to check video existence (link=%s): %v", item.Link, err)
			continue
		}
		if exists {
			continue
		}

		// 새 영상 생성
		v := &models.Video{
			ChannelID:       channelDoc.ID,
			ChannelName:     channelDoc.Name,
			Title:           item.Title,
			Link:            item.Link,
			DurationSeconds: item.DurationSeconds,
			ThumbnailURL:    item.ThumbnailURL,
		}
		if !item.PublishedAt.IsZero() {
			v.PublishedAt = item.PublishedAt
		}
		if v.ThumbnailURL != "" {
			v.Status.ThumbnailParsed = true
		}

		id, err := s.videoRepo.Insert(ctx, v)
		if err != nil {
			config.Logger.Errorf("failed to insert video (channel=%s, title=%s): %v", channel.Name, item.Title, err)
			continue
		}
		v.ID = id

		// 영상 생성 이벤트 발행
		if err := s.eventService.PublishVideoCreated(ctx, v); err != nil {
			config.Logger.Errorf("failed to publish VideoCreated event: %v", err)
		} else {
			config.Logger.Infof("published VideoCreated event for: %s (ID: %s)", item.Title, v.ID.Hex())
		}
	}

	return nil
}
