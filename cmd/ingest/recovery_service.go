package main

import (
	"context"
	"time"

	eventServices "clip-cast/cmd/ingest/services"
	"clip-cast/config"
	"clip-cast/db"
	"clip-cast/repositories"
)

// RecoveryService 는 보강이 누락된 영상들에 대해 VideoCreated 이벤트를 재발행하는 책임을 가진다.
type RecoveryService struct {
	videoRepo    *repositories.VideoRepository
	eventService *eventServices.EventService
}

// NewRecoveryService 새로운 복구 서비스를 생성한다.
func NewRecoveryService(eventService *eventServices.EventService) *RecoveryService {
	return &RecoveryService{
		videoRepo:    repositories.NewVideoRepository(db.Database()),
		eventService: eventService,
	}
}

// RequeueUnenriched는 생성된 지 일정 시간이 지났지만 아직 보강되지 않은 영상을 찾아
// VideoCreated 이벤트를 다시 발행한다. DLQ까지 간 이벤트도 다음 주기에 여기서 살아난다.
func (s *RecoveryService) RequeueUnenriched(ctx context.Context) error {
	cfg := config.GetConfig().Ingest

	grace := time.Duration(cfg.RecoveryGraceMinutes) * time.Minute
	if grace <= 0 {
		grace = 30 * time.Minute
	}
	limit := int64(cfg.RecoveryBatchSize)
	if limit <= 0 {
		limit = 20
	}

	videos, err := s.videoRepo.FindUnenriched(ctx, grace, limit)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		return nil
	}

	config.Logger.Infof("requeueing %d unenriched videos", len(videos))
	for _, v := range videos {
		if err := s.eventService.PublishVideoCreated(ctx, &v); err != nil {
			config.Logger.Errorf("failed to requeue video %s: %v", v.ID.Hex(), err)
		}
	}
	return nil
}

// todo: rest api 엔드포인트와 연결해서 특정 영상에 대해 재처리할 수 있도록 하기
// 예: POST /recovery/videos/{id} - 해당 영상에 대해 재처리 이벤트 재발행
