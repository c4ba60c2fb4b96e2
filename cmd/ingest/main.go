package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	ingestHandlers "clip-cast/cmd/ingest/handlers"
	eventServices "clip-cast/cmd/ingest/services"
	"clip-cast/config"
	"clip-cast/db"
	"clip-cast/eventbus"
	"clip-cast/events"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Ingest.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		config.Logger.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}

	// EventBus 초기화 및 토픽 보장
	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicVideoEvents, 3); err != nil {
		config.Logger.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		config.Logger.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	// 서비스 초기화
	eventService := eventServices.NewEventService(bus)
	ingestService := NewIngestService(eventService)
	recoveryService := NewRecoveryService(eventService)
	eventHandlers := ingestHandlers.NewEventHandlers()

	// 같은 토픽을 Processor와 서로 다른 컨슈머 그룹으로 구독해야 한다
	groupID := eventbus.GetGroupID() + "-ingest"

	// VideoEnriched 구독 러너: Processor의 보강 결과를 DB에 반영한다.
	subscribeRunner := func() error {
		return bus.Subscribe(ctx, groupID, eventbus.TopicVideoEvents, func(ctx context.Context, ev eventbus.Event) error {
			// 이벤트 타입만 먼저 파싱 (BaseEvent.Type는 top-level에 있음)
			var peek struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(ev.Payload, &peek); err != nil {
				return err
			}
			switch events.EventType(peek.Type) {
			case events.VideoEnriched:
				v, err := eventbus.DecodeJSON[events.VideoEnrichedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandlers.HandleVideoEnriched(ctx, &v)
			default:
				// 알 수 없는 타입 또는 다른 서비스용 이벤트는 무시 (커밋)
				return nil
			}
		})
	}

	config.Logger.Info("starting ingest service with eventbus...")

	// Graceful shutdown 설정
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	// 메인 구독 시작
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := subscribeRunner(); err != nil && err != context.Canceled {
			config.Logger.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	// 피드 수집 스케줄러: 기동 직후 1회, 이후 Asia/Seoul 자정마다 수행
	wg.Add(1)
	go func() {
		defer wg.Done()
		runCollectionCycle(ctx, ingestService, recoveryService)

		loc, err := time.LoadLocation("Asia/Seoul")
		if err != nil {
			loc = time.Local
		}
		for {
			now := time.Now().In(loc)
			nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, loc)
			sleepDur := time.Until(nextMidnight)
			if sleepDur <= 0 {
				sleepDur = time.Minute // fallback
			}
			config.Logger.Infof("ingest sleeping until %s (%s)", nextMidnight.Format(time.RFC3339), loc)
			select {
			case <-time.After(sleepDur):
				runCollectionCycle(ctx, ingestService, recoveryService)
			case <-ctx.Done():
				return
			}
		}
	}()

	// 종료 신호 대기
	<-sigChan
	config.Logger.Info("received shutdown signal, shutting down ingest service...")

	cancel()
	wg.Wait()

	config.Logger.Info("ingest service stopped")
}

// runCollectionCycle은 피드 수집과 미보강 영상 복구를 한 주기로 수행한다.
func runCollectionCycle(ctx context.Context, ingestService *IngestService, recoveryService *RecoveryService) {
	if err := ingestService.RunFeedCollection(ctx); err != nil {
		config.Logger.Errorf("ingest feed collection error: %v", err)
	}
	if err := recoveryService.RequeueUnenriched(ctx); err != nil {
		config.Logger.Errorf("ingest recovery error: %v", err)
	}
}
