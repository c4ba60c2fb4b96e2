package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	processorHandlers "clip-cast/cmd/processor/handlers"
	"clip-cast/cmd/processor/quota"
	processorServices "clip-cast/cmd/processor/services"
	"clip-cast/config"
	"clip-cast/db"
	"clip-cast/eventbus"
	"clip-cast/events"
	"clip-cast/repositories"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.Processor.Logging)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화 (AI 호출 로그 저장용)
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
	eventService := processorServices.NewEventService(bus)
	quotaLimiter := quota.NewSummaryQuotaLimiterFromConfig(cfg)
	aiLogRepo := repositories.NewAILogRepository(db.Database())
	eventHandlers := processorHandlers.NewEventHandlers(eventService, quotaLimiter, aiLogRepo)

	// 같은 토픽을 Ingest와 서로 다른 컨슈머 그룹으로 구독해야 한다
	groupID := eventbus.GetGroupID() + "-processor"

	// 메인 구독 러너
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
			case events.VideoCreated:
				v, err := eventbus.DecodeJSON[events.VideoCreatedEvent](ev)
				if err != nil {
					return err
				}
				return eventHandlers.HandleVideoCreated(ctx, &v)
			default:
				// 알 수 없는 타입 또는 다른 서비스용 이벤트는 무시 (커밋)
				return nil
			}
		})
	}

	config.Logger.Info("starting processor service with eventbus...")

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

	// 종료 신호 대기
	<-sigChan
	config.Logger.Info("received shutdown signal, shutting down processor service...")

	cancel()
	wg.Wait()

	config.Logger.Info("processor service stopped")
}
