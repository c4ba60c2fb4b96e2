package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"clip-cast/cmd/api/router"
	"clip-cast/config"
	"clip-cast/db"
	_ "clip-cast/docs" // swag will generate this package
)

// @title           ClipCast API
// @version         1.0
// @description     API for browsing enriched videos, channels and comments
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	config.InitLogger(cfg.API.Logging)

	if err := db.Init(context.Background()); err != nil {
		config.Logger.Fatalf("MongoDB 초기화 실패: %v", err)
	}

	r := router.New()

	origins := cfg.API.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	addr := cfg.API.Addr
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:    addr,
		Handler: corsHandler,
	}

	go func() {
		config.Logger.Infof("API 서버 시작: %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			config.Logger.Fatalf("API 서버 오류: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	config.Logger.Info("종료 신호 수신. API 서버를 정리합니다.")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Errorf("API 서버 종료 실패: %v", err)
	}
}
