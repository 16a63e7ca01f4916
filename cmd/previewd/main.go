package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-notify-client/internal/config"
	jwtinfra "github.com/go-notify-client/internal/infrastructure/jwt"
	"github.com/go-notify-client/internal/infrastructure/memory"
	"github.com/go-notify-client/internal/pkg/logger"
	transporthttp "github.com/go-notify-client/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	lg := logger.New(cfg.AppEnv, cfg.LogLevel)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	store := memory.NewStore(nil)
	if cfg.PreviewSeed {
		uid := cfg.NotifyUserID
		if uid == "" {
			uid = "demo"
		}
		if err := store.Seed(context.Background(), uid); err != nil {
			log.Fatalf("seed preview data: %v", err)
		}
		lg.Info("seeded preview data", slog.String("user_id", uid))
	}

	router, limiter := transporthttp.NewRouter(cfg, &transporthttp.Deps{
		Backend:     store,
		JWTProvider: jwtProvider,
	})
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		lg.Info("preview backend starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down preview backend")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	lg.Info("preview backend stopped")
}
