package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/volunteer-hub/volunteer-hub-backend/config"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/session"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/bootstrap"
	"github.com/volunteer-hub/volunteer-hub-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient)
		log.Println("Using Redis session store")
	} else {
		store = session.NewMemoryStore(cfg.Auth.MaxSessions)
		log.Println("Using in-memory session store")
	}

	sessions := session.NewManager(store, cfg.Auth.SessionTTL)

	if sweeper := session.NewSweeper(store); sweeper != nil {
		sweeper.Start()
		defer sweeper.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "volunteer-hub-backend",
		Version:       cfg.App.Version,
		DB:            pool,
		Redis:         redisClient,
		Sessions:      sessions,
		Authenticator: auth.NewAdminAuthenticator(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash),
		SecureCookies: cfg.Auth.SecureCookies,
		AllowOrigins:  splitOrigins(os.Getenv("CORS_ORIGINS")),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
