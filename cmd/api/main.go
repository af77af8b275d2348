package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emrekoca/recipebox/internal/api"
	"github.com/emrekoca/recipebox/internal/auth"
	"github.com/emrekoca/recipebox/internal/config"
	"github.com/emrekoca/recipebox/internal/db"
	"github.com/emrekoca/recipebox/internal/logger"
	"github.com/emrekoca/recipebox/internal/metrics"
	"github.com/emrekoca/recipebox/internal/repository/postgres"
	"github.com/emrekoca/recipebox/internal/services"
	"github.com/emrekoca/recipebox/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	userSvc := services.NewUserService(repos.Users, repos.AuditLogs, tm, wp)
	recipeSvc := services.NewRecipeService(repos.Recipes, repos.AuditLogs, wp)

	metrics.Init()
	r := api.NewRouter(cfg, tm, userSvc, recipeSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
