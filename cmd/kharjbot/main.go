package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	tele "gopkg.in/telebot.v4"

	"github.com/peymanh/kharjbot/internal/bot"
	"github.com/peymanh/kharjbot/internal/charts"
	"github.com/peymanh/kharjbot/internal/config"
	"github.com/peymanh/kharjbot/internal/database"
	"github.com/peymanh/kharjbot/internal/expense"
	"github.com/peymanh/kharjbot/internal/health"
	"github.com/peymanh/kharjbot/internal/logger"
	"github.com/peymanh/kharjbot/internal/scheduler"
	"github.com/peymanh/kharjbot/internal/session"
	"github.com/peymanh/kharjbot/internal/storage"
	"github.com/peymanh/kharjbot/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("kharjbot: %v", err)
	}
}

func run() error {
	// .env is optional; real deployments inject env directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.InitLogger(logger.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Profile: cfg.Logging.Profile,
	}); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if err := database.RunMigrations(cfg.Database); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	store := storage.New(db)
	sessions := session.NewMemoryManager()
	monitor := expense.NewMonitor(store, time.Now)
	renderer := charts.NewRenderer()

	handlers := bot.New(store, sessions, monitor, renderer)
	registry := telegram.NewRegistry()
	routes := handlers.Register(registry)

	httpSrv := health.NewServer(cfg.HTTP.Port)
	go httpSrv.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var recap *scheduler.Recap
	err = telegram.RunTelegram(ctx, telegram.RunOptions{
		Config:      cfg,
		Registry:    registry,
		Middlewares: telegram.DefaultMiddlewares(cfg, sessions, nil),
		Routes:      routes,
		OnStart: func(_ context.Context, b *tele.Bot) error {
			if cfg.Scheduler.RecapEnabled {
				recap = scheduler.NewRecap(store, b)
				if err := recap.Start(); err != nil {
					return fmt.Errorf("start recap scheduler: %w", err)
				}
			}
			return nil
		},
	})

	if recap != nil {
		recap.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := httpSrv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.L.LogAttrs(context.Background(), slog.LevelWarn, "health server shutdown failed",
			slog.String("component", "http"),
			slog.String("event", "shutdown"),
			slog.String("err", shutdownErr.Error()),
		)
	}

	if err != nil {
		return fmt.Errorf("run telegram: %w", err)
	}
	logger.L.LogAttrs(context.Background(), slog.LevelInfo, "shutdown complete",
		slog.String("component", "app"),
		slog.String("event", "shutdown"),
	)
	return nil
}
