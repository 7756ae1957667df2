package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/config"
	"github.com/todotask/backend/internal/database"
	"github.com/todotask/backend/internal/handler"
	"github.com/todotask/backend/internal/mailer"
	"github.com/todotask/backend/internal/middleware"
	"github.com/todotask/backend/internal/queue"
	"github.com/todotask/backend/internal/repository"
	"github.com/todotask/backend/internal/router"
	"github.com/todotask/backend/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepo(db)
	otps := repository.NewOTPRepo(db)
	tasks := repository.NewTaskRepo(db)
	activities := repository.NewActivityRepo(db)

	mail := mailer.New(cfg)
	if !mail.Enabled() {
		log.Println("mailer disabled: SMTP_FROM/SMTP_PASSWORD not set")
	}

	// Redis is optional: when unreachable, both middlewares become no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable: rate limiting and caching disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users, otps, activities, mail),
		Tasks:    handler.NewTaskHandler(tasks, activities),
		Export:   handler.NewExportHandler(cfg, tasks),
		Activity: handler.NewActivityHandler(activities),
		AI:       handler.NewAIHandler(cfg, tasks),
	}

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret, limiter, cache)

	// Background reminder pipeline: a sweep publishes per-user events,
	// the consumer mails them out.  Both outlive any single request and
	// stop with the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweep := service.NewReminderSweep(users, tasks, reminderInterval())
	go sweep.Run(ctx)
	go queue.StartReminderConsumer(mail)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil {
			log.Printf("http server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func reminderInterval() time.Duration {
	if v := os.Getenv("REMINDER_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 24 * time.Hour
}
