package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	rediscache "github.com/srgjo27/campus_event/internal/adapter/cache/redis"
	"github.com/srgjo27/campus_event/internal/adapter/handler"
	"github.com/srgjo27/campus_event/internal/adapter/notification"
	"github.com/srgjo27/campus_event/internal/adapter/repository/gormrepo"
	"github.com/srgjo27/campus_event/internal/adapter/repository/postgres"
	"github.com/srgjo27/campus_event/internal/adapter/storage/local"
	"github.com/srgjo27/campus_event/internal/core/ports"
	"github.com/srgjo27/campus_event/internal/core/services"
	"github.com/srgjo27/campus_event/internal/platform/auth"
	"github.com/srgjo27/campus_event/internal/platform/config"
	"github.com/srgjo27/campus_event/internal/platform/database"
	"github.com/srgjo27/campus_event/internal/platform/logger"
	"github.com/srgjo27/campus_event/internal/platform/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", true)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db after retries")
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	gormDB, err := database.NewGorm(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open gorm")
	}

	eventRepo := postgres.NewEventRepository(db)
	regRepo := postgres.NewRegistrationRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	userRepo := gormrepo.NewUserRepository(gormDB)
	blogRepo := gormrepo.NewBlogRepository(gormDB)
	categoryRepo := gormrepo.NewCategoryRepository(gormDB)

	var cache ports.EventCache
	if cfg.Redis.Addr != "" {
		redisClient := connectRedis(ctx, cfg.Redis, log)
		defer redisClient.Close()
		cache = rediscache.NewEventCache(redisClient, cfg.Redis.EventTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, event cache disabled")
	}

	var sender notification.Sender = notification.NewEmailClient(cfg.Email.APIURL, cfg.Email.APIKey, cfg.Email.Timeout)
	if cfg.Email.APIURL == "" {
		log.Warn().Msg("SMTP_API_URL not set, emails will fail and be logged")
	}

	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}
		defer mq.Close()

		consumer := notification.NewQueueConsumer(mq, sender, log)
		consumer.Start(ctx)
		defer consumer.Stop()

		sender = notification.NewQueueSender(mq)
	}

	notifier := notification.NewNotifier(sender, cfg.FrontendURL, log)
	files := local.NewFileStore(cfg.Upload.Dir, cfg.Upload.URLPrefix, local.DefaultImageOptions, log)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.ResetTokenTTL)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	h := handler.NewHandler(handler.Services{
		Auth:          services.NewAuthService(userRepo, tokens, hasher, notifier, log),
		Events:        services.NewEventService(eventRepo, categoryRepo, cache, log),
		Registrations: services.NewRegistrationService(regRepo, cache, log),
		Payments:      services.NewPaymentService(regRepo, files, notifier, log),
		Reports:       services.NewReportService(reportRepo, log),
		Users:         services.NewUserService(userRepo, regRepo, hasher, log),
		Blogs:         services.NewBlogService(blogRepo, categoryRepo, log),
		Categories:    services.NewCategoryService(categoryRepo),
	}, log)

	router := handler.NewRouter(handler.RouterConfig{
		GinMode:   cfg.HTTP.GinMode,
		UploadDir: cfg.Upload.Dir,
		UploadURL: cfg.Upload.URLPrefix,
	}, h, tokens, log)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server startup failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server exiting")
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) *redis.Client {
	log.Info().Str("addr", cfg.Addr).Msg("connecting to redis")

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().Msg("redis connected")

	return client
}
