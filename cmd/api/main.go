package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/healthcare-blog/internal/api/http"
	"github.com/spec-kit/healthcare-blog/internal/api/http/handlers"
	"github.com/spec-kit/healthcare-blog/internal/auth"
	"github.com/spec-kit/healthcare-blog/internal/cache"
	"github.com/spec-kit/healthcare-blog/internal/config"
	"github.com/spec-kit/healthcare-blog/internal/events"
	"github.com/spec-kit/healthcare-blog/internal/observability"
	"github.com/spec-kit/healthcare-blog/internal/persistence"
	"github.com/spec-kit/healthcare-blog/internal/repository"
	"github.com/spec-kit/healthcare-blog/internal/service"
	"github.com/spec-kit/healthcare-blog/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	intakeRepo := repository.NewIntakeRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	postCache := cache.NewRedisPostCache(redis.Client, cfg.Posts.CacheTTL(), logger)

	authService := service.NewAuthService(*cfg, userRepo)
	postService := service.NewPostService(cfg.Posts, service.PostDependencies{
		PostRepo:   postRepo,
		Cache:      postCache,
		Dispatcher: dispatcher,
	})
	intakeService := service.NewIntakeService(intakeRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Posts:          handlers.NewPostsHandler(postService),
		Intake:         handlers.NewIntakeHandler(intakeService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
