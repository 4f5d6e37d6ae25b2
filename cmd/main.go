package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/marketplace-service/internal/app"
	"github.com/SergeyBogomolovv/marketplace-service/internal/config"
	"github.com/SergeyBogomolovv/marketplace-service/internal/handler"
	"github.com/SergeyBogomolovv/marketplace-service/internal/middleware"
	"github.com/SergeyBogomolovv/marketplace-service/internal/postgres"
	"github.com/SergeyBogomolovv/marketplace-service/internal/publisher"
	"github.com/SergeyBogomolovv/marketplace-service/internal/redis"
	"github.com/SergeyBogomolovv/marketplace-service/internal/repo"
	"github.com/SergeyBogomolovv/marketplace-service/internal/service"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/cache"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/token"
	"github.com/SergeyBogomolovv/marketplace-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title                       Marketplace Service API
// @version                     1.0
// @description                 Документация HTTP API
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	rdb, err := redis.New(conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	pgRepo := repo.NewPostgresRepo(db)
	redisRepo := repo.NewRedisRepo(rdb)
	txManager := trm.NewManager(db)
	productCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL, cache.WithJanitorInterval(conf.Cache.JanitorInterval))
	tokens := token.NewManager(conf.JWT.Secret, conf.JWT.TTL)

	events := publisher.NewKafkaPublisher(conf.Kafka)
	defer events.Close()

	productService := service.NewProductService(logger, pgRepo, pgRepo, productCache)
	// Через productService, чтобы продажа сбрасывала кэш товара
	orderService := service.NewOrderService(logger, pgRepo, productService, pgRepo, events, redisRepo)
	userService := service.NewUserService(logger, pgRepo, redisRepo, events, tokens)
	reviewService := service.NewReviewService(logger, txManager, pgRepo, pgRepo, pgRepo)

	handler.RegisterMetrics()
	service.RegisterCacheMetrics(productCache.Stats)
	auth := middleware.Auth(tokens)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewUserHandler(logger, auth, userService),
		handler.NewProductHandler(logger, auth, productService),
		handler.NewOrderHandler(logger, auth, orderService),
		handler.NewReviewHandler(logger, auth, reviewService),
	)
	app.SetConsumers(
		handler.NewKafkaConsumer(logger, conf.Kafka, conf.Kafka.PaymentsTopic, handler.PaymentConfirmations(orderService)),
		handler.NewKafkaConsumer(logger, conf.Kafka, conf.Kafka.ReconciliationTopic, handler.ProductSoldReconciliation(productService)),
	)
	app.SetStarters(productCache, cacheWarmUpAdapter{svc: productService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case <-app.Done():
		logger.Error("application component failed, shutting down")
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
