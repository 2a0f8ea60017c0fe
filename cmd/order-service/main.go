// cmd/order-service/main.go
package main

import (
	"context"
	"strings"
	"time"

	"barista/internal/pkg/bootstrap"
	"barista/internal/pkg/logger"
	"barista/internal/pkg/mq"
	"barista/internal/pkg/redis"
	catalogapp "barista/internal/service/catalog/application"
	cataloginfra "barista/internal/service/catalog/infrastructure"
	cataloghttp "barista/internal/service/catalog/interfaces"
	orderapp "barista/internal/service/order/application"
	orderinfra "barista/internal/service/order/infrastructure"
	"barista/internal/service/order/infrastructure/adapter"
	orderhttp "barista/internal/service/order/interfaces"

	"go.opentelemetry.io/otel"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	serviceName  = "order-service"
	menuCacheTTL = 5 * time.Minute
)

// main 函数是应用的"组装根" (Composition Root)
// 它的核心职责是：创建并组装所有依赖项，然后启动应用。
func main() {
	bootstrap.Init()
	logger.Init(serviceName)
	cfg := bootstrap.GetCurrentConfig()

	// 1. 基础设施连接
	db, err := gorm.Open(mysql.Open(cfg.Infra.Mysql.DSN), &gorm.Config{})
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to connect to mysql")
	}
	if err := db.AutoMigrate(
		&cataloginfra.MenuModel{},
		&orderinfra.OrderModel{},
		&orderinfra.OrderItemModel{},
	); err != nil {
		logger.L().Fatal().Err(err).Msg("failed to migrate database schema")
	}

	redisClient, err := redis.NewClient(cfg.Infra.Redis.Addrs)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to initialize redis client")
	}

	kafkaWriter := mq.NewKafkaWriter(strings.Split(cfg.Infra.Kafka.Brokers, ","), cfg.Infra.Kafka.OrderEventsTopic)

	blobStore, err := adapter.NewBlobMinioAdapter(
		cfg.Infra.Minio.Endpoint,
		cfg.Infra.Minio.AccessKey,
		cfg.Infra.Minio.SecretKey,
		cfg.Infra.Minio.Bucket,
		cfg.Infra.Minio.UseSSL,
	)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("failed to initialize blob store")
	}

	tracer := otel.Tracer(serviceName)

	// 2. 组装 catalog 服务
	menuRepo := cataloginfra.NewGormMenuRepository(db, redisClient, menuCacheTTL)
	catalogService := catalogapp.NewCatalogApplicationService(menuRepo, tracer)

	// 3. 组装 order 服务，目录走进程内适配器
	orderRepo := orderinfra.NewGormOrderRepository(db)
	eventProducer := adapter.NewOrderEventKafkaAdapter(kafkaWriter)
	orderService := orderapp.NewOrderApplicationService(
		orderRepo,
		adapter.NewCatalogLocalAdapter(catalogService),
		blobStore,
		eventProducer,
		tracer,
	)

	// 4. 启动
	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        8080,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			orderhttp.NewOrderHandler(orderService).RegisterRoutes(appCtx.Mux)
			cataloghttp.NewCatalogHandler(catalogService).RegisterRoutes(appCtx.Mux)
		},
		OnShutdown: func(ctx context.Context) {
			if err := eventProducer.Close(); err != nil {
				logger.L().Error().Err(err).Msg("error closing kafka writer")
			}
			if err := redisClient.Close(); err != nil {
				logger.L().Error().Err(err).Msg("error closing redis client")
			}
		},
	})
}
