// cmd/tracking-gateway/main.go
package main

import (
	"context"
	"net/http"
	"strings"

	"barista/internal/pkg/bootstrap"
	"barista/internal/pkg/logger"
	"barista/internal/pkg/mq"
	"barista/internal/service/tracking"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName   = "tracking-gateway"
	consumerGroup = "tracking-gateway-group"
)

// main 组装追踪网关：消费订单事件主题，把事件实时推送给订阅了
// 某个订单的 WebSocket 客户端。
func main() {
	bootstrap.Init()
	logger.Init(serviceName)
	cfg := bootstrap.GetCurrentConfig()

	reader := mq.NewKafkaReader(
		strings.Split(cfg.Infra.Kafka.Brokers, ","),
		cfg.Infra.Kafka.OrderEventsTopic,
		consumerGroup,
	)

	hub := tracking.NewHub()
	consumer := tracking.NewEventConsumer(reader, hub)

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	go consumer.Run(ctx)

	bootstrap.StartService(bootstrap.AppInfo{
		ServiceName: serviceName,
		Port:        8088,
		RegisterHandlers: func(appCtx bootstrap.AppCtx) {
			appCtx.Mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
			appCtx.Mux.Handle("/metrics", promhttp.Handler())
			appCtx.Mux.HandleFunc("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
				tracking.ServeWS(hub, w, r)
			})
		},
		OnShutdown: func(shutdownCtx context.Context) {
			cancel()
			if err := reader.Close(); err != nil {
				logger.L().Error().Err(err).Msg("error closing kafka reader")
			}
		},
	})
}
