// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

var base zerolog.Logger

// Init 初始化全局日志器，所有日志都会带上服务名字段。
// 需要在进程启动时调用一次。
func Init(serviceName string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	base = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
	// 同步替换 zerolog 的包级全局日志器，方便散落的 log.XXX 调用
	log.Logger = base
}

// L 返回全局日志器
func L() *zerolog.Logger {
	return &base
}

// Ctx 返回一个绑定了链路追踪信息的日志器。
// 如果 ctx 中有有效的 Span，日志会自动带上 trace_id，方便与 Jaeger 关联排查。
func Ctx(ctx context.Context) *zerolog.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return &base
	}
	l := base.With().Str("trace_id", sc.TraceID().String()).Logger()
	return &l
}
