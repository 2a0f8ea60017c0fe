// internal/pkg/metrics/metrics.go
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// OrdersCreated 统计成功创建的订单数
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "barista_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	// OrderStatusTransitions 按目标状态统计状态流转次数
	OrderStatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barista_order_status_transitions_total",
		Help: "Total number of order status transitions, labeled by target status.",
	}, []string{"to_status"})

	// BlobUploads 按结果统计附件上传次数
	BlobUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barista_blob_uploads_total",
		Help: "Total number of attachment uploads, labeled by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(OrdersCreated, OrderStatusTransitions, BlobUploads)
}
