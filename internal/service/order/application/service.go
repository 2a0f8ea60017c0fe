// internal/service/order/application/service.go
package application

import (
	"context"
	"time"

	"barista/internal/pkg/logger"
	"barista/internal/pkg/metrics"
	catalogdomain "barista/internal/service/catalog/domain"
	"barista/internal/service/order/domain"
	"barista/internal/service/order/domain/port"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OrderApplicationService 负责订单用例的业务流程编排。
// 所有 I/O 都通过出站端口走外部协作方，核心计算（组装、算总价、状态流转）
// 全部发生在内存中的聚合上。
type OrderApplicationService struct {
	orderRepo domain.OrderRepository
	catalog   port.Catalog
	blobStore port.BlobStore
	events    port.OrderEventProducer
	tracer    trace.Tracer
}

func NewOrderApplicationService(
	orderRepo domain.OrderRepository,
	catalog port.Catalog,
	blobStore port.BlobStore,
	events port.OrderEventProducer,
	tracer trace.Tracer,
) *OrderApplicationService {
	return &OrderApplicationService{
		orderRepo: orderRepo,
		catalog:   catalog,
		blobStore: blobStore,
		events:    events,
		tracer:    tracer,
	}
}

// CreateOrder 创建一笔订单：
//  1. 新建 PENDING 状态的空订单；
//  2. 按请求顺序逐个解析菜单项并加入订单行，第一个失败即中止，
//     组装到一半的订单直接丢弃，不落库；
//  3. 附件（如有）先上传到对象存储，拿到的 Key 记到订单上；
//  4. 整单持久化，存储分配 ID；
//  5. 发出 order_created 事件（尽力而为）。
func (s *OrderApplicationService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "app.CreateOrder")
	defer span.End()

	if len(req.Items) == 0 {
		return nil, domain.ErrNoOrderItems
	}

	order, err := domain.NewOrder(req.CustomerName)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		menu, err := s.catalog.FindMenuByID(ctx, item.MenuID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrMenuNotFound) {
				span.SetStatus(codes.Error, "menu not found")
				return nil, &domain.ItemNotFoundError{MenuID: item.MenuID}
			}
			span.RecordError(err)
			return nil, &domain.StorageError{Op: "catalog.find_menu", Err: err}
		}
		if err := order.AddItem(menu, item.Quantity); err != nil {
			span.SetStatus(codes.Error, "failed to add line item")
			return nil, err
		}
	}

	// 附件上传放在落库之前：上传失败时订单还没持久化，不会留下半截状态
	if req.Attachment != nil {
		key, err := s.blobStore.Upload(ctx, req.Attachment.Data, req.Attachment.ContentType, req.Attachment.Filename)
		if err != nil {
			metrics.BlobUploads.WithLabelValues("failure").Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, "attachment upload failed")
			return nil, err
		}
		metrics.BlobUploads.WithLabelValues("success").Inc()
		order.AttachmentKey = key
		span.SetAttributes(attribute.String("order.attachment_key", key))
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist order")
		// 订单没保住，已上传的附件成了孤儿，尽力清理一下
		if order.AttachmentKey != "" {
			if delErr := s.blobStore.Delete(ctx, order.AttachmentKey); delErr != nil {
				logger.Ctx(ctx).Warn().Err(delErr).
					Str("attachment_key", order.AttachmentKey).
					Msg("failed to clean up orphaned attachment")
			}
		}
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	span.SetAttributes(
		attribute.Int64("order.id", order.ID),
		attribute.Int64("order.total_price", order.TotalPrice),
	)

	if err := s.events.OrderCreated(ctx, order); err != nil {
		// 事件发不出去不影响已入库的订单
		logger.Ctx(ctx).Warn().Err(err).Int64("order_id", order.ID).Msg("failed to publish order_created event")
	}

	logger.Ctx(ctx).Info().
		Int64("order_id", order.ID).
		Int64("total_price", order.TotalPrice).
		Int("item_count", len(order.Items)).
		Msg("order created")
	return FromOrder(order), nil
}

// GetOrder 按 ID 查询订单（含订单行）。
func (s *OrderApplicationService) GetOrder(ctx context.Context, id int64) (*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "app.GetOrder")
	defer span.End()

	order, err := s.orderRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromOrder(order), nil
}

// UpdateOrderStatus 按状态机流转订单状态：一次读取、一次流转校验、一次写回。
// 写回带乐观版本检查，同一订单的并发流转只有一个能成功，
// 失败的一方拿到 ErrVersionConflict，由调用方决定是否重试。
func (s *OrderApplicationService) UpdateOrderStatus(ctx context.Context, id int64, next domain.Status) (*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "app.UpdateOrderStatus")
	defer span.End()

	order, err := s.orderRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if err := order.TransitionTo(next); err != nil {
		span.SetStatus(codes.Error, "invalid status transition")
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, order); err != nil {
		span.RecordError(err)
		return nil, err
	}

	metrics.OrderStatusTransitions.WithLabelValues(string(next)).Inc()
	span.SetAttributes(
		attribute.Int64("order.id", id),
		attribute.String("order.status.from", string(from)),
		attribute.String("order.status.to", string(next)),
	)

	if err := s.events.OrderStatusChanged(ctx, order, from); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Int64("order_id", id).Msg("failed to publish order_status_changed event")
	}

	logger.Ctx(ctx).Info().
		Int64("order_id", id).
		Str("from", string(from)).
		Str("to", string(next)).
		Msg("order status updated")
	return FromOrder(order), nil
}

// ListOrdersByCustomer 读侧查询：按客户名列出订单。
func (s *OrderApplicationService) ListOrdersByCustomer(ctx context.Context, customerName string) ([]*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "app.ListOrdersByCustomer")
	defer span.End()

	orders, err := s.orderRepo.FindByCustomerName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	return projectAll(orders), nil
}

// ListOrdersByStatus 读侧查询：按状态列出订单。
func (s *OrderApplicationService) ListOrdersByStatus(ctx context.Context, status domain.Status) ([]*OrderResponse, error) {
	ctx, span := s.tracer.Start(ctx, "app.ListOrdersByStatus")
	defer span.End()

	orders, err := s.orderRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return projectAll(orders), nil
}

// AttachmentURL 为订单的附件生成一个限时预签名 URL。
func (s *OrderApplicationService) AttachmentURL(ctx context.Context, id int64, expiry time.Duration) (string, error) {
	ctx, span := s.tracer.Start(ctx, "app.AttachmentURL")
	defer span.End()

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if order.AttachmentKey == "" {
		return "", domain.ErrNoAttachment
	}
	return s.blobStore.PresignedURL(ctx, order.AttachmentKey, expiry)
}

func projectAll(orders []*domain.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromOrder(o)
	}
	return out
}
