// internal/service/order/interfaces/http_handler.go
package interfaces

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"barista/internal/service/order/application"
	"barista/internal/service/order/domain"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	serviceName = "order-service"

	// 附件大小上限
	maxAttachmentSize = 10 << 20
	// 预签名 URL 的默认有效期
	defaultPresignExpiry = time.Minute
)

// OrderHandler 封装了 order 服务的 HTTP 处理器
type OrderHandler struct {
	service *application.OrderApplicationService
}

// NewOrderHandler 创建一个新的 HTTP 处理器实例
func NewOrderHandler(service *application.OrderApplicationService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes 在 ServeMux 上注册所有路由
func (h *OrderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.HandleFunc("GET /api/orders", h.listOrders)
	mux.HandleFunc("GET /api/orders/{id}", h.getOrder)
	mux.HandleFunc("PATCH /api/orders/{id}/status", h.updateOrderStatus)
	mux.HandleFunc("GET /api/orders/{id}/attachment", h.getAttachmentURL)
}

// createOrder 处理下单请求。
// 既支持纯 JSON，也支持 multipart（"request" JSON 部分 + 可选的 "file" 附件部分）。
func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer(serviceName).Start(ctx, "http.CreateOrder")
	defer span.End()

	var req application.CreateOrderRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAttachmentSize); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("request")), &req); err != nil {
			http.Error(w, "invalid request part", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			data, readErr := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
			if readErr != nil {
				http.Error(w, "failed to read attachment", http.StatusBadRequest)
				return
			}
			req.Attachment = &application.Attachment{
				Data:        data,
				ContentType: header.Header.Get("Content-Type"),
				Filename:    header.Filename,
			}
		} else if err != http.ErrMissingFile {
			http.Error(w, "invalid file part", http.StatusBadRequest)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	// 数量校验在这里挡住，领域层还会再防御一次
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": domain.ErrInvalidQuantity.Error()})
			return
		}
	}

	resp, err := h.service.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer(serviceName).Start(ctx, "http.GetOrder")
	defer span.End()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetOrder(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// listOrders 支持 ?customer_name= 或 ?status= 两种读侧查询
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer(serviceName).Start(ctx, "http.ListOrders")
	defer span.End()

	if name := r.URL.Query().Get("customer_name"); name != "" {
		resp, err := h.service.ListOrdersByCustomer(ctx, name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			http.Error(w, "unknown order status", http.StatusBadRequest)
			return
		}
		resp, err := h.service.ListOrdersByStatus(ctx, status)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	http.Error(w, "customer_name or status query parameter is required", http.StatusBadRequest)
}

func (h *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer(serviceName).Start(ctx, "http.UpdateOrderStatus")
	defer span.End()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	status, ok := domain.ParseStatus(body.Status)
	if !ok {
		http.Error(w, "unknown order status", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *OrderHandler) getAttachmentURL(w http.ResponseWriter, r *http.Request) {
	ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
	ctx, span := otel.Tracer(serviceName).Start(ctx, "http.GetAttachmentURL")
	defer span.End()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	expiry := defaultPresignExpiry
	if raw := r.URL.Query().Get("expiry_seconds"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			http.Error(w, "invalid expiry_seconds", http.StatusBadRequest)
			return
		}
		expiry = time.Duration(secs) * time.Second
	}

	url, err := h.service.AttachmentURL(ctx, id, expiry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError 把领域错误映射到 HTTP 状态码。
// 错误信息里已经带了冲突的 ID 或状态，直接透出给调用方。
func writeError(w http.ResponseWriter, err error) {
	var (
		itemNotFound  *domain.ItemNotFoundError
		orderNotFound *domain.OrderNotFoundError
		unavailable   *domain.ItemUnavailableError
		badTransition *domain.InvalidTransitionError
		storage       *domain.StorageError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &itemNotFound), errors.As(err, &orderNotFound),
		errors.Is(err, domain.ErrNoAttachment):
		status = http.StatusNotFound
	case errors.As(err, &unavailable), errors.As(err, &badTransition),
		errors.Is(err, domain.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrBlankCustomerName),
		errors.Is(err, domain.ErrNoOrderItems),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrPriceOverflow):
		status = http.StatusBadRequest
	case errors.As(err, &storage):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
