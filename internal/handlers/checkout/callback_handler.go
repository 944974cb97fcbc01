package checkout

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/addispay/yagoutpay-service/internal/domain"
	"github.com/addispay/yagoutpay-service/internal/domain/ports"
	"github.com/addispay/yagoutpay-service/internal/services/payment"
	"github.com/addispay/yagoutpay-service/pkg/observability"
)

// reasonUnverified is the only reason code the browser ever sees for a
// rejected callback. The true cause stays in the server logs.
const reasonUnverified = "PAYMENT_UNVERIFIED"

// callbackFieldNames are the protocol field names the gateway may post in
// either case. Normalization lowercases matches so the client always sees the
// exact literal names.
var callbackFieldNames = map[string]struct{}{
	"order_no":         {},
	"amount":           {},
	"status":           {},
	"hash":             {},
	"merchant_request": {},
}

// CallbackHandler processes the redirect callbacks the gateway posts to the
// success and failure URLs.
type CallbackHandler struct {
	client *payment.Client
	orders ports.OrderRepository
	logger *zap.Logger
}

// NewCallbackHandler creates a callback handler.
func NewCallbackHandler(client *payment.Client, orders ports.OrderRepository, logger *zap.Logger) *CallbackHandler {
	return &CallbackHandler{client: client, orders: orders, logger: logger}
}

// HandleSuccess processes the gateway callback on the success URL.
// Endpoint: POST /payment/success
func (h *CallbackHandler) HandleSuccess(w http.ResponseWriter, r *http.Request) {
	h.handleCallback(w, r)
}

// HandleFailure processes the gateway callback on the failure URL. The
// gateway posts the same signed field set on both URLs, so verification is
// identical; only the recorded outcome differs by the reported status.
// Endpoint: POST /payment/failure
func (h *CallbackHandler) HandleFailure(w http.ResponseWriter, r *http.Request) {
	h.handleCallback(w, r)
}

func (h *CallbackHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("callback with unparsable form", zap.Error(err))
		h.renderFailure(w)
		return
	}

	fields := normalizeCallbackFields(r.Form)
	callback := h.client.VerifyCallback(fields)
	if callback == nil {
		observability.CallbacksTotal.WithLabelValues("rejected").Inc()
		h.renderFailure(w)
		return
	}
	observability.CallbacksTotal.WithLabelValues("verified").Inc()

	status := domain.OrderStatusFailed
	if callback.Succeeded() {
		status = domain.OrderStatusPaid
	}

	if err := h.orders.UpdateStatus(r.Context(), callback.OrderNo, status, callback.Status); err != nil {
		h.logger.Error("failed to update order from callback",
			zap.String("order_no", callback.OrderNo),
			zap.Error(err),
		)
		h.renderFailure(w)
		return
	}

	h.logger.Info("callback verified",
		zap.String("order_no", callback.OrderNo),
		zap.String("order_status", string(status)),
	)

	if status != domain.OrderStatusPaid {
		h.renderFailure(w)
		return
	}

	order, err := h.orders.GetByOrderNo(r.Context(), callback.OrderNo)
	if err != nil {
		h.renderFailure(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := map[string]string{
		"OrderNo":       order.OrderNo,
		"Amount":        callback.Amount,
		"Currency":      order.Currency,
		"GatewayStatus": callback.Status,
	}
	if err := receiptTmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render receipt template", zap.Error(err))
	}
}

func (h *CallbackHandler) renderFailure(w http.ResponseWriter) {
	// Still 200: this is a browser redirect from the gateway, not an API
	// response.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := failureTmpl.Execute(w, map[string]string{"ReasonCode": reasonUnverified}); err != nil {
		h.logger.Error("failed to render failure template", zap.Error(err))
	}
}

// normalizeCallbackFields lowercases known protocol field names so the
// verification layer works with exact literal names regardless of the case
// the gateway used. First non-empty value wins.
func normalizeCallbackFields(form map[string][]string) map[string]string {
	out := make(map[string]string, len(form))
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		lower := strings.ToLower(key)
		if _, known := callbackFieldNames[lower]; known {
			key = lower
		}
		if out[key] == "" {
			out[key] = values[0]
		}
	}
	return out
}
