// Package checkout serves the demo storefront: it renders the checkout page,
// turns form submissions into gateway redirects and processes the signed
// callbacks the gateway posts back.
package checkout

import (
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/addispay/yagoutpay-service/internal/domain"
	"github.com/addispay/yagoutpay-service/internal/domain/ports"
	"github.com/addispay/yagoutpay-service/internal/services/payment"
	"github.com/addispay/yagoutpay-service/pkg/observability"
)

// Handler serves the checkout flow.
type Handler struct {
	client  *payment.Client
	orders  ports.OrderRepository
	logger  *zap.Logger
	baseURL string
}

// NewHandler creates a checkout handler.
func NewHandler(client *payment.Client, orders ports.OrderRepository, logger *zap.Logger, baseURL string) *Handler {
	return &Handler{
		client:  client,
		orders:  orders,
		logger:  logger,
		baseURL: baseURL,
	}
}

// ShowCheckout renders the storefront page.
// Endpoint: GET /
func (h *Handler) ShowCheckout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := checkoutTmpl.Execute(w, nil); err != nil {
		h.logger.Error("failed to render checkout template", zap.Error(err))
	}
}

// Pay builds a payment request from the submitted form, stores a pending
// order and answers with the auto-submitting gateway form.
// Endpoint: POST /pay
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("pay request with unparsable form", zap.Error(err))
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(r.PostFormValue("amount"))
	if err != nil {
		http.Error(w, "amount must be a valid number", http.StatusBadRequest)
		return
	}

	orderNo := payment.GenerateOrderNumber("ORDER")
	txn, err := domain.NewTransactionDetails(orderNo, amount,
		h.baseURL+"/payment/success",
		h.baseURL+"/payment/failure",
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cust, err := domain.NewCustomerDetails(
		r.PostFormValue("cust_name"),
		r.PostFormValue("email_id"),
		r.PostFormValue("mobile_no"),
		"",
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := domain.PaymentRequest{Transaction: txn, Customer: cust}
	if r.PostFormValue("bill_address") != "" || r.PostFormValue("bill_city") != "" {
		req.Billing = &domain.BillingDetails{
			BillAddress: r.PostFormValue("bill_address"),
			BillCity:    r.PostFormValue("bill_city"),
			BillState:   r.PostFormValue("bill_state"),
			BillCountry: r.PostFormValue("bill_country"),
			BillZip:     r.PostFormValue("bill_zip"),
		}
	}

	resp, err := h.client.CreatePayment(req)
	if err != nil {
		h.logger.Error("failed to create payment",
			zap.String("order_no", orderNo),
			zap.Error(err),
		)
		http.Error(w, "failed to create payment", http.StatusInternalServerError)
		return
	}

	if err := h.orders.Create(r.Context(), domain.NewPendingOrder(req)); err != nil {
		h.logger.Error("failed to store pending order",
			zap.String("order_no", orderNo),
			zap.Error(err),
		)
		http.Error(w, "failed to create order", http.StatusInternalServerError)
		return
	}

	observability.PaymentsInitiated.Inc()
	h.logger.Info("redirecting to gateway",
		zap.String("order_no", orderNo),
		zap.String("amount", txn.AmountString()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := redirectTmpl.Execute(w, resp); err != nil {
		h.logger.Error("failed to render redirect template", zap.Error(err))
	}
}
