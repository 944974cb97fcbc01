// Package payment orchestrates the YagoutPay checkout protocol: it assembles
// the nine-section payload, encrypts it, builds the transport hash and
// verifies inbound callbacks.
package payment

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/addispay/yagoutpay-service/internal/adapters/yagout"
	"github.com/addispay/yagoutpay-service/internal/domain"
)

// Fixed gateway endpoints. The environment flag selects one at construction.
const (
	TestPostURL = "https://uatcheckout.yagoutpay.com/ms-transaction-core-1-0/paymentRedirection/checksumGatewayPage"
	ProdPostURL = "https://checkout.yagoutpay.com/ms-transaction-core-1-0/paymentRedirection/checksumGatewayPage"

	// aggregatorID is the fixed ag_id the gateway assigns to this integration.
	aggregatorID = "yagout"
)

// callbackRequiredFields must all be present before verification is even
// attempted; a callback missing any of them is rejected without explanation.
var callbackRequiredFields = []string{"order_no", "amount", "status", "hash", "merchant_request"}

// Client builds outbound payment requests and verifies gateway callbacks.
// It holds no mutable state after construction and is safe for concurrent
// use from multiple goroutines without locking.
type Client struct {
	merchantID string
	cipher     *yagout.Cipher
	postURL    string
	logger     *zap.Logger
}

// NewClient constructs a client. The key is decoded exactly once; a key that
// does not decode to 32 bytes fails construction permanently.
func NewClient(merchantID, encryptionKey, environment string, logger *zap.Logger) (*Client, error) {
	if merchantID == "" {
		return nil, domain.ErrMissingMerchantID
	}
	if encryptionKey == "" {
		return nil, domain.ErrMissingEncryptionKey
	}
	cipher, err := yagout.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	postURL := TestPostURL
	if strings.EqualFold(environment, "production") {
		postURL = ProdPostURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		merchantID: merchantID,
		cipher:     cipher,
		postURL:    postURL,
		logger:     logger,
	}, nil
}

// PostURL returns the gateway endpoint selected at construction.
func (c *Client) PostURL() string { return c.postURL }

// MerchantID returns the configured merchant id.
func (c *Client) MerchantID() string { return c.merchantID }

// CreatePayment validates the request, assembles and encrypts the payload,
// and builds the transport hash. The returned response is immutable and holds
// everything the form renderer needs.
func (c *Client) CreatePayment(req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount := req.Transaction.AmountString()

	txn := map[string]string{
		"ag_id":       aggregatorID,
		"me_id":       c.merchantID,
		"order_no":    req.Transaction.OrderNo,
		"amount":      amount,
		"country":     req.Transaction.Country,
		"currency":    req.Transaction.Currency,
		"txn_type":    req.Transaction.TxnType,
		"success_url": req.Transaction.SuccessURL,
		"failure_url": req.Transaction.FailureURL,
		"channel":     req.Transaction.Channel,
	}
	cust := map[string]string{
		"cust_name":    req.Customer.CustName,
		"email_id":     req.Customer.EmailID,
		"mobile_no":    req.Customer.MobileNo,
		"unique_id":    req.Customer.UniqueID,
		"is_logged_in": req.Customer.IsLoggedIn,
	}
	sections := map[yagout.Section]map[string]string{
		yagout.SectionTxn:  txn,
		yagout.SectionCust: cust,
	}
	if req.Billing != nil {
		sections[yagout.SectionBill] = map[string]string{
			"bill_address": req.Billing.BillAddress,
			"bill_city":    req.Billing.BillCity,
			"bill_state":   req.Billing.BillState,
			"bill_country": req.Billing.BillCountry,
			"bill_zip":     req.Billing.BillZip,
		}
	}

	payload := yagout.BuildPayload(sections)
	merchantRequest := c.cipher.Encrypt(payload)

	hash := yagout.BuildRequestHash(c.cipher, yagout.RequestHashInput{
		MerchantID:   c.merchantID,
		OrderNo:      req.Transaction.OrderNo,
		Amount:       amount,
		CurrencyFrom: req.Transaction.Country,
		CurrencyTo:   req.Transaction.Currency,
	})

	c.logger.Info("payment request created",
		zap.String("order_no", req.Transaction.OrderNo),
		zap.String("amount", amount),
		zap.String("currency", req.Transaction.Currency),
	)

	return &domain.PaymentResponse{
		MerchantID:      c.merchantID,
		MerchantRequest: merchantRequest,
		Hash:            hash,
		PostURL:         c.postURL,
	}, nil
}

// VerifyCallback verifies an inbound gateway callback. Field names must be
// the exact literal protocol names; the HTTP layer normalizes case before
// calling. It returns nil for any missing field, undecryptable hash or digest
// mismatch; the reason is deliberately not reported.
func (c *Client) VerifyCallback(fields map[string]string) *domain.PaymentCallback {
	for _, k := range callbackRequiredFields {
		if fields[k] == "" {
			c.logger.Warn("callback rejected", zap.String("reason_code", "missing_fields"))
			return nil
		}
	}

	in := yagout.ResponseHashInput{
		OrderNo: fields["order_no"],
		Amount:  fields["amount"],
		Status:  fields["status"],
	}
	if !yagout.VerifyResponseHash(c.cipher, in, fields["hash"]) {
		c.logger.Warn("callback rejected",
			zap.String("reason_code", "verification_failed"),
			zap.String("order_no", fields["order_no"]),
		)
		return nil
	}

	// Best-effort inspection of the echoed merchant request. This is
	// non-authoritative: a decrypt failure here does not affect the
	// verification outcome above.
	if plain, err := c.cipher.Decrypt(fields["merchant_request"]); err == nil {
		c.logger.Debug("callback merchant_request decrypted",
			zap.Int("payload_len", len(plain)),
		)
	}

	return &domain.PaymentCallback{
		OrderNo:         fields["order_no"],
		Amount:          fields["amount"],
		Status:          fields["status"],
		Hash:            fields["hash"],
		MerchantRequest: fields["merchant_request"],
	}
}

// GenerateOrderNumber produces "<prefix>_<unix-millis>_<4-digit-random>".
// Collisions within the same millisecond are possible; callers needing strict
// uniqueness must layer their own idempotency key.
func GenerateOrderNumber(prefix string) string {
	if prefix == "" {
		prefix = "ORDER"
	}
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixMilli(), 1000+rand.Intn(9000))
}
