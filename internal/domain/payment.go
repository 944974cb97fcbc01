package domain

import (
	"regexp"
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

// Defaults applied by NewTransactionDetails and NewCustomerDetails.
const (
	DefaultCountry  = "ETH"
	DefaultCurrency = "ETB"
	DefaultTxnType  = "SALE"
	DefaultChannel  = "WEB"
	DefaultLoggedIn = "Y"
)

var (
	// Ethiopian local mobile format only: 10 digits starting with 09.
	mobileRe = regexp.MustCompile(`^09\d{8}$`)
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// TransactionDetails carries the per-checkout transaction fields. Values are
// fixed at construction; one instance describes exactly one checkout attempt.
type TransactionDetails struct {
	OrderNo    string
	Amount     decimal.Decimal
	Country    string
	Currency   string
	TxnType    string
	SuccessURL string
	FailureURL string
	Channel    string
}

// Validate checks format-level constraints before any encoding happens.
func (t TransactionDetails) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.OrderNo,
			validation.Required.Error("order number cannot be empty"),
		),
		validation.Field(&t.Amount,
			validation.By(positiveAmount),
		),
		validation.Field(&t.SuccessURL, validation.Required),
		validation.Field(&t.FailureURL, validation.Required),
	)
}

// AmountString renders the amount in the minimal decimal form that feeds both
// the payload and the request hash: 100 -> "100", 1500.50 -> "1500.5". The
// gateway recomputes the hash over this exact string, so the rendering is part
// of the wire contract.
func (t TransactionDetails) AmountString() string {
	return strconv.FormatFloat(t.Amount.InexactFloat64(), 'f', -1, 64)
}

func positiveAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return validation.NewError("validation_amount", "amount must be greater than 0")
	}
	return nil
}

// CustomerDetails carries the customer section fields.
type CustomerDetails struct {
	CustName   string
	EmailID    string
	MobileNo   string
	UniqueID   string
	IsLoggedIn string
}

// Validate enforces the email shape and the fixed national mobile format.
func (c CustomerDetails) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.EmailID,
			validation.Required.Error("email is required"),
			validation.Match(emailRe).Error("invalid email format"),
		),
		validation.Field(&c.MobileNo,
			validation.Required.Error("mobile number is required"),
			validation.Match(mobileRe).Error("mobile number must be 10 digits starting with 09"),
		),
	)
}

// BillingDetails is the optional billing section. All fields are free-form;
// absent fields render as empty strings on the wire.
type BillingDetails struct {
	BillAddress string
	BillCity    string
	BillState   string
	BillCountry string
	BillZip     string
}

// PaymentRequest aggregates one transaction, one customer and optional
// billing details. This triple is the unit of encoding.
type PaymentRequest struct {
	Transaction TransactionDetails
	Customer    CustomerDetails
	Billing     *BillingDetails
}

// Validate validates the request as a whole. No partially built payload ever
// leaves the encoder: validation runs before any section is rendered.
func (r PaymentRequest) Validate() error {
	if err := r.Transaction.Validate(); err != nil {
		return err
	}
	return r.Customer.Validate()
}

// NewTransactionDetails fills protocol defaults (ETH/ETB/SALE/WEB) and trims
// the order number, then validates.
func NewTransactionDetails(orderNo string, amount decimal.Decimal, successURL, failureURL string) (TransactionDetails, error) {
	t := TransactionDetails{
		OrderNo:    strings.TrimSpace(orderNo),
		Amount:     amount,
		Country:    DefaultCountry,
		Currency:   DefaultCurrency,
		TxnType:    DefaultTxnType,
		SuccessURL: successURL,
		FailureURL: failureURL,
		Channel:    DefaultChannel,
	}
	if err := t.Validate(); err != nil {
		return TransactionDetails{}, err
	}
	return t, nil
}

// NewCustomerDetails applies the logged-in default and validates.
func NewCustomerDetails(name, email, mobile, uniqueID string) (CustomerDetails, error) {
	c := CustomerDetails{
		CustName:   name,
		EmailID:    email,
		MobileNo:   mobile,
		UniqueID:   uniqueID,
		IsLoggedIn: DefaultLoggedIn,
	}
	if err := c.Validate(); err != nil {
		return CustomerDetails{}, err
	}
	return c, nil
}

// PaymentResponse is the outbound artifact consumed by the form renderer:
// everything the browser needs to POST to the gateway.
type PaymentResponse struct {
	MerchantID      string
	MerchantRequest string
	Hash            string
	PostURL         string
}

// PaymentCallback is a verified inbound gateway notification. It is only
// constructed after hash verification succeeds; unverified callbacks yield no
// object and must be discarded by the caller.
type PaymentCallback struct {
	OrderNo         string
	Amount          string
	Status          string
	Hash            string
	MerchantRequest string
}

// Succeeded reports whether the gateway marked the payment successful.
func (c PaymentCallback) Succeeded() bool {
	return c.Status == "SUCCESS" || c.Status == "Successful"
}
