package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionDetails_DefaultsAndTrim(t *testing.T) {
	txn, err := NewTransactionDetails("  ORDER_1  ", decimal.NewFromInt(100), "https://shop/s", "https://shop/f")
	require.NoError(t, err)

	assert.Equal(t, "ORDER_1", txn.OrderNo)
	assert.Equal(t, "ETH", txn.Country)
	assert.Equal(t, "ETB", txn.Currency)
	assert.Equal(t, "SALE", txn.TxnType)
	assert.Equal(t, "WEB", txn.Channel)
}

func TestNewTransactionDetails_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		orderNo string
		amount  decimal.Decimal
	}{
		{name: "empty order number", orderNo: "", amount: decimal.NewFromInt(100)},
		{name: "whitespace order number", orderNo: "   ", amount: decimal.NewFromInt(100)},
		{name: "zero amount", orderNo: "ORDER_1", amount: decimal.Zero},
		{name: "negative amount", orderNo: "ORDER_1", amount: decimal.NewFromInt(-5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransactionDetails(tt.orderNo, tt.amount, "https://shop/s", "https://shop/f")
			assert.Error(t, err)
		})
	}
}

func TestTransactionDetails_AmountString(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "100", want: "100"},
		{amount: "100.00", want: "100"},
		{amount: "1500.50", want: "1500.5"},
		{amount: "0.5", want: "0.5"},
		{amount: "99.99", want: "99.99"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			txn := TransactionDetails{Amount: d}
			assert.Equal(t, tt.want, txn.AmountString())
		})
	}
}

func TestCustomerDetails_MobileValidation(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		valid  bool
	}{
		{name: "local format", mobile: "0911234567", valid: true},
		{name: "international prefix", mobile: "+251911123456", valid: false},
		{name: "too short", mobile: "09123", valid: false},
		{name: "too long", mobile: "091123456789", valid: false},
		{name: "wrong leading digits", mobile: "0811234567", valid: false},
		{name: "empty", mobile: "", valid: false},
		{name: "letters", mobile: "09112345ab", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomerDetails("Jane", "jane@example.com", tt.mobile, "")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCustomerDetails_EmailValidation(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "plain address", email: "jane@example.com", valid: true},
		{name: "subdomain", email: "jane@mail.example.et", valid: true},
		{name: "missing at", email: "jane.example.com", valid: false},
		{name: "missing domain dot", email: "jane@example", valid: false},
		{name: "embedded space", email: "ja ne@example.com", valid: false},
		{name: "empty", email: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomerDetails("Jane", tt.email, "0911234567", "")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewCustomerDetails_LoggedInDefault(t *testing.T) {
	cust, err := NewCustomerDetails("Jane", "jane@example.com", "0911234567", "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Y", cust.IsLoggedIn)
	assert.Equal(t, "u-1", cust.UniqueID)
}

func TestPaymentCallback_Succeeded(t *testing.T) {
	assert.True(t, PaymentCallback{Status: "SUCCESS"}.Succeeded())
	assert.True(t, PaymentCallback{Status: "Successful"}.Succeeded())
	assert.False(t, PaymentCallback{Status: "FAILED"}.Succeeded())
	assert.False(t, PaymentCallback{Status: "success"}.Succeeded())
	assert.False(t, PaymentCallback{Status: ""}.Succeeded())
}
