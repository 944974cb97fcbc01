package yagout

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexDigest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestBuildRequestHash_TildeJoinedConvention(t *testing.T) {
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	in := RequestHashInput{
		MerchantID:   "202504290001",
		OrderNo:      "ORDER_1",
		Amount:       "100",
		CurrencyFrom: "ETH",
		CurrencyTo:   "ETB",
	}

	plain, err := c.Decrypt(BuildRequestHash(c, in))
	require.NoError(t, err)
	assert.Equal(t, hexDigest("202504290001~ORDER_1~100~ETH~ETB"), plain)
}

func TestResponseDigest_UnseparatedConvention(t *testing.T) {
	in := ResponseHashInput{OrderNo: "ORDER_1", Amount: "100", Status: "SUCCESS"}

	assert.Equal(t, hexDigest("ORDER_1100SUCCESS"), ResponseDigest(in))
	// The request-side tilde convention must not leak into the response side.
	assert.NotEqual(t, hexDigest("ORDER_1~100~SUCCESS"), ResponseDigest(in))
}

func TestVerifyResponseHash(t *testing.T) {
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	in := ResponseHashInput{OrderNo: "ORDER_1", Amount: "100", Status: "SUCCESS"}
	valid := c.Encrypt(ResponseDigest(in))

	assert.True(t, VerifyResponseHash(c, in, valid))

	tests := []struct {
		name string
		in   ResponseHashInput
		hash string
	}{
		{name: "order mismatch", in: ResponseHashInput{OrderNo: "ORDER_2", Amount: "100", Status: "SUCCESS"}, hash: valid},
		{name: "amount mismatch", in: ResponseHashInput{OrderNo: "ORDER_1", Amount: "101", Status: "SUCCESS"}, hash: valid},
		{name: "status mismatch", in: ResponseHashInput{OrderNo: "ORDER_1", Amount: "100", Status: "FAILED"}, hash: valid},
		{name: "undecryptable hash", in: in, hash: "not-even-base64!"},
		{name: "empty hash", in: in, hash: ""},
		{name: "plaintext digest instead of encrypted", in: in, hash: ResponseDigest(in)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyResponseHash(c, tt.in, tt.hash))
		})
	}
}

func TestVerifyResponseHash_RejectsHashFromOtherKey(t *testing.T) {
	c1, err := NewCipher(testKey(t))
	require.NoError(t, err)
	c2, err := NewCipher(base64.StdEncoding.EncodeToString([]byte("fedcba9876543210fedcba9876543210")))
	require.NoError(t, err)

	in := ResponseHashInput{OrderNo: "ORDER_1", Amount: "100", Status: "SUCCESS"}

	assert.False(t, VerifyResponseHash(c1, in, c2.Encrypt(ResponseDigest(in))))
}
