package yagout

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef"))
}

func TestNewCipher_KeyLength(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "32 bytes", key: base64.StdEncoding.EncodeToString(make([]byte, 32))},
		{name: "16 bytes", key: base64.StdEncoding.EncodeToString(make([]byte, 16)), wantErr: true},
		{name: "31 bytes", key: base64.StdEncoding.EncodeToString(make([]byte, 31)), wantErr: true},
		{name: "33 bytes", key: base64.StdEncoding.EncodeToString(make([]byte, 33)), wantErr: true},
		{name: "empty", key: "", wantErr: true},
		{name: "not base64", key: "!!!not-base64!!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCipher(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidKey)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	tests := []string{
		"",
		"a",
		"exactly sixteen!",
		"yagout|202504290001|ORDER_1|100|ETH|ETB|SALE|https://a/s|https://a/f|WEB",
		strings.Repeat("block spanning payload ", 40),
		"አማርኛ UTF-8 ጽሑፍ",
	}

	for _, plaintext := range tests {
		encrypted := c.Encrypt(plaintext)

		_, err := base64.StdEncoding.DecodeString(encrypted)
		require.NoError(t, err, "ciphertext must be valid base64")

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipher_EncryptIsDeterministic(t *testing.T) {
	// The IV is static, so equal plaintexts produce equal ciphertexts. The
	// gateway relies on this when re-deriving hashes.
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	assert.Equal(t, c.Encrypt("ORDER_1100SUCCESS"), c.Encrypt("ORDER_1100SUCCESS"))
}

func TestCipher_DecryptRejectsMalformedInput(t *testing.T) {
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "not base64", input: "%%%"},
		{name: "empty", input: ""},
		{name: "not block aligned", input: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "garbage block", input: base64.StdEncoding.EncodeToString(make([]byte, 16))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, derr := c.Decrypt(tt.input)
			assert.ErrorIs(t, derr, ErrDecrypt)
			assert.Empty(t, out)
		})
	}
}

func TestCipher_DecryptWithWrongKeyFails(t *testing.T) {
	c1, err := NewCipher(testKey(t))
	require.NoError(t, err)
	c2, err := NewCipher(base64.StdEncoding.EncodeToString([]byte("fedcba9876543210fedcba9876543210")))
	require.NoError(t, err)

	encrypted := c1.Encrypt("order_no|amount|status")

	out, err := c2.Decrypt(encrypted)
	if err == nil {
		// Wrong-key decryption can accidentally yield valid padding; the
		// plaintext still must not match.
		assert.NotEqual(t, "order_no|amount|status", out)
	} else {
		assert.ErrorIs(t, err, ErrDecrypt)
	}
}

func TestPKCS7_PadAlwaysAppends(t *testing.T) {
	// A block-aligned input gains a full padding block, never zero bytes.
	padded := padPKCS7(make([]byte, 16), 16)
	require.Len(t, padded, 32)
	assert.Equal(t, byte(16), padded[31])

	unpadded, err := unpadPKCS7(padded, 16)
	require.NoError(t, err)
	assert.Len(t, unpadded, 16)
}

func TestPKCS7_UnpadRejectsCorruptPadding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "zero pad byte", data: append(make([]byte, 15), 0)},
		{name: "pad byte over block size", data: append(make([]byte, 15), 17)},
		{name: "inconsistent padding", data: append([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, 3, 2)},
		{name: "empty", data: nil},
		{name: "not block aligned", data: make([]byte, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unpadPKCS7(tt.data, 16)
			assert.ErrorIs(t, err, ErrDecrypt)
		})
	}
}
