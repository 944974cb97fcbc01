package yagout

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// RequestHashInput carries the five values hashed into the outbound request
// hash, joined with tildes in field order.
type RequestHashInput struct {
	MerchantID   string
	OrderNo      string
	Amount       string
	CurrencyFrom string
	CurrencyTo   string
}

// ResponseHashInput carries the three values the gateway hashes into the
// callback hash. Unlike the request side they are concatenated with no
// separator; the two conventions are not interchangeable.
type ResponseHashInput struct {
	OrderNo string
	Amount  string
	Status  string
}

// BuildRequestHash computes the outbound transport hash: the hex SHA-256 of
// the tilde-joined input, AES-encrypted and base64-encoded.
func BuildRequestHash(c *Cipher, in RequestHashInput) string {
	joined := strings.Join([]string{
		in.MerchantID, in.OrderNo, in.Amount, in.CurrencyFrom, in.CurrencyTo,
	}, "~")
	return c.Encrypt(sha256Hex(joined))
}

// ResponseDigest computes the hex SHA-256 the gateway signs callbacks with.
func ResponseDigest(in ResponseHashInput) string {
	return sha256Hex(in.OrderNo + in.Amount + in.Status)
}

// VerifyResponseHash decrypts receivedHash and compares it against the digest
// recomputed from in. The comparison is constant-time; any decrypt failure or
// mismatch reports false without distinguishing the cause.
func VerifyResponseHash(c *Cipher, in ResponseHashInput, receivedHash string) bool {
	plain, err := c.Decrypt(receivedHash)
	if err != nil {
		return false
	}
	expected := ResponseDigest(in)
	return subtle.ConstantTimeCompare([]byte(plain), []byte(expected)) == 1
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
