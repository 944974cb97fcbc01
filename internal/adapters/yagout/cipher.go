package yagout

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

// staticIV is mandated by the gateway: both sides derive it from the same
// fixed ASCII string, so it is not secret and carries no per-message entropy.
var staticIV = []byte("0123456789abcdef")

var (
	// ErrInvalidKey reports a key that does not decode to exactly 32 bytes.
	ErrInvalidKey = errors.New("yagout: encryption key must decode to 32 bytes")

	// ErrDecrypt reports any undecryptable input. The underlying cause is
	// intentionally not distinguished.
	ErrDecrypt = errors.New("yagout: cannot decrypt payload")
)

// Cipher encrypts and decrypts payloads with AES-256-CBC and the gateway's
// static IV. It is immutable after construction and safe for concurrent use.
type Cipher struct {
	block cipher.Block
	iv    []byte
}

// NewCipher builds a Cipher from a base64-encoded 256-bit key. Any other key
// length is a permanent construction failure.
func NewCipher(keyBase64 string) (*Cipher, error) {
	key, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if len(key) != 2*aes.BlockSize {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return &Cipher{block: block, iv: staticIV}, nil
}

// Encrypt returns the base64-encoded AES-256-CBC ciphertext of plaintext,
// PKCS#7 padded. It cannot fail once the Cipher is constructed.
func (c *Cipher) Encrypt(plaintext string) string {
	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out)
}

// Decrypt reverses Encrypt. Malformed base64, a ciphertext that is not a
// positive multiple of the block size and invalid padding all collapse into
// ErrDecrypt.
func (c *Cipher) Decrypt(cipherBase64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(cipherBase64)
	if err != nil {
		return "", ErrDecrypt
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", ErrDecrypt
	}
	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)
	unpadded, err := unpadPKCS7(out, aes.BlockSize)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(unpadded), nil
}

func padPKCS7(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecrypt
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrDecrypt
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrDecrypt
		}
	}
	return data[:len(data)-n], nil
}
