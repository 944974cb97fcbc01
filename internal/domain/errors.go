package domain

import "errors"

var (
	// ErrMissingMerchantID indicates the client was constructed without a
	// merchant id. Fatal at construction.
	ErrMissingMerchantID = errors.New("merchant id is required")

	// ErrMissingEncryptionKey indicates the client was constructed without
	// an encryption key. Fatal at construction.
	ErrMissingEncryptionKey = errors.New("encryption key is required")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateOrder indicates an order with the same order number
	// already exists.
	ErrDuplicateOrder = errors.New("order already exists")
)
