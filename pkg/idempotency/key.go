package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

const (
	MinKeyLength = 16
	MaxKeyLength = 128
	KeyPrefix    = "idempotency"
)

var (
	ErrKeyTooShort = errors.New("idempotency key must be at least 16 characters")
	ErrKeyTooLong  = errors.New("idempotency key must not exceed 128 characters")
	ErrKeyInvalid  = errors.New("idempotency key contains invalid characters")
	// ErrKeyReused means the key was already seen with a different request body.
	ErrKeyReused = errors.New("idempotency key reused with a different payload")

	validKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
)

func Validate(key string) error {
	switch {
	case len(key) < MinKeyLength:
		return ErrKeyTooShort
	case len(key) > MaxKeyLength:
		return ErrKeyTooLong
	case !validKeyPattern.MatchString(key):
		return ErrKeyInvalid
	}

	return nil
}

// BuildCacheKey scopes a client key to the request target so that the same key
// sent to two different table sessions never collides.
func BuildCacheKey(method, path, idempotencyKey string) string {
	hash := sha256.Sum256(fmt.Appendf(nil, "%s:%s:%s", method, path, idempotencyKey))

	return KeyPrefix + ":" + hex.EncodeToString(hash[:])
}

func LockKey(cacheKey string) string {
	return cacheKey + ":lock"
}

// Fingerprint hashes a request body for reuse detection.
func Fingerprint(body []byte) string {
	hash := sha256.Sum256(body)

	return hex.EncodeToString(hash[:])
}
