package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for a payload under a namespace. Payloads are
// hashed so arbitrarily long input texts produce fixed-size keys.
func Key(namespace, payload string) string {
	hash := sha256.Sum256([]byte(payload))
	return "argumenta:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
