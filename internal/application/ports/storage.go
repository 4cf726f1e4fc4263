package ports

import (
	"context"
	"time"
)

// Storage is the object-store boundary of the upload pipeline. Any
// key-addressed blob store with public and signed URL derivation satisfies it.
type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string, overwrite bool) error
	PublicURL(key string) string
	SignedURL(ctx context.Context, key string, ttl time.Duration, downloadName string) (string, error)
	// Remove deletes best-effort and reports how many keys went away.
	Remove(ctx context.Context, keys []string) int
}
