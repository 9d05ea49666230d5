package cache

import (
	"context"
	"time"
)

// ArchiveTextCache caches the extracted plain text of bookmark archives,
// keyed by bookmark ID. Content search reads archive text lazily; the
// cache keeps repeated intext() queries from decompressing archives on
// every evaluation.
type ArchiveTextCache interface {
	// GetText returns the cached text. ok is false on a miss.
	GetText(ctx context.Context, bookmarkID string) (text string, ok bool, err error)
	// SetText caches the text for ttl.
	SetText(ctx context.Context, bookmarkID string, text string, ttl time.Duration) error
	// DeleteText drops the cached text, after archive changes.
	DeleteText(ctx context.Context, bookmarkID string) error
}
