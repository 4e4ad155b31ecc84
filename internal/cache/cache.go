package cache

import "context"

// Cache memoizes raw provider payloads keyed by the exact city string.
// Implementations must be safe for concurrent use; the foreground and
// periodic workers share one instance.
type Cache interface {
	// Get returns the cached payload for a city, or false when the city is
	// absent or its entry has expired.
	Get(ctx context.Context, city string) ([]byte, bool)

	// Set stores a payload for a city, evicting older entries as needed.
	Set(ctx context.Context, city string, payload []byte)

	// Len returns the number of live entries.
	Len(ctx context.Context) int
}
