package cache

import "sync"

// MemoryRequestCacher mirrors RedisRequestCacher without a Redis server.
type MemoryRequestCacher struct {
	MaxNumber int

	mu      sync.Mutex
	entries map[string][]string
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{MaxNumber: maxNumber, entries: make(map[string][]string)}
}

func (cacher *MemoryRequestCacher) Write(key string, value []byte) error {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	values := append([]string{string(value)}, cacher.entries[key]...)
	if len(values) > cacher.MaxNumber {
		values = values[:cacher.MaxNumber]
	}
	cacher.entries[key] = values

	return nil
}

func (cacher *MemoryRequestCacher) Read(key string) ([]string, error) {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	values := make([]string, len(cacher.entries[key]))
	copy(values, cacher.entries[key])

	return values, nil
}
