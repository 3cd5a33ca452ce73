package aquarium

import "sync"

// keyedMutex serializes work per aquarium ID.
type keyedMutex struct {
	// mu protects entries.
	mu sync.Mutex
	// entries holds one lock per aquarium currently in use.
	entries map[int64]*keyedEntry
}

// keyedEntry is a lock with the number of goroutines holding or waiting on it.
type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// newKeyedMutex creates an empty keyedMutex.
func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		entries: make(map[int64]*keyedEntry),
	}
}

// Lock blocks until the key is free and returns the matching unlock function.
func (k *keyedMutex) Lock(key int64) (unlock func()) {
	k.mu.Lock()

	entry, ok := k.entries[key]
	if !ok {
		entry = new(keyedEntry)
		k.entries[key] = entry
	}

	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		k.mu.Lock()
		defer k.mu.Unlock()

		entry.refs--
		if entry.refs == 0 {
			delete(k.entries, key)
		}
	}
}

// size returns the number of keys currently tracked.
func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.entries)
}
