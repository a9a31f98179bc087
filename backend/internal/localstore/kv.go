// ============================================================================
// backend/internal/localstore/kv.go
// File-backed key-value store, the browser localStorage analogue
// ============================================================================

package localstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const snapshotFile = "localstore.json"

// KV is a flat string-to-string store persisted as a single JSON snapshot.
// Every mutation rewrites the snapshot; reads are served from memory.
// An empty directory path makes the store memory-only, which is how tests
// get isolated per-case instances.
type KV struct {
	mu   sync.RWMutex
	path string
	data map[string]string
}

// Open loads (or initializes) the store under dir. A corrupt snapshot is
// logged and replaced with an empty store rather than failing the open.
func Open(dir string) (*KV, error) {
	kv := &KV{data: make(map[string]string)}

	if dir == "" {
		return kv, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	kv.path = filepath.Join(dir, snapshotFile)

	raw, err := os.ReadFile(kv.path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, fmt.Errorf("failed to read store snapshot: %w", err)
	}

	if err := json.Unmarshal(raw, &kv.data); err != nil {
		log.Printf("Warning: corrupt store snapshot at %s, starting empty: %v", kv.path, err)
		kv.data = make(map[string]string)
	}
	return kv, nil
}

// Get returns the value for key and whether it was present.
func (kv *KV) Get(key string) (string, bool) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.data[key]
	return value, ok
}

// Set stores value under key, overwriting any prior value.
func (kv *KV) Set(key, value string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = value
	kv.flushLocked()
}

// Delete removes key. Removing an absent key is a no-op, not an error.
func (kv *KV) Delete(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.data, key)
	kv.flushLocked()
}

// Keys returns all stored keys in sorted order so scans are deterministic.
func (kv *KV) Keys() []string {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	keys := make([]string, 0, len(kv.data))
	for k := range kv.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// flushLocked writes the snapshot. Storage failures (disk full, quota) are
// logged and swallowed: persistence here is opportunistic and must never
// fail the in-memory operation.
func (kv *KV) flushLocked() {
	if kv.path == "" {
		return
	}

	raw, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		log.Printf("Warning: failed to encode store snapshot: %v", err)
		return
	}
	if err := os.WriteFile(kv.path, raw, 0o644); err != nil {
		log.Printf("Warning: failed to write store snapshot: %v", err)
	}
}
