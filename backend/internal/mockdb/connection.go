// ============================================================================
// backend/internal/mockdb/connection.go
// Simulated connection state, persisted for page-reload continuity
// ============================================================================

package mockdb

import (
	"errors"
	"log"
	"sync"

	"progresstrack/backend/internal/localstore"
)

const (
	connStringKey   = "mongodb_connection_string"
	connStatusKey   = "mongodb_connection_status"
	connectedMarker = "connected"
)

// ErrNoConnectionString is returned by Connect when no connection string
// was supplied this session and none is recoverable from persisted state.
var ErrNoConnectionString = errors.New("connection string not provided")

// Conn tracks whether a "remote" connection is established. No network
// dial ever occurs; this is a deliberate simulation boundary. The state
// is advisory only: it gates warnings, never collection operations.
type Conn struct {
	mu         sync.Mutex
	kv         *localstore.KV
	dbName     string
	connString string
	connected  bool
}

// NewConn creates a connection state manager persisting into kv.
func NewConn(kv *localstore.KV, dbName string) *Conn {
	return &Conn{kv: kv, dbName: dbName}
}

// SetConnectionString stores the string for later Connect calls. Any
// non-empty string is accepted; no validation is performed.
func (c *Conn) SetConnectionString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connString = s
	c.kv.Set(connStringKey, s)
	log.Println("Connection string set")
}

// Connect marks the state connected and persists the marker. It fails
// only when no connection string is available.
func (c *Conn) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connString == "" {
		if saved, ok := c.kv.Get(connStringKey); ok && saved != "" {
			c.connString = saved
		} else {
			return ErrNoConnectionString
		}
	}

	log.Printf("Connecting to database: %s", c.dbName)
	c.connected = true
	c.kv.Set(connStatusKey, connectedMarker)
	return nil
}

// Disconnect clears both the in-memory flag and the persisted marker.
func (c *Conn) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connected = false
	c.kv.Delete(connStatusKey)
	log.Println("Connection closed")
}

// IsConnected reports the in-memory flag OR'd with the persisted marker.
// A surviving marker alone is enough to report connected, even if Connect
// was never called this session.
func (c *Conn) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if status, ok := c.kv.Get(connStatusKey); ok && status == connectedMarker {
		c.connected = true
	}
	return c.connected
}

// ConnectionString returns the current connection string.
func (c *Conn) ConnectionString() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connString
}
