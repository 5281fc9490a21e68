// ABOUTME: Charm KV backend for cloud-synced Curriculum and Todos tables
// ABOUTME: Each table is one JSON document; writes overwrite it and sync if enabled
package charm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"

	"github.com/harper/momprep/internal/models"
)

// Table keys
const (
	CurriculumKey = "table:curriculum"
	TodosKey      = "table:todos"
)

// Config holds charm client configuration
type Config struct {
	Host     string
	DBName   string
	AutoSync bool
}

var errClosed = errors.New("charm kv is closed")

// Client stores tables in charm KV
type Client struct {
	kv     *kv.KV
	config *Config
	mu     sync.Mutex
}

// NewClient opens the charm KV database and pulls remote data when AutoSync is on
func NewClient(cfg *Config) (*Client, error) {
	// charm reads the host from the environment when opening KV
	if err := os.Setenv("CHARM_HOST", cfg.Host); err != nil {
		return nil, fmt.Errorf("failed to set CHARM_HOST: %w", err)
	}

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	c := &Client{kv: db, config: cfg}
	if cfg.AutoSync {
		// stale local data is still usable, so a failed pull is not fatal
		_ = db.Sync()
	}
	return c, nil
}

// Close closes the KV database
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

// Curriculum returns the Curriculum table
func (c *Client) Curriculum(ctx context.Context) ([]models.CurriculumItem, error) {
	items := []models.CurriculumItem{}
	if err := c.getTable(CurriculumKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceCurriculum overwrites the Curriculum table
func (c *Client) ReplaceCurriculum(ctx context.Context, items []models.CurriculumItem) error {
	if items == nil {
		items = []models.CurriculumItem{}
	}
	return c.setTable(CurriculumKey, items)
}

// Todos returns the Todos table
func (c *Client) Todos(ctx context.Context) ([]models.TodoItem, error) {
	items := []models.TodoItem{}
	if err := c.getTable(TodosKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceTodos overwrites the Todos table
func (c *Client) ReplaceTodos(ctx context.Context, items []models.TodoItem) error {
	if items == nil {
		items = []models.TodoItem{}
	}
	return c.setTable(TodosKey, items)
}

// getTable decodes a table document; a missing key leaves dest untouched
func (c *Client) getTable(key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv == nil {
		return errClosed
	}

	data, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get key %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (c *Client) setTable(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv == nil {
		return errClosed
	}
	if err := c.kv.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	if c.config.AutoSync {
		if err := c.kv.Sync(); err != nil {
			return fmt.Errorf("failed to sync %s: %w", key, err)
		}
	}
	return nil
}

// Sync manually triggers a sync with the cloud
func (c *Client) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv == nil {
		return errClosed
	}
	return c.kv.Sync()
}

// Reset wipes all local data; cloud data is pulled again on next sync
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv == nil {
		return errClosed
	}
	return c.kv.Reset()
}

// Host returns the configured charm host
func (c *Client) Host() string {
	return c.config.Host
}

// ID returns the charm user ID
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// AuthorizedKeys returns the list of linked devices/keys
func (c *Client) AuthorizedKeys() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.AuthorizedKeys()
}
