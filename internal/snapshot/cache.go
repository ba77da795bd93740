// Package snapshot is the on-disk cache of previously fetched boards, lists
// and cards. It only saves downloads; the remote service stays the source of
// truth.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/termllo/internal/models"
)

// ErrNotFound is returned when no usable snapshot exists for a key.
// Expired snapshots are reported the same way.
var ErrNotFound = errors.New("snapshot not found")

// BoardsKey holds the starred board list
const BoardsKey = "boards"

// ListsKey is the key of a board's lists
func ListsKey(boardID string) string { return "lists:" + boardID }

// CardsKey is the key of a board's cards
func CardsKey(boardID string) string { return "cards:" + boardID }

// Store is what the loader needs from a snapshot cache
type Store interface {
	// Read decodes the snapshot for key into out and reports when it was
	// saved. It returns ErrNotFound on a miss and *models.CacheReadError when
	// the snapshot exists but cannot be read.
	Read(ctx context.Context, key string, out any) (time.Time, error)
	Write(ctx context.Context, key string, records any) error
	Invalidate(keys ...string)
}

// entry is the memoized state of one key
type entry struct {
	payload []byte
	savedAt time.Time
	missing bool
}

// Cache is a SQLite-backed Store. Each key is loaded from disk at most once
// per process; later reads are served from memory until Invalidate.
type Cache struct {
	db     *sql.DB
	maxAge time.Duration
	now    func() time.Time

	mu   sync.Mutex
	memo map[string]entry
}

// Option configures a Cache
type Option func(*Cache)

// WithMaxAge makes snapshots older than d a miss. Zero disables expiry.
func WithMaxAge(d time.Duration) Option {
	return func(c *Cache) { c.maxAge = d }
}

// WithClock replaces time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New wraps an initialized database
func New(db *sql.DB, opts ...Option) *Cache {
	c := &Cache{
		db:   db,
		now:  time.Now,
		memo: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Store = (*Cache)(nil)

// Read implements Store
func (c *Cache) Read(ctx context.Context, key string, out any) (time.Time, error) {
	e, err := c.load(ctx, key)
	if err != nil {
		return time.Time{}, err
	}
	if e.missing {
		return time.Time{}, ErrNotFound
	}
	if c.maxAge > 0 && c.now().Sub(e.savedAt) > c.maxAge {
		return time.Time{}, ErrNotFound
	}
	if err := sonic.ConfigStd.Unmarshal(e.payload, out); err != nil {
		return time.Time{}, &models.CacheReadError{Key: key, Err: fmt.Errorf("failed to decode: %w", err)}
	}
	return e.savedAt, nil
}

// load returns the memoized entry for key, reading the row on first use
func (c *Cache) load(ctx context.Context, key string) (entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.memo[key]; ok {
		return e, nil
	}

	var (
		payload []byte
		savedAt int64
	)
	err := c.db.QueryRowContext(ctx,
		"SELECT payload, saved_at FROM snapshots WHERE key = ?", key).Scan(&payload, &savedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		e := entry{missing: true}
		c.memo[key] = e
		return e, nil
	case err != nil:
		// Not memoized so a transient failure can recover on the next read
		return entry{}, &models.CacheReadError{Key: key, Err: err}
	}

	e := entry{payload: payload, savedAt: time.UnixMilli(savedAt)}
	c.memo[key] = e
	return e, nil
}

// Write implements Store. The memo is updated so the next Read sees records.
func (c *Cache) Write(ctx context.Context, key string, records any) error {
	payload, err := sonic.ConfigStd.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", key, err)
	}
	savedAt := c.now()

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, payload, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
	`, key, payload, savedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}

	c.mu.Lock()
	c.memo[key] = entry{payload: payload, savedAt: time.UnixMilli(savedAt.UnixMilli())}
	c.mu.Unlock()
	return nil
}

// Invalidate forgets the memoized state of keys so the next Read goes to disk
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.memo, k)
	}
}

// Info describes one stored snapshot
type Info struct {
	Key     string    `json:"key"`
	Size    int       `json:"size"`
	SavedAt time.Time `json:"savedAt"`
	Expired bool      `json:"expired"`
}

// GetID returns the snapshot key
func (i Info) GetID() string { return i.Key }

// List returns every stored snapshot, newest first
func (c *Cache) List(ctx context.Context) ([]Info, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT key, length(payload), saved_at FROM snapshots ORDER BY saved_at DESC, key")
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var (
			info    Info
			savedAt int64
		)
		if err := rows.Scan(&info.Key, &info.Size, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		info.SavedAt = time.UnixMilli(savedAt)
		info.Expired = c.maxAge > 0 && c.now().Sub(info.SavedAt) > c.maxAge
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Clear deletes every snapshot and returns how many were removed
func (c *Cache) Clear(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM snapshots")
	if err != nil {
		return 0, fmt.Errorf("failed to clear snapshots: %w", err)
	}

	c.mu.Lock()
	c.memo = make(map[string]entry)
	c.mu.Unlock()

	return res.RowsAffected()
}

// Disabled is a Store that never hits, used when caching is turned off
type Disabled struct{}

var _ Store = Disabled{}

// Read always misses
func (Disabled) Read(context.Context, string, any) (time.Time, error) {
	return time.Time{}, ErrNotFound
}

// Write discards the records
func (Disabled) Write(context.Context, string, any) error { return nil }

// Invalidate does nothing
func (Disabled) Invalidate(...string) {}
