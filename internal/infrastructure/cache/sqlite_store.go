package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/logan/internal/domain"
	"github.com/doeshing/logan/internal/infrastructure/config"
	"github.com/doeshing/logan/internal/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS entries (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStore is a key-value store in a single SQLite file. Every operation
// opens the database, acts and closes it again; no handle outlives a call.
// Concurrent writers from separate processes are serialized by SQLite's own
// file lock.
type SQLiteStore struct {
	path string
	log  ports.Logger
}

// Info describes the on-disk cache file.
type Info struct {
	Path      string
	SizeBytes int64
	Exists    bool
	Entries   int
}

// NewSQLiteStore returns a store backed by the file at path.
func NewSQLiteStore(path string, log ports.Logger) *SQLiteStore {
	return &SQLiteStore{path: path, log: log}
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Get returns the document stored under key. Any failure is a miss.
func (s *SQLiteStore) Get(ctx context.Context, key string) (domain.Document, bool) {
	var doc domain.Document
	err := s.withDB(ctx, false, func(db *sql.DB) error {
		var raw []byte
		if err := db.QueryRowContext(ctx, "SELECT value FROM entries WHERE key = ?", key).Scan(&raw); err != nil {
			return err
		}
		decoded, err := config.Decode(raw, s.path)
		if err != nil {
			return err
		}
		doc = decoded
		return nil
	})
	if err != nil {
		s.degraded("get", key, err)
		return nil, false
	}
	return doc, true
}

// Contains reports whether key is present. Any failure reports false.
func (s *SQLiteStore) Contains(ctx context.Context, key string) bool {
	found := false
	err := s.withDB(ctx, false, func(db *sql.DB) error {
		var one int
		if err := db.QueryRowContext(ctx, "SELECT 1 FROM entries WHERE key = ?", key).Scan(&one); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		s.degraded("contains", key, err)
		return false
	}
	return found
}

// Put replaces the entry under key. It reports whether the write succeeded.
func (s *SQLiteStore) Put(ctx context.Context, key string, doc domain.Document) bool {
	raw, err := config.Encode(doc)
	if err != nil {
		s.degraded("put", key, err)
		return false
	}
	err = s.withDB(ctx, true, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			"INSERT OR REPLACE INTO entries (key, value, updated_at) VALUES (?, ?, ?)",
			key, raw, time.Now().UTC().Format(time.RFC3339))
		return err
	})
	if err != nil {
		s.degraded("put", key, err)
		return false
	}
	return true
}

// Delete removes key from the store. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	err := s.withDB(ctx, false, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, "DELETE FROM entries WHERE key = ?", key)
		return err
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Info reports the cache file size and entry count.
func (s *SQLiteStore) Info(ctx context.Context) (Info, error) {
	info := Info{Path: s.path}
	stat, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return info, nil
		}
		return info, err
	}
	info.Exists = true
	info.SizeBytes = stat.Size()
	err = s.withDB(ctx, false, func(db *sql.DB) error {
		return db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&info.Entries)
	})
	return info, err
}

// withDB opens the store, ensures the schema and runs fn, closing the
// database on every path. Unless create is set, a missing file is reported
// as os.ErrNotExist instead of being created.
func (s *SQLiteStore) withDB(ctx context.Context, create bool, fn func(*sql.DB) error) (err error) {
	if create {
		if err := os.MkdirAll(filepath.Dir(s.path), domain.DirectoryPermissions); err != nil {
			return err
		}
	} else if _, err := os.Stat(s.path); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", s.path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	return fn(db)
}

func (s *SQLiteStore) degraded(op, key string, err error) {
	if s.log == nil {
		return
	}
	fields := map[string]interface{}{"op": op, "key": key, "path": s.path}
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, os.ErrNotExist) {
		s.log.Debug("cache miss", fields)
		return
	}
	s.log.Warn("cache unavailable, falling back: "+err.Error(), fields)
}

var _ ports.ActionCache = (*SQLiteStore)(nil)
