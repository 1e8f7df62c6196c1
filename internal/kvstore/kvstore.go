package kvstore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a string-keyed JSON store backed by sqlite. It mirrors the
// semantics of web storage: whole-value overwrite on every Set, values
// survive restarts, keys are namespaced by the caller's prefix.
type Store struct {
	db     *sql.DB
	prefix string
}

// Open opens (and initializes) a store at path. All keys are stored under
// the given namespace prefix so unrelated callers sharing the same file
// cannot collide.
func Open(path, prefix string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv_entries (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init kv table: %w", err)
	}

	return &Store{db: db, prefix: prefix}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) namespaced(key string) string {
	return s.prefix + ":" + key
}

// Set marshals v to JSON and overwrites the value under key.
func (s *Store) Set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}

	_, err = s.db.Exec(`INSERT INTO kv_entries (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.namespaced(key), string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Get unmarshals the value under key into out. Returns (false, nil) when the
// key is absent.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv_entries WHERE key = ?`,
		s.namespaced(key)).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

// Delete removes the value under key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv_entries WHERE key = ?`, s.namespaced(key))
	return err
}

// Clear removes every key in this store's namespace.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv_entries WHERE key LIKE ?`, s.prefix+":%")
	return err
}
