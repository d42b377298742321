// ABOUTME: Badger-backed key-value store for progress day sets.
// ABOUTME: Stores each set as a sorted JSON string array under its key.
package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	badger "github.com/dgraph-io/badger/v3"
)

// Store persists named string sets in a local Badger database.
// A missing key reads as an empty set.
type Store struct {
	db *badger.DB
}

// Open opens or creates a Badger database at the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open progress store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetStringSet returns the set stored under key. A missing key yields an
// empty set and no error.
func (s *Store) GetStringSet(key string) (map[string]struct{}, error) {
	set := make(map[string]struct{})

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var values []string
			if err := json.Unmarshal(val, &values); err != nil {
				return fmt.Errorf("decode %s: %w", key, err)
			}
			for _, v := range values {
				set[v] = struct{}{}
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return set, nil
}

// SetStringSet stores the set under key, replacing any previous value.
// Members are sorted before encoding so the stored bytes are stable.
func (s *Store) SetStringSet(key string, set map[string]struct{}) error {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// DeleteKey removes a key. Deleting a missing key is not an error.
func (s *Store) DeleteKey(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
