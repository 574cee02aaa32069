package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store is a keyed JSON store backed by one file per key under dataDir.
// Every read and write of the same key is serialized behind that key's
// mutex; different keys never block one another. Writes go through a
// temporary file and an atomic rename, so a reader observes either the
// previous or the fully written value.
type Store struct {
	dataDir string

	mu    sync.Mutex // guards locks and cache
	locks map[string]*sync.Mutex
	cache map[string][]byte
}

// New creates the data directory if needed and returns a ready store.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
		cache:   make(map[string][]byte),
	}, nil
}

// lockFor returns the mutex owning the given key, creating it on first use.
// Waiters queue on the mutex instead of polling.
func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// Read unmarshals the current value of key into v. A missing file leaves v
// untouched so the caller applies defaults. A corrupt file is archived
// under a timestamped name and treated as missing; corruption is never an
// error for the caller.
func (s *Store) Read(key string, v interface{}) error {
	l := s.lockFor(key)
	l.Lock()
	defer l.Unlock()

	data, err := s.loadLocked(key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Cached bytes are only ever stored after a successful
		// marshal, so this is a shape mismatch, not corruption.
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// Write serializes v and atomically replaces the value of key.
func (s *Store) Write(key string, v interface{}) error {
	l := s.lockFor(key)
	l.Lock()
	defer l.Unlock()
	return s.storeLocked(key, v)
}

// ErrNoChange aborts an Update without writing. It is not surfaced to the
// caller; Update returns nil.
var ErrNoChange = errors.New("store: no change")

// Update runs fn as a locked read-modify-write on key: the current value is
// decoded into v, fn mutates it, and the result is persisted before the
// lock is released. If fn returns an error nothing is written.
func (s *Store) Update(key string, v interface{}, fn func() error) error {
	l := s.lockFor(key)
	l.Lock()
	defer l.Unlock()

	data, err := s.loadLocked(key)
	if err != nil {
		return err
	}
	if data != nil {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to decode %s: %w", key, err)
		}
	}
	if err := fn(); err != nil {
		if errors.Is(err, ErrNoChange) {
			return nil
		}
		return err
	}
	return s.storeLocked(key, v)
}

// loadLocked returns the serialized value of key, consulting the cache
// first. Caller must hold the key lock. A nil, nil return means no data.
func (s *Store) loadLocked(key string) ([]byte, error) {
	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	path := s.path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !json.Valid(data) {
		s.archiveCorrupt(path)
		return nil, nil
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return data, nil
}

// storeLocked marshals v, writes it to a temporary file and renames it over
// the real one. The cache is only updated after the rename succeeds.
// Caller must hold the key lock.
func (s *Store) storeLocked(key string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

// archiveCorrupt moves a file that failed to parse aside so its contents
// survive for manual recovery.
func (s *Store) archiveCorrupt(path string) {
	backup := fmt.Sprintf("%s.corrupted.%d", path, time.Now().UnixMilli())
	if err := os.Rename(path, backup); err != nil {
		log.Printf("Failed to archive corrupted file %s: %v", path, err)
		return
	}
	log.Printf("Archived corrupted file %s to %s", path, backup)
}
