package memhost

import (
	"context"
	"sync"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/ports"
)

// Store is an in-memory ports.KeyValueStore
type Store struct {
	mu      sync.Mutex
	values  map[domain.StorageScope]map[string][]byte
	failGet error
	failSet error
	writes  int
}

// Verify interface compliance at compile time
var _ ports.KeyValueStore = (*Store)(nil)

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{values: make(map[domain.StorageScope]map[string][]byte)}
}

// FailReads makes Get return err; nil restores normal behavior
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failGet = err
}

// FailWrites makes Set return err; nil restores normal behavior
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSet = err
}

// Writes returns the number of successful Set calls
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Get implements ports.KeyValueReader
func (s *Store) Get(_ context.Context, scope domain.StorageScope, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet != nil {
		return nil, s.failGet
	}
	v, ok := s.values[scope][key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements ports.KeyValueWriter
func (s *Store) Set(_ context.Context, scope domain.StorageScope, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSet != nil {
		return s.failSet
	}
	if s.values[scope] == nil {
		s.values[scope] = make(map[string][]byte)
	}
	s.values[scope][key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Remove implements ports.KeyValueWriter
func (s *Store) Remove(_ context.Context, scope domain.StorageScope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values[scope], key)
	return nil
}

// Close implements ports.KeyValueStore
func (s *Store) Close() error {
	return nil
}
