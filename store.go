package dotenv

import (
	"sync"
)

// ConstantTable is a write-once name/value table. Once a name is set it
// can never be changed or removed, which mirrors how named constants behave.
// Safe for concurrent use.
type ConstantTable struct {
	values sync.Map
}

// Has reports whether name has been defined.
func (t *ConstantTable) Has(name string) bool {
	_, ok := t.values.Load(name)
	return ok
}

// Set defines name. It fails with ErrConstantExists if name is already defined.
func (t *ConstantTable) Set(name, value string) error {
	if _, loaded := t.values.LoadOrStore(name, value); loaded {
		return ErrConstantExists
	}
	return nil
}

// Lookup returns the value of name and whether it is defined.
func (t *ConstantTable) Lookup(name string) (string, bool) {
	value, ok := t.values.Load(name)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Constants is the process-wide constants table used by Define.
var Constants = &ConstantTable{}

// Constant returns a process-wide constant created by Define.
// Thread-safe.
func Constant(name string) (string, bool) {
	return Constants.Lookup(name)
}

// MapStore is an in-memory Store. The zero value is ready to use.
// Safe for concurrent use.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[string]string)}
}

// Has reports whether key is present.
func (s *MapStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Set stores key, replacing any previous value. It never fails.
func (s *MapStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

// Get returns the value of key and whether it is present.
func (s *MapStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Delete removes key.
func (s *MapStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Map returns a copy of the stored values.
func (s *MapStore) Map() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// Server is the process-wide server metadata store used by ToServer.
var Server = NewMapStore()
