package kv

import "sync"

// Mem is an in-memory Store, used as the test double for Dir.
type Mem struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem { return &Mem{values: make(map[string]string)} }

func (s *Mem) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *Mem) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *Mem) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Mem) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys, nil
}
