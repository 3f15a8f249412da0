package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir is a file-backed Store keeping one file per key under a data
// directory: <dir>/<key>.json. Each call reads or writes a whole file, so
// operations are atomic per call within one session.
type Dir struct {
	dir string
}

// NewDir returns a Store rooted at dir. The directory is created on the
// first write.
func NewDir(dir string) *Dir { return &Dir{dir: dir} }

func (s *Dir) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *Dir) Get(key string) (string, bool) {
	content, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(content), true
}

func (s *Dir) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

func (s *Dir) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not remove key %q: %w", key, err)
	}
	return nil
}

func (s *Dir) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list data directory %q: %w", s.dir, err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	return keys, nil
}
