package catalog

import (
	"os"

	"github.com/lmenard/dskit-mcp/internal/cache"
)

// ContentStore resolves file paths to their text through a bounded LRU
// cache, so memory stays bounded against an arbitrarily large corpus.
type ContentStore struct {
	cache *cache.Cache[string, string]
}

// NewContentStore creates a store whose cache holds at most capacity files.
func NewContentStore(capacity int) (*ContentStore, error) {
	c, err := cache.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &ContentStore{cache: c}, nil
}

// Read returns the text of the file at path, from cache when possible. The
// second return value is false when the file does not exist or cannot be
// read; a failed read is never an error at this layer.
func (s *ContentStore) Read(path string) (string, bool) {
	if text, ok := s.cache.Get(path); ok {
		return text, true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}

	text := string(data)
	s.cache.Set(path, text)
	return text, true
}

// Len returns the number of cached files.
func (s *ContentStore) Len() int {
	return s.cache.Len()
}

// Clear drops all cached content.
func (s *ContentStore) Clear() {
	s.cache.Clear()
}
