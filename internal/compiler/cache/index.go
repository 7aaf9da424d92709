package cache

import (
	"sort"
	"sync"
)

// Index remembers the content hash of every file written in this process.
// It is safe for concurrent use by the per-component generation workers.
type Index struct {
	hashes map[string]string
	mu     sync.RWMutex
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{hashes: make(map[string]string)}
}

// Get returns the recorded hash for path
func (idx *Index) Get(path string) (string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	hash, ok := idx.hashes[path]
	return hash, ok
}

// Set records the hash for path
func (idx *Index) Set(path, hash string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.hashes[path] = hash
}

// Remove forgets path
func (idx *Index) Remove(path string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.hashes, path)
}

// Paths returns every recorded path in sorted order
func (idx *Index) Paths() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	paths := make([]string, 0, len(idx.hashes))
	for path := range idx.hashes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Size returns the number of recorded paths
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.hashes)
}
