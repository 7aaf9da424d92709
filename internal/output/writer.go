// Package output persists generated modules.
package output

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/stencil-elm/elmproxy/internal/compiler/cache"
)

// Status reports what a write did
type Status int

const (
	// StatusWritten means the file was created or its content replaced
	StatusWritten Status = iota
	// StatusUnchanged means the file already had the same content
	StatusUnchanged
)

func (s Status) String() string {
	if s == StatusUnchanged {
		return "unchanged"
	}
	return "written"
}

// Writer persists generated module source
type Writer interface {
	Write(path string, content []byte) (Status, error)
}

// FSWriter writes to an afero filesystem and skips files whose content is
// already up to date. It is safe for concurrent use.
type FSWriter struct {
	fs     afero.Fs
	hasher *cache.FileHasher
	index  *cache.Index
}

// NewFSWriter creates a writer for fs
func NewFSWriter(fs afero.Fs) *FSWriter {
	return &FSWriter{
		fs:     fs,
		hasher: cache.NewFileHasher(fs),
		index:  cache.NewIndex(),
	}
}

// NewDryRunWriter creates a writer that compares against fs but keeps every
// write in memory
func NewDryRunWriter(fs afero.Fs) *FSWriter {
	return NewFSWriter(afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs()))
}

// Fs returns the filesystem the writer writes to
func (w *FSWriter) Fs() afero.Fs { return w.fs }

func (w *FSWriter) Write(path string, content []byte) (Status, error) {
	hash := w.hasher.HashContent(content)
	if w.upToDate(path, hash) {
		w.index.Set(path, hash)
		return StatusUnchanged, nil
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return StatusWritten, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(w.fs, path, content, 0o644); err != nil {
		return StatusWritten, fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.index.Set(path, hash)
	return StatusWritten, nil
}

// Written returns every path this writer has produced or confirmed, sorted
func (w *FSWriter) Written() []string {
	return w.index.Paths()
}

func (w *FSWriter) upToDate(path, hash string) bool {
	if recorded, ok := w.index.Get(path); ok && recorded == hash {
		if _, err := w.fs.Stat(path); err == nil {
			return true
		}
	}

	existing, err := w.hasher.HashFile(path)
	return err == nil && existing == hash
}
