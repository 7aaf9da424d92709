package watch

import (
	"context"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/stencil-elm/elmproxy/internal/compiler/cache"
)

// BuildFunc runs one full generation
type BuildFunc func(ctx context.Context) error

// RebuildResult describes one rebuild attempt
type RebuildResult struct {
	// Changed lists the files whose content differed from the last build
	Changed []string
	// Skipped is set when no file content changed
	Skipped  bool
	Duration time.Duration
}

// Rebuilder reruns generation only when a watched file's content changed.
// Touching a file without altering it does not trigger a build.
type Rebuilder struct {
	hasher *cache.FileHasher
	index  *cache.Index
	build  BuildFunc
	logger *zap.Logger
	mu     sync.Mutex
}

// NewRebuilder creates a rebuilder reading files from fs
func NewRebuilder(fs afero.Fs, build BuildFunc, logger *zap.Logger) *Rebuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rebuilder{
		hasher: cache.NewFileHasher(fs),
		index:  cache.NewIndex(),
		build:  build,
		logger: logger,
	}
}

// Prime records the current content of files without building
func (r *Rebuilder) Prime(files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.changed(files)
}

// Rebuild runs the build if any of files changed since the last call.
// Builds never overlap.
func (r *Rebuilder) Rebuild(ctx context.Context, files []string) (*RebuildResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	result := &RebuildResult{Changed: r.changed(files)}

	if len(result.Changed) == 0 {
		result.Skipped = true
		result.Duration = time.Since(start)
		r.logger.Debug("content unchanged, skipping regeneration", zap.Strings("files", files))
		return result, nil
	}

	err := r.build(ctx)
	result.Duration = time.Since(start)
	if err != nil {
		// Forget the new hashes so the next save retries the build.
		for _, f := range result.Changed {
			r.index.Remove(f)
		}
		return result, err
	}

	r.logger.Info("regenerated modules",
		zap.Strings("changed", result.Changed),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// changed updates the index and returns the files whose hash moved. A file
// that can no longer be read counts as changed.
func (r *Rebuilder) changed(files []string) []string {
	var changed []string
	for _, f := range files {
		hash, err := r.hasher.HashFile(f)
		if err != nil {
			if _, ok := r.index.Get(f); ok {
				r.index.Remove(f)
				changed = append(changed, f)
			}
			continue
		}
		if prev, ok := r.index.Get(f); ok && prev == hash {
			continue
		}
		r.index.Set(f, hash)
		changed = append(changed, f)
	}
	return changed
}
