package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// genFile is a single rendered file pending write.
type genFile struct {
	name string // file name relative to the target directory
	src  []byte // rendered, unformatted source
}

// writer formats and writes rendered files in parallel.
type writer struct {
	target  string
	workers int
}

func newWriter(target string) *writer {
	return &writer{target: target, workers: runtime.GOMAXPROCS(0)}
}

// writeFiles formats and writes every file, bounded by the worker count.
func (w *writer) writeFiles(ctx context.Context, files []genFile) error {
	if err := os.MkdirAll(w.target, 0o755); err != nil {
		return NewGenerationError("", w.target, "create target directory", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f)
			}
		})
	}
	return eg.Wait()
}

// writeFile formats one file with goimports and writes it.
func (w *writer) writeFile(f genFile) error {
	fullPath := filepath.Join(w.target, f.name)
	formatted, err := imports.Process(fullPath, f.src, nil)
	if err != nil {
		return NewGenerationError("", f.name, "format", err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return NewGenerationError("", f.name, "write", err)
	}
	return nil
}
