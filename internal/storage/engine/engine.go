package engine

import (
	"fmt"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/osfs"

	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/storage"
	"github.com/leengari/tabledb/internal/storage/writer"
)

// DefaultExtension is the table file extension used when none is configured.
const DefaultExtension = "tbl"

// StorageEngine is the persistence boundary the table registry depends on.
type StorageEngine interface {
	LoadTables() ([]*schema.Table, error)
	SaveTable(t *schema.Table) error
	Purge() (int, error)
}

// FileEngine stores each table as one file on a billy filesystem.
type FileEngine struct {
	fs     billy.Filesystem
	ext    string
	writer *writer.Writer
}

// New wraps fs. An empty ext falls back to DefaultExtension.
func New(fs billy.Filesystem, ext string) *FileEngine {
	if ext == "" {
		ext = DefaultExtension
	}
	return &FileEngine{
		fs:     fs,
		ext:    ext,
		writer: writer.New(fs, ext),
	}
}

// NewOSEngine stores tables under dir on the local disk, creating it if needed.
func NewOSEngine(dir, ext string) (*FileEngine, error) {
	fs := osfs.New(dir)
	if err := fs.MkdirAll(storage.Root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return New(fs, ext), nil
}

// NewMemoryEngine keeps table files in memory. Used by tests.
func NewMemoryEngine(ext string) *FileEngine {
	return New(memfs.New(), ext)
}

func (e *FileEngine) LoadTables() ([]*schema.Table, error) {
	return storage.LoadTables(e.fs, e.ext)
}

func (e *FileEngine) SaveTable(t *schema.Table) error {
	return e.writer.SaveTable(t)
}

func (e *FileEngine) Purge() (int, error) {
	return e.writer.Purge()
}
