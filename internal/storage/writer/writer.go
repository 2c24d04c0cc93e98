package writer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/util"

	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/storage"
	"github.com/leengari/tabledb/internal/storage/metadata"
)

// Writer persists tables as one file each. Writes for the same table name
// are serialized; Purge excludes every write.
type Writer struct {
	fs  billy.Filesystem
	ext string

	mu      sync.RWMutex // shared by SaveTable, exclusive for Purge
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates a writer over fs using ext as the table file extension.
func New(fs billy.Filesystem, ext string) *Writer {
	return &Writer{
		fs:    fs,
		ext:   ext,
		locks: make(map[string]*sync.Mutex),
	}
}

func (w *Writer) tableLock(name string) *sync.Mutex {
	w.locksMu.Lock()
	defer w.locksMu.Unlock()

	l, ok := w.locks[name]
	if !ok {
		l = &sync.Mutex{}
		w.locks[name] = l
	}
	return l
}

// SaveTable writes the table's current schema and rows to its file using a
// temp file and rename. The snapshot is taken after the per-table lock is
// held, so the last writer to finish always wrote the newest rows.
func (w *Writer) SaveTable(t *schema.Table) error {
	if t == nil {
		return fmt.Errorf("cannot save nil table")
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	l := w.tableLock(t.Name)
	l.Lock()
	defer l.Unlock()

	meta, err := metadata.Snapshot(t)
	if err != nil {
		return fmt.Errorf("failed to snapshot table %s: %w", t.Name, err)
	}

	b, err := meta.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal table %s: %w", t.Name, err)
	}

	target := storage.TablePath(t.Name, w.ext)
	tmpPath := target + ".tmp"

	if err := util.WriteFile(w.fs, tmpPath, b, 0644); err != nil {
		return fmt.Errorf("failed to write temp file for table %s: %w", t.Name, err)
	}

	if err := w.fs.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to rename temp → %s for table %s: %w", target, t.Name, err)
	}

	slog.Debug("table saved",
		slog.String("table", t.Name),
		slog.String("path", target),
		slog.Int64("row_count", meta.RowCount),
	)

	return nil
}

// Purge deletes every table file (and leftover temp file) and returns how
// many files were removed.
func (w *Writer) Purge() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries, err := w.fs.ReadDir(storage.Root)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read data directory: %w", err)
	}

	suffix := "." + w.ext
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(name, suffix) && !strings.HasSuffix(name, suffix+".tmp") {
			continue
		}
		if err := w.fs.Remove(path.Join(storage.Root, name)); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", name, err)
		}
		removed++
	}

	slog.Info("data directory purged", slog.Int("files_removed", removed))
	return removed, nil
}
