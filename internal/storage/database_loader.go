package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v6"
	"golang.org/x/sync/errgroup"

	"github.com/leengari/tabledb/internal/domain/schema"
)

// Root is the directory, relative to the filesystem root, that holds table files.
const Root = "/"

// TableFileName returns the file name backing table name.
func TableFileName(name, ext string) string {
	return name + "." + ext
}

// TablePath returns the path of the file backing table name.
func TablePath(name, ext string) string {
	return path.Join(Root, TableFileName(name, ext))
}

// ListTableFiles returns the table files (by extension) found under Root.
// A missing directory yields no files.
func ListTableFiles(fs billy.Filesystem, ext string) ([]string, error) {
	entries, err := fs.ReadDir(Root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	suffix := "." + ext
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// LoadTables loads every table file in parallel. A file that cannot be
// decoded, or whose table name does not match its file name, is logged and
// skipped; only failing to list the directory is an error.
func LoadTables(fs billy.Filesystem, ext string) ([]*schema.Table, error) {
	files, err := ListTableFiles(fs, ext)
	if err != nil {
		return nil, err
	}

	loaded := make([]*schema.Table, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, name := range files {
		g.Go(func() error {
			table, err := LoadTable(fs, path.Join(Root, name))
			if err != nil {
				slog.Error("skipping unreadable table file",
					slog.String("file", name),
					slog.Any("error", err),
				)
				return nil
			}
			if TableFileName(table.Name, ext) != name {
				slog.Error("skipping table file with mismatched name",
					slog.String("file", name),
					slog.String("table", table.Name),
				)
				return nil
			}
			loaded[i] = table
			return nil
		})
	}
	_ = g.Wait()

	tables := make([]*schema.Table, 0, len(loaded))
	for _, t := range loaded {
		if t != nil {
			tables = append(tables, t)
		}
	}

	slog.Info("tables loaded",
		slog.Int("files", len(files)),
		slog.Int("table_count", len(tables)),
	)

	return tables, nil
}
