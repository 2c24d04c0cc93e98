package storage

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-git/go-billy/v6"

	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/storage/metadata"
)

// LoadTable reads and validates one table file.
func LoadTable(fs billy.Filesystem, path string) (*schema.Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	meta, err := metadata.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	table, err := meta.ToTable()
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	slog.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("rows", len(table.Rows)),
	)

	return table, nil
}
