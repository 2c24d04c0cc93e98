package manager

import (
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/domain/schema"
	"github.com/leengari/tabledb/internal/storage/engine"
)

// Registry holds every live table by name in a thread-safe way.
// Table contents are guarded by each table's own lock; the registry lock only
// covers the name → table map.
type Registry struct {
	mu            sync.RWMutex
	tables        map[string]*schema.Table
	storageEngine engine.StorageEngine
}

// NewRegistry creates an empty registry backed by the given storage engine.
func NewRegistry(storageEngine engine.StorageEngine) *Registry {
	return &Registry{
		tables:        make(map[string]*schema.Table),
		storageEngine: storageEngine,
	}
}

// Load populates the registry from the storage engine and returns the number
// of tables loaded. Tables already registered under the same name are kept.
func (r *Registry) Load() (int, error) {
	tables, err := r.storageEngine.LoadTables()
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, t := range tables {
		if _, ok := r.tables[t.Name]; ok {
			continue
		}
		r.tables[t.Name] = t
		n++
	}
	return n, nil
}

// Create registers a new empty table. Check and insert happen under one lock,
// so of two concurrent creates for the same name exactly one succeeds.
func (r *Registry) Create(name string, columns []schema.Column) (*schema.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[name]; ok {
		return nil, dberrors.NewTableExists(name)
	}

	t := schema.NewTable(name, columns)
	r.tables[name] = t
	return t, nil
}

// Get returns the table registered under name.
func (r *Registry) Get(name string) (*schema.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, dberrors.NewTableNotFound("", name)
	}
	return t, nil
}

// Names returns the registered table names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered tables ordered by name.
func (r *Registry) All() []*schema.Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]*schema.Table, 0, len(r.tables))
	for _, t := range r.tables {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables
}

// Len returns the number of registered tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}

// Flush persists one table. Failures are logged and returned; the in-memory
// state stays authoritative either way.
// The registry read lock is held for the whole save so a save never lands
// after Purge; a table no longer registered under its name is not written.
func (r *Registry) Flush(t *schema.Table) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.tables[t.Name] != t {
		slog.Debug("skipping save of unregistered table", slog.String("table", t.Name))
		return nil
	}

	if err := r.storageEngine.SaveTable(t); err != nil {
		slog.Error("failed to save table", "table", t.Name, "error", err)
		return err
	}
	return nil
}

// SaveAll persists every registered table in parallel.
func (r *Registry) SaveAll() error {
	var g errgroup.Group
	for _, t := range r.All() {
		g.Go(func() error {
			return r.Flush(t)
		})
	}
	return g.Wait()
}

// Purge forgets every table and deletes every table file.
func (r *Registry) Purge() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.tables)
	return r.storageEngine.Purge()
}
