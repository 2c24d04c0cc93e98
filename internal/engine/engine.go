package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leengari/tabledb/internal/domain/command"
	dberrors "github.com/leengari/tabledb/internal/domain/errors"
	"github.com/leengari/tabledb/internal/executor"
	"github.com/leengari/tabledb/internal/parser"
	storageengine "github.com/leengari/tabledb/internal/storage/engine"
	"github.com/leengari/tabledb/internal/storage/manager"
)

// Error markers returned on the command channel.
const (
	MsgTableExists   = "TABLE_EXISTS"
	MsgTableNotFound = "TABLE_NOT_FOUND"
	MsgInvalid       = "INVALID_COMMAND"
)

// Engine is the main entry point for the database system.
// It is safe for concurrent use.
type Engine struct {
	registry *manager.Registry
	executor *executor.Executor

	mu        sync.RWMutex
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance over an already loaded registry
func New(registry *manager.Registry, opts executor.Options) *Engine {
	return &Engine{
		registry:  registry,
		executor:  executor.New(registry, opts),
		observers: make([]Observer, 0),
	}
}

// Open builds a registry on storageEngine, loads every persisted table and
// returns an engine over it.
func Open(storageEngine storageengine.StorageEngine, opts executor.Options) (*Engine, error) {
	registry := manager.NewRegistry(storageEngine)
	n, err := registry.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	slog.Info("engine ready", slog.Int("tables", n))
	return New(registry, opts), nil
}

// Registry returns the table registry the engine executes against
func (e *Engine) Registry() *manager.Registry {
	return e.registry
}

// Execute parses and runs one command and returns the structured result.
// Mutations are flushed to storage before Execute returns; a failed flush is
// logged and does not fail the command. A panic anywhere in the pipeline is
// reported as an invalid command.
func (e *Engine) Execute(line string) (result *executor.Result, err error) {
	cmd := command.New(line)

	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered panic while executing command",
				slog.String("command_id", cmd.ID),
				slog.Uint64("seq", cmd.Seq),
				slog.Any("panic", r),
			)
			result = nil
			err = dberrors.Invalid("", fmt.Sprintf("internal error: %v", r))
		}
	}()

	// 1. Parse
	e.notify(cmd, EventParseStart, cmd.Text)
	stmt, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	e.notify(cmd, EventParseEnd, fmt.Sprintf("%T", stmt))

	// 2. Execute
	e.notify(cmd, EventExecStart, nil)
	result, err = e.executor.Execute(stmt)
	if err != nil {
		return nil, err
	}
	e.notify(cmd, EventExecEnd, map[string]interface{}{
		"rows_affected": result.RowsAffected,
		"rows_returned": len(result.Rows),
		"elapsed":       cmd.Elapsed().String(),
	})

	// 3. Flush
	if result.Modified != nil {
		start := time.Now()
		flushErr := e.registry.Flush(result.Modified)
		e.notify(cmd, EventFlush, FlushData{
			Table:    result.Modified.Name,
			Duration: time.Since(start),
			Err:      flushErr,
		})
	}

	return result, nil
}

// Handle runs one command and returns its rendered output and whether the
// caller loop must stop.
func (e *Engine) Handle(line string) (string, bool) {
	result, err := e.Execute(line)
	if err != nil {
		slog.Debug("command rejected", slog.String("command", line), slog.Any("error", err))
		return Render(err), false
	}
	return result.String(), result.Terminal
}

// Process runs one command and returns exactly the text written back to the
// caller.
func (e *Engine) Process(line string) string {
	out, _ := e.Handle(line)
	return out
}

// Render maps an execution error to its result marker.
func Render(err error) string {
	switch {
	case errors.Is(err, dberrors.ErrTableNotFound):
		return MsgTableNotFound
	case errors.Is(err, dberrors.ErrTableExists):
		return MsgTableExists
	default:
		return MsgInvalid
	}
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends one event of cmd to all registered observers
func (e *Engine) notify(cmd *command.Command, typ EventType, data interface{}) {
	event := Event{
		Type:      typ,
		CommandID: cmd.ID,
		Seq:       cmd.Seq,
		Timestamp: time.Now(),
		Data:      data,
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
