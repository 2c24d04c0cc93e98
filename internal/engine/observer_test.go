package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/leengari/tabledb/internal/domain/command"
	"github.com/leengari/tabledb/internal/executor"
	storageengine "github.com/leengari/tabledb/internal/storage/engine"
	"github.com/leengari/tabledb/internal/storage/manager"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	mu     sync.Mutex
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

func (m *MockObserver) types() []EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]EventType, len(m.Events))
	for i, e := range m.Events {
		out[i] = e.Type
	}
	return out
}

func TestAddObserver(t *testing.T) {
	eng := New(nil, executor.Options{})
	observer := &MockObserver{}

	eng.AddObserver(observer)

	assert.Equal(t, len(eng.observers), 1)
}

func TestRemoveObserver(t *testing.T) {
	eng := New(nil, executor.Options{})
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	assert.Equal(t, len(eng.observers), 0)
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(nil, executor.Options{})

	// Should not panic
	eng.notify(command.New("SHOW"), EventParseStart, nil)
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New(nil, executor.Options{})
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	eng.notify(command.New("SHOW TABLES"), EventParseStart, "SHOW TABLES")

	assert.Equal(t, len(observer1.Events), 1)
	assert.Equal(t, len(observer2.Events), 1)
	assert.Equal(t, observer1.Events[0].Type, EventParseStart)
	assert.Equal(t, observer2.Events[0].Type, EventParseStart)
}

func TestEventTimestamp(t *testing.T) {
	eng := New(nil, executor.Options{})
	observer := &MockObserver{}
	eng.AddObserver(observer)

	eng.notify(command.New("SHOW"), EventParseStart, nil)

	assert.Assert(t, !observer.Events[0].Timestamp.IsZero())
}

func TestLifecycleEvents(t *testing.T) {
	eng := New(manager.NewRegistry(storageengine.NewMemoryEngine("")), executor.Options{})
	observer := &MockObserver{}
	eng.AddObserver(observer)

	t.Run("mutation emits flush", func(t *testing.T) {
		observer.Events = nil
		assert.Equal(t, eng.Process("CREATE_TABLE t ( id INT )"), "SUCCESS")
		assert.DeepEqual(t, observer.types(), []EventType{
			EventParseStart, EventParseEnd, EventExecStart, EventExecEnd, EventFlush,
		})

		ids := map[string]bool{}
		seqs := map[uint64]bool{}
		for _, e := range observer.Events {
			ids[e.CommandID] = true
			seqs[e.Seq] = true
		}
		assert.Equal(t, len(ids), 1)
		assert.Equal(t, len(seqs), 1)
		assert.Equal(t, observer.Events[0].Data, "CREATE_TABLE t ( id INT )")

		flush, ok := observer.Events[4].Data.(FlushData)
		assert.Assert(t, ok)
		assert.Equal(t, flush.Table, "t")
		assert.NilError(t, flush.Err)
	})

	t.Run("seq follows arrival order", func(t *testing.T) {
		observer.Events = nil
		eng.Process("SHOW")
		eng.Process("SHOW")
		assert.Equal(t, len(observer.Events), 8)
		assert.Assert(t, observer.Events[4].Seq > observer.Events[0].Seq)
	})

	t.Run("read has no flush", func(t *testing.T) {
		observer.Events = nil
		assert.Equal(t, eng.Process("SELECT * FROM t"), "NO_ROWS_FOUND")
		assert.DeepEqual(t, observer.types(), []EventType{
			EventParseStart, EventParseEnd, EventExecStart, EventExecEnd,
		})
	})

	t.Run("parse failure stops early", func(t *testing.T) {
		observer.Events = nil
		assert.Equal(t, eng.Process("FROB t"), "INVALID_COMMAND")
		assert.DeepEqual(t, observer.types(), []EventType{EventParseStart})
	})
}

func TestLoggingObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lo := NewLoggingObserver(logger)

	lo.OnEvent(Event{Type: EventParseStart, CommandID: "c1", Seq: 7, Data: "SHOW"})
	out := buf.String()
	assert.Assert(t, strings.Contains(out, "command_id=c1"), out)
	assert.Assert(t, strings.Contains(out, "seq=7"), out)
	assert.Assert(t, strings.Contains(out, "level=DEBUG"), out)

	buf.Reset()
	lo.OnEvent(Event{Type: EventFlush, CommandID: "c2", Seq: 8, Data: FlushData{
		Table:    "users",
		Duration: time.Millisecond,
		Err:      errors.New("disk full"),
	}})
	out = buf.String()
	assert.Assert(t, strings.Contains(out, "level=WARN"), out)
	assert.Assert(t, strings.Contains(out, "table=users"), out)
	assert.Assert(t, strings.Contains(out, "disk full"), out)
}
