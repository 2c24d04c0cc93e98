package engine

import "time"

// EventType names a phase of command processing.
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
	EventFlush      EventType = "flush"
)

// Event is emitted once per phase. All events of one command share
// CommandID and Seq; Seq grows with arrival order across the process.
//
// Data depends on Type: the raw command line for parse_start, the statement
// type for parse_end, a FlushData for flush and counters for exec_end.
type Event struct {
	Type      EventType
	CommandID string
	Seq       uint64
	Timestamp time.Time
	Data      interface{}
}

// FlushData describes the save that followed a mutation.
type FlushData struct {
	Table    string
	Duration time.Duration
	Err      error
}

// Observer receives events synchronously on the goroutine running the
// command, so implementations must be safe for concurrent use.
type Observer interface {
	OnEvent(event Event)
}
