package command

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter numbers commands in arrival order for the life of the process.
var seqCounter uint64

// Command is the tracing context of one processed command line.
type Command struct {
	ID        string    // UUID, carried on every lifecycle event
	Seq       uint64    // arrival order
	Text      string    // raw command line
	StartTime time.Time // when processing began
}

// New creates a command context with a fresh ID.
func New(text string) *Command {
	return &Command{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Text:      text,
		StartTime: time.Now(),
	}
}

// Elapsed returns the time since the command started.
func (c *Command) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}
