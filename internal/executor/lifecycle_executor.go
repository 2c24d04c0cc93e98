package executor

import (
	"log/slog"
	"strings"
)

func (x *Executor) executeShowTables() (*Result, error) {
	names := x.registry.Names()
	if len(names) == 0 {
		return &Result{Message: MsgNoTables}, nil
	}
	return &Result{Message: strings.Join(names, "\n")}, nil
}

// executeStop flushes every table. Flush failures are logged by the
// registry and do not change the outcome.
func (x *Executor) executeStop() (*Result, error) {
	if err := x.registry.SaveAll(); err != nil {
		slog.Error("flush on stop incomplete", slog.Any("error", err))
	}
	return &Result{Message: MsgGoodbye, Terminal: true}, nil
}

// executePurge drops every table from memory and deletes every table file.
func (x *Executor) executePurge() (*Result, error) {
	removed, err := x.registry.Purge()
	if err != nil {
		slog.Error("purge incomplete", slog.Any("error", err))
	}
	return &Result{Message: MsgPurgedGoodbye, RowsAffected: removed, Terminal: true}, nil
}
