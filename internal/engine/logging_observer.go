package engine

import "log/slog"

// LoggingObserver writes command events to a slog logger.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver logs to logger, or to slog.Default() when logger is nil.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent logs at debug level, except for failed flushes which are warnings.
func (lo *LoggingObserver) OnEvent(event Event) {
	attrs := []any{
		slog.String("event", string(event.Type)),
		slog.String("command_id", event.CommandID),
		slog.Uint64("seq", event.Seq),
	}

	if fd, ok := event.Data.(FlushData); ok {
		attrs = append(attrs,
			slog.String("table", fd.Table),
			slog.Duration("duration", fd.Duration),
		)
		if fd.Err != nil {
			lo.logger.Warn("table not persisted", append(attrs, slog.Any("error", fd.Err))...)
			return
		}
		lo.logger.Debug("command_lifecycle", attrs...)
		return
	}

	lo.logger.Debug("command_lifecycle", append(attrs, slog.Any("data", event.Data))...)
}
