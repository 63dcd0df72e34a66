package processor

import "log/slog"

// LoggingObserver logs every lifecycle event through structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a logging observer; a nil logger means slog.Default()
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
// Aborted runs are logged at Info too: the diagnostic itself is reported by the caller
func (lo *LoggingObserver) OnEvent(event Event) {
	lo.logger.Info("csv_lifecycle",
		"event", event.Type,
		"run_id", event.RunID,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
