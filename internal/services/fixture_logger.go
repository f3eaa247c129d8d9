package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// FixtureLogger provides structured logging for fixture generation runs
type FixtureLogger struct {
	logger *slog.Logger
}

// NewFixtureLogger creates a new fixture logger
func NewFixtureLogger(logger *slog.Logger) FixtureLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &FixtureLogger{
		logger: logger,
	}
}

// LogGenerationStarted logs the start of a generation run
func (fl *FixtureLogger) LogGenerationStarted(ctx context.Context, runID uuid.UUID, path string, rowCount int) {
	fl.logger.InfoContext(ctx, "fixture generation started",
		slog.String("event_type", "fixture_generation_started"),
		slog.String("run_id", runID.String()),
		slog.String("path", path),
		slog.Int("row_count", rowCount),
		slog.Time("timestamp", time.Now()),
	)
}

// LogGenerationCompleted logs a successful generation run
func (fl *FixtureLogger) LogGenerationCompleted(ctx context.Context, runID uuid.UUID, path string, rowsWritten int, durationMs int64) {
	fl.logger.InfoContext(ctx, "fixture generation completed",
		slog.String("event_type", "fixture_generation_completed"),
		slog.String("run_id", runID.String()),
		slog.String("path", path),
		slog.Int("rows_written", rowsWritten),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}

// LogGenerationFailed logs a failed generation run. The output file may be truncated.
func (fl *FixtureLogger) LogGenerationFailed(ctx context.Context, runID uuid.UUID, path string, rowsWritten int, errorMsg string, durationMs int64) {
	fl.logger.ErrorContext(ctx, "fixture generation failed",
		slog.String("event_type", "fixture_generation_failed"),
		slog.String("run_id", runID.String()),
		slog.String("path", path),
		slog.Int("rows_written", rowsWritten),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
	)
}
