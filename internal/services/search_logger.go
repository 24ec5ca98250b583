package services

import (
	"context"
	"log/slog"
)

type correlationIDKey struct{}

// WithCorrelationID attaches a correlation ID to the context for search
// lifecycle logging.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func getCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return "unknown"
}

// SearchLogger emits structured search lifecycle events
type SearchLogger struct {
	logger *slog.Logger
}

func NewSearchLogger(logger *slog.Logger) *SearchLogger {
	return &SearchLogger{
		logger: logger,
	}
}

func (sl *SearchLogger) LogSearchStarted(ctx context.Context, query string) {
	sl.logger.InfoContext(ctx, "transaction search started",
		slog.String("event_type", "search_started"),
		slog.Int("query_length", len(query)),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (sl *SearchLogger) LogInterpretationSucceeded(ctx context.Context, summary string, durationMs int64) {
	sl.logger.InfoContext(ctx, "query interpretation succeeded",
		slog.String("event_type", "interpretation_succeeded"),
		slog.String("summary", summary),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (sl *SearchLogger) LogInterpretationFailed(ctx context.Context, kind string, err error, durationMs int64) {
	sl.logger.WarnContext(ctx, "query interpretation failed, falling back to keyword matching",
		slog.String("event_type", "interpretation_failed"),
		slog.String("failure_kind", kind),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (sl *SearchLogger) LogSearchCompleted(ctx context.Context, total int64, fallback bool, durationMs int64) {
	sl.logger.InfoContext(ctx, "transaction search completed",
		slog.String("event_type", "search_completed"),
		slog.Int64("total_matches", total),
		slog.Bool("fallback", fallback),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (sl *SearchLogger) LogSearchFailed(ctx context.Context, err error, durationMs int64) {
	sl.logger.ErrorContext(ctx, "transaction search failed",
		slog.String("event_type", "search_failed"),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}
