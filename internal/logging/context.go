package logging

import "context"

type contextKey struct{}

// WithLogData returns a context carrying the request's LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, contextKey{}, logData)
}

// GetLogData returns the LogData stored on the context, or nil when the
// request went through no logging wrapper (tests, scripts).
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(contextKey{}).(*LogData)
	return logData
}
