package types

// Logger is the structured logger used by the engine and its worker pool.
//
// Fields are passed as alternating keys and values, the convention of
// log/slog; internal/logging adapts a *slog.Logger to this interface and also
// provides no-op and test implementations.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// Fatal logs at error level and terminates the process. The test logger
	// fails the running test instead.
	Fatal(msg string, keysAndValues ...any)
}
