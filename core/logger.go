package core

// Logger is the logging contract used across the app.
// args may contain errors, map[string]interface{} extras or domain objects understood by the implementation.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
