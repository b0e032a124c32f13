package core

// Logger is any service that can record diagnostics.
// expected args fmt: error | map[string]interface{} | Session
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
