// Package log provides the logging abstraction for tgship components.
//
// The Logger interface can be implemented by any logging library. A zerolog
// console adapter and a no-op logger are provided:
//
//	logger := log.NewZerologAdapter()
//
// or, to silence all diagnostics:
//
//	logger := log.NewNoopLogger()
//
// Implement the four level methods to integrate an existing logging setup:
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
