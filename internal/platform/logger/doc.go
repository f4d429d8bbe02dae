// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. Request handlers obtain a logger already tagged with the
// request's trace ID through FromContext.
package logger
