// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the order-keeper binaries. Entries are
// JSON with a "role" field naming the binary and a "func" caller field.
// Request-scoped loggers travel in the context, see FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MKhiriev/go-order-keeper/models"
)

// clientLogFile is created next to the client executable.
const clientLogFile = "logs"

type Logger struct {
	zerolog.Logger
}

// NewLogger returns a debug-level logger writing to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger is [NewLogger] for the headless client: entries go to a
// "logs" file next to the executable, falling back to stdout.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout

	execPath, err := os.Executable()
	if err == nil {
		path := filepath.Join(filepath.Dir(execPath), clientLogFile)
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForPage returns a child logger tagged with the page, reason, session and
// trace id of req.
func (l *Logger) ForPage(req models.PageRequest) *Logger {
	return &Logger{l.With().
		Int("page", req.Page).
		Str("reason", string(req.Reason)).
		Uint64("session", req.Session).
		Str("trace_id", req.RequestID).
		Logger()}
}

// FromRequest returns the logger the trace id middleware attached to r.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
