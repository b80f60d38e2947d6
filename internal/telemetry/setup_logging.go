// Copyright 2024 Google, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package telemetry wires up the observability stack: structured JSON
// logging correlated with trace spans, and the OpenTelemetry trace and
// metric providers.
package telemetry

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

// SetupLogging installs a JSON slog handler as the default logger. Log lines
// go to stdout and to a local app.log file, and every line emitted inside an
// active span is stamped with the trace and span ids so logs can be joined
// with traces.
func SetupLogging() {
	logFile, err := os.OpenFile("app.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}

	writer := io.MultiWriter(os.Stdout, logFile)
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{})
	slog.SetDefault(slog.New(withSpanContext(handler)))
}

// spanContextLogHandler is a slog.Handler decorator that adds the active
// span's identifiers to every record.
type spanContextLogHandler struct {
	slog.Handler
}

func withSpanContext(handler slog.Handler) *spanContextLogHandler {
	return &spanContextLogHandler{Handler: handler}
}

// Handle overrides slog.Handler.Handle to inject trace correlation fields
// when a valid span context is present.
func (t *spanContextLogHandler) Handle(ctx context.Context, record slog.Record) error {
	if s := trace.SpanContextFromContext(ctx); s.IsValid() {
		record.AddAttrs(
			slog.Any("trace_id", s.TraceID()),
			slog.Any("span_id", s.SpanID()),
			slog.Bool("trace_sampled", s.TraceFlags().IsSampled()),
		)
	}
	return t.Handler.Handle(ctx, record)
}
