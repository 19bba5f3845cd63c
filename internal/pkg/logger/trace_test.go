package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"strings"
	"testing"
)

func TestContextHandlerAddsTraceAndUser(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-abc")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")
	l.InfoContext(ctx, "hello")

	out := buf.String()
	if !strings.Contains(out, `"trace_id":"trace-abc"`) {
		t.Fatalf("expected trace id in output, got %s", out)
	}
	if !strings.Contains(out, `"user_id":"user-1"`) {
		t.Fatalf("expected user id in output, got %s", out)
	}
}

func TestRemoteFilterHandlerDropsUntracedRecords(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&RemoteFilterHandler{next: log.NewJSONHandler(&buf, nil)})

	l.Info("no trace")
	if buf.Len() != 0 {
		t.Fatalf("expected untraced record to be dropped, got %s", buf.String())
	}

	l.Info("traced", TraceIDKey, "job-1")
	if !strings.Contains(buf.String(), "job-1") {
		t.Fatalf("expected traced record to pass, got %s", buf.String())
	}
}

func TestNewTraceContextPrefix(t *testing.T) {
	ctx := NewTraceContext(context.Background(), "job")
	id, _ := ctx.Value(TraceIDKey).(string)
	if !strings.HasPrefix(id, "job-") || len(id) <= len("job-") {
		t.Fatalf("unexpected trace id %q", id)
	}
}
