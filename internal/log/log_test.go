package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Info(context.Background(), "hello", "user", "test")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	if !strings.Contains(line, "ts=") {
		t.Fatalf("expected timestamp field in log line, got %q", line)
	}
	if !strings.Contains(line, "level=info") {
		t.Fatalf("expected level field in log line, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") {
		t.Fatalf("expected message field in log line, got %q", line)
	}
	if !strings.Contains(line, "user=test") {
		t.Fatalf("expected structured field in log line, got %q", line)
	}
}

func TestRequestIDIsAttachedFromContext(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	ctx := WithRequestID(context.Background(), "req-42")
	Warn(ctx, "slow query", "table", "recipes")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, "level=warn") {
		t.Fatalf("expected warn level in log line, got %q", line)
	}
	if !strings.Contains(line, "request_id=req-42") {
		t.Fatalf("expected request id in log line, got %q", line)
	}
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID() = %q, want %q", got, "req-42")
	}
	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID() on bare context = %q, want empty", got)
	}
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() {
		_ = SetLevel("info")
	})

	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: " WARN ", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "", want: slog.LevelInfo},
		{level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		err := SetLevel(tt.level)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("SetLevel(%q) expected error", tt.level)
			}
			continue
		}
		if err != nil {
			t.Fatalf("SetLevel(%q) error = %v", tt.level, err)
		}
		if got := levelVar.Level(); got != tt.want {
			t.Fatalf("SetLevel(%q) level = %s, want %s", tt.level, got, tt.want)
		}
	}
}
