package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestNewContextWithLogger_WritesToWriter(t *testing.T) {
	var buf syncBuffer
	ctx, flush := NewContextWithLogger(context.Background(), false, &buf)

	FromCtx(ctx).Info().Str("key", "value").Msg("hello")
	FromCtx(ctx).Debug().Msg("hidden")
	flush()

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("expected log line, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level, got %q", out)
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "causette.log")

	ctx, flush, err := NewFileLogger(context.Background(), true, path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	FromCtx(ctx).Debug().Msg("to file")
	flush()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q, want line", string(data))
	}
}

func TestNewFileLogger_BadPath(t *testing.T) {
	_, flush, err := NewFileLogger(context.Background(), false, filepath.Join(t.TempDir(), "missing", "x.log"))
	defer flush()
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
