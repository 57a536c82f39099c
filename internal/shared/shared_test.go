package shared

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestShared(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		t.Run("with nil writer defaults to stderr", func(t *testing.T) {
			logger := NewLogger(nil)
			if logger == nil {
				t.Fatal("expected logger to be created")
			}
		})

		t.Run("writes to the provided writer", func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf)
			logger.Info("hello")
			if !strings.Contains(buf.String(), "hello") {
				t.Errorf("expected log output to contain message, got %q", buf.String())
			}
		})
	})

	t.Run("NewFileLogger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "tui.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if logger == nil {
			t.Fatal("expected logger to be created")
		}
	})

	t.Run("GenerateID", func(t *testing.T) {
		a := GenerateID()
		b := GenerateID()
		if a == "" || b == "" {
			t.Fatal("expected non-empty IDs")
		}
		if a == b {
			t.Error("expected unique IDs")
		}
		if len(a) != 36 {
			t.Errorf("expected UUID string length 36, got %d", len(a))
		}
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		data := map[string]int{"n": 1}

		compact, err := MarshalJSON(data, false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if string(compact) != `{"n":1}` {
			t.Errorf("unexpected compact output: %s", compact)
		}

		pretty, err := MarshalJSON(data, true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(string(pretty), "\n") {
			t.Error("expected pretty output to be indented")
		}
	})
}
