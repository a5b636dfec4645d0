package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriter_ServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cart", "info", &buf)

	l.Info("hello")

	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if got := out["service"]; got != "cart" {
		t.Errorf("service = %v, want %q", got, "cart")
	}
	if got := out["msg"]; got != "hello" {
		t.Errorf("msg = %v, want %q", got, "hello")
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cart", "warn", &buf)

	l.Info("filtered out")
	if buf.Len() != 0 {
		t.Errorf("info line should be filtered at warn level, got %q", buf.String())
	}

	l.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn line should be written at warn level")
	}
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cart", "verbose", &buf)

	l.Debug("filtered out")
	if buf.Len() != 0 {
		t.Errorf("debug line should be filtered at default info level, got %q", buf.String())
	}

	l.Info("kept")
	if buf.Len() == 0 {
		t.Error("info line should be written at default info level")
	}
}
