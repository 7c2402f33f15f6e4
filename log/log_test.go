package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestModuleAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sub := l.Module("interp")
	sub.Info("dispatching opcode", "pc", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["module"] != "interp" {
		t.Fatalf("module = %v, want interp", entry["module"])
	}
	if entry["msg"] != "dispatching opcode" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "dispatching opcode")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected no output for filtered debug line, got %q", buf.String())
	}

	l.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected info line to be emitted, got %q", buf.String())
	}
}

type fakeOp string

func (f fakeOp) String() string { return string(f) }

func TestOpcodeAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.Opcode(fakeOp("ADD"), 7).Debug("unsupported opcode")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["opcode"] != "ADD" {
		t.Fatalf("opcode = %v, want ADD", entry["opcode"])
	}
	if entry["pc"] != float64(7) {
		t.Fatalf("pc = %v, want 7", entry["pc"])
	}
}

func TestSetDefaultAndPackageFuncs(t *testing.T) {
	var buf bytes.Buffer
	orig := Default()
	defer SetDefault(orig)

	SetDefault(NewWithHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Info("via package func")
	if !strings.Contains(buf.String(), "via package func") {
		t.Fatalf("expected package-level Info to hit default logger, got %q", buf.String())
	}
}
