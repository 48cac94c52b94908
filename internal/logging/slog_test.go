package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newTestLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	return NewSlogLogger(l), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	return m
}

func TestInfo_WritesMessageAndArgs(t *testing.T) {
	log, buf := newTestLogger()

	log.Info(context.Background(), "token issued", "session_id", "sess-1")

	m := decodeLine(t, buf)
	if m["msg"] != "token issued" {
		t.Fatalf("msg = %v", m["msg"])
	}
	if m["session_id"] != "sess-1" {
		t.Fatalf("session_id = %v", m["session_id"])
	}
	if m["level"] != "INFO" {
		t.Fatalf("level = %v", m["level"])
	}
}

func TestWith_ChildKeepsFields(t *testing.T) {
	log, buf := newTestLogger()

	child := log.With("module", "token_service")
	child.Error(context.Background(), "append failed")

	m := decodeLine(t, buf)
	if m["module"] != "token_service" {
		t.Fatalf("module = %v", m["module"])
	}
	if m["level"] != "ERROR" {
		t.Fatalf("level = %v", m["level"])
	}
}
