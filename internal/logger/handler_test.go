package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"log/slog"
)

func TestOrderedHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newOrderedHandler(handlerConfig{
		level:    slog.LevelInfo,
		out:      buf,
		format:   formatKV,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})

	log := slog.New(handler).With("component", "bot")
	log.Info("test.event",
		slog.String("event", "test.event"),
		slog.String("status", "ok"),
		slog.Int64("chat_id", 42),
	)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	tokens := strings.Split(line, " ")
	expected := []string{"ts=", "level=INFO", "component=bot", "event=test.event", "status=ok", "chat_id=42"}
	if len(tokens) < len(expected) {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
}

func TestOrderedHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newOrderedHandler(handlerConfig{
		level:    slog.LevelInfo,
		out:      buf,
		format:   formatJSON,
		keyOrder: append([]string(nil), defaultKeyOrder...),
	})

	log := slog.New(handler).With("component", "db")
	log.Error("store.failed",
		slog.String("event", "store.failed"),
		slog.String("err", "boom"),
	)

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "{") {
		t.Fatalf("expected JSON, got %s", line)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["component"] != "db" || decoded["err"] != "boom" {
		t.Fatalf("unexpected fields: %v", decoded)
	}
	// component must appear before err per the key order
	if strings.Index(line, `"component"`) > strings.Index(line, `"err"`) {
		t.Fatalf("key order not preserved: %s", line)
	}
}

func TestOrderedHandlerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newOrderedHandler(handlerConfig{
		level:  slog.LevelWarn,
		out:    buf,
		format: formatKV,
	})
	slog.New(handler).Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected debug line to be filtered, got %q", buf.String())
	}
}
