package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "view").With("backend", "png")

	log.Warnf("column %d escaped", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "view" {
		t.Errorf("Expected component 'view', got %v", entry["component"])
	}
	if entry["backend"] != "png" {
		t.Errorf("Expected backend 'png', got %v", entry["backend"])
	}
	if entry["level"] != "WARN" {
		t.Errorf("Expected level WARN, got %v", entry["level"])
	}
	if entry["msg"] != "column 12 escaped" {
		t.Errorf("Unexpected message %v", entry["msg"])
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "test")
	log.Infof("a")
	log.Errorf("b")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], `"level":"ERROR"`) {
		t.Errorf("Expected ERROR level, got %s", lines[1])
	}
}
