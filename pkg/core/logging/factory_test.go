package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/strview/foundation/core/log"
	"github.com/msto63/strview/pkg/core/config"
)

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("NewRunID() returned the same ID twice")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewRunID() = %q is not a UUID: %v", a, err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName: "strview-test",
		Level:       "info",
		Format:      "json",
		Output:      &buf,
		RunID:       "run-1",
	})

	logger.Debug("hidden")
	logger.Info("visible", mdwlog.String("op", "find"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected exactly one JSON entry, got %q: %v", buf.String(), err)
	}
	if entry["logger"] != "strview-test" || entry["run_id"] != "run-1" || entry["op"] != "find" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewLogger_Fallbacks(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: "loud", Format: "xml"})
	if logger.GetLevel() != mdwlog.LevelWarn {
		t.Errorf("level = %v, want warn fallback", logger.GetLevel())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.General.LogFormat = "text"

	var buf bytes.Buffer
	logger := FromConfig(cfg, false, &buf)
	if logger.GetLevel() != mdwlog.LevelWarn {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}

	verbose := FromConfig(cfg, true, &buf)
	if verbose.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("verbose level = %v, want debug", verbose.GetLevel())
	}

	verbose.Debug("details")
	if !bytes.Contains(buf.Bytes(), []byte("{strview}")) || !bytes.Contains(buf.Bytes(), []byte("(run=")) {
		t.Errorf("text entry missing name or run ID: %q", buf.String())
	}
}
