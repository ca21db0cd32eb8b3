package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"doctor-booking-server/internal/config"
)

func TestNew_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&config.Config{Environment: "production", LogLevel: "info"}, &buf)

	log.Info().Str("k", "v").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["k"] != "v" || entry["service"] != "doctor-booking" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&config.Config{Environment: "production", LogLevel: "warn"}, &buf)

	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}

	log = newWithWriter(&config.Config{Environment: "production", LogLevel: "bogus"}, &buf)
	log.Info().Msg("kept")
	if buf.Len() == 0 {
		t.Error("expected unknown level to fall back to info")
	}
}
