package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smileynet/shopdesk/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "json", slog.LevelDebug))

	log.Debug("customer created", "id", "c1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "customer created" || entry["id"] != "c1" {
		t.Errorf("entry = %v", entry)
	}
}

func TestNewHandler_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, "text", slog.LevelWarn))

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level:\n%s", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("warn line missing:\n%s", out)
	}
}

func TestNew_FileOutput(t *testing.T) {
	// Given: a log file path in a temp directory
	path := filepath.Join(t.TempDir(), "shopdesk.log")

	// When: a logger is built and used
	log, closer, err := New(config.Log{Level: "debug", Format: "text", File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug("customer deleted", "id", "c9")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Then: the line lands in the file
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "customer deleted") {
		t.Errorf("log file = %q", data)
	}
}

func TestNew_NoFileDiscards(t *testing.T) {
	log, closer, err := New(config.Log{Level: "info", Format: "text"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()
	if log.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger reports enabled")
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New(config.Log{Level: "loud"}); err == nil {
		t.Fatal("New() with bad level should return error")
	}
}
