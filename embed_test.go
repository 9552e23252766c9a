package shopdesk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smileynet/shopdesk/internal/config"
)

func TestDefaultConfigYAML_MatchesDefaults(t *testing.T) {
	// Given: the embedded config template
	data := DefaultConfigYAML()
	if len(data) == 0 {
		t.Fatal("embedded config is empty")
	}

	// When: it is parsed
	cfg, err := config.Parse(data, "defaults/config.yaml")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Then: it matches the compiled-in defaults
	if want := config.DefaultConfig(); *cfg != want {
		t.Errorf("embedded config = %+v, want %+v", *cfg, want)
	}
}

func TestDefaultConfigYAML_ReturnsCopy(t *testing.T) {
	a := DefaultConfigYAML()
	a[0] = 'X'
	if b := DefaultConfigYAML(); b[0] == 'X' {
		t.Error("DefaultConfigYAML shares its backing array")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := WriteDefaultConfig(path, false); err != nil {
		t.Fatalf("WriteDefaultConfig() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(DefaultConfigYAML()) {
		t.Error("written config differs from embedded config")
	}
}

func TestWriteDefaultConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("search: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteDefaultConfig(path, false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("WriteDefaultConfig() error = %v, want ErrConfigExists", err)
	}

	// With force the file is replaced.
	if err := WriteDefaultConfig(path, true); err != nil {
		t.Fatalf("WriteDefaultConfig(force) error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) == "search: {}\n" {
		t.Error("force did not overwrite the file")
	}
}
