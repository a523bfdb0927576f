package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
fields = ["TPE1", "TIT2"]
extensions = [".mp3", ".flac"]
watch = true
summary = false
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", fc.LogLevel)
	}
	if !reflect.DeepEqual(fc.Fields, []string{"TPE1", "TIT2"}) {
		t.Errorf("Fields = %v", fc.Fields)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Error("Watch not parsed")
	}
	if fc.Summary == nil || *fc.Summary {
		t.Error("Summary not parsed")
	}
}

func TestLoadFileConfig_BadTOML(t *testing.T) {
	path := writeConfig(t, "log_level = [broken")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyFileConfig_RespectsChangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	watch := true
	fc := FileConfig{
		LogLevel: "debug",
		Fields:   []string{"TALB"},
		Watch:    &watch,
	}

	// --log-level was set explicitly on the command line; the file value
	// must not override it.
	ApplyFileConfig(&cfg, fc, map[string]bool{"log-level": true})

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want flag value preserved", cfg.LogLevel)
	}
	if !reflect.DeepEqual(cfg.Fields, []string{"TALB"}) {
		t.Errorf("Fields = %v, want file value applied", cfg.Fields)
	}
	if !cfg.Watch {
		t.Error("Watch = false, want file value applied")
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "")
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
	if FileExists(filepath.Join(t.TempDir(), "absent.toml")) {
		t.Error("FileExists = true for missing file")
	}
}
