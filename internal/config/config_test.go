package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing config must not be an error: %v", err)
	}
	if cfg.Report.Top != DefaultTopN {
		t.Fatalf("top = %d, want default %d", cfg.Report.Top, DefaultTopN)
	}
	if cfg.Keywords.MinLength != DefaultKeywordMinLen {
		t.Fatalf("min_length = %d, want default %d", cfg.Keywords.MinLength, DefaultKeywordMinLen)
	}
	if len(cfg.Keywords.Ignore) != 0 {
		t.Fatalf("ignore should default empty, got %v", cfg.Keywords.Ignore)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, "[report]\ntop = 3\n\n[keywords]\nmin_length = 4\nignore = [\"const\", \"static\"]\n")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Report.Top != 3 || cfg.Keywords.MinLength != 4 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
	if len(cfg.Keywords.Ignore) != 2 || cfg.Keywords.Ignore[0] != "const" {
		t.Fatalf("ignore list: %v", cfg.Keywords.Ignore)
	}
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	dir := writeConfig(t, "[report]\ntop = 0\n")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Report.Top != 0 {
		t.Fatalf("top = %d, want explicit 0", cfg.Report.Top)
	}
	if cfg.Keywords.MinLength != DefaultKeywordMinLen {
		t.Fatalf("min_length should keep default, got %d", cfg.Keywords.MinLength)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	dir := writeConfig(t, "[report\ntop = nope")
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), FileName) {
		t.Fatalf("expected parse error naming the file, got %v", err)
	}
}

func TestLoadUnknownKeysRejected(t *testing.T) {
	dir := writeConfig(t, "[report]\ntopn = 5\n")
	if _, err := Load(dir); err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Fatalf("expected unknown-key error, got %v", err)
	}
}

func TestLoadAggregatesValidationErrors(t *testing.T) {
	dir := writeConfig(t, "[report]\ntop = -1\n\n[keywords]\nmin_length = -2\nignore = [\" \"]\n")
	_, err := Load(dir)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"report.top", "keywords.min_length", "keywords.ignore[0]"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error should mention %q, got:\n%v", want, err)
		}
	}
}
