package commons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
)

func TestApplyEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nDIALCODES_TEST_A = alpha\nnot a pair\nDIALCODES_TEST_B=b=c\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv("DIALCODES_TEST_A", "")
	t.Setenv("DIALCODES_TEST_B", "")

	if err := applyEnvFile(path); err != nil {
		t.Fatalf("applyEnvFile returned error: %v", err)
	}
	if got := os.Getenv("DIALCODES_TEST_A"); got != "alpha" {
		t.Errorf("Expected alpha, got %q", got)
	}
	if got := os.Getenv("DIALCODES_TEST_B"); got != "b=c" {
		t.Errorf("Expected b=c, got %q", got)
	}
}

func TestApplyEnvFileMissing(t *testing.T) {
	if err := applyEnvFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected error for missing env file")
	}
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("DIALCODES_TEST_SET", "value")
	t.Setenv("DIALCODES_TEST_EMPTY", "")

	if got := GetEnv("DIALCODES_TEST_SET", "fallback"); got != "value" {
		t.Errorf("Expected value, got %q", got)
	}
	if got := GetEnv("DIALCODES_TEST_EMPTY", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}
	if got := GetEnv("DIALCODES_TEST_EMPTY"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug": log.DEBUG,
		"INFO":  log.INFO,
		"Warn":  log.WARN,
		"ERROR": log.ERROR,
		"off":   log.OFF,
		"":      log.INFO,
		"noisy": log.INFO,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}
