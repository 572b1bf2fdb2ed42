package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestSaveDefaultConfigCreatesExampleTemplate(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	tmpConfig := filepath.Join(t.TempDir(), "create-template.yaml")
	cfgFile = tmpConfig
	viper.Reset()

	var out bytes.Buffer
	if err := saveDefaultConfig(&out); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}
	if !strings.Contains(out.String(), "New config file created at: "+tmpConfig) {
		t.Fatalf("unexpected output: %q", out.String())
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	text := string(content)
	if !strings.Contains(text, "# clocktransfer configuration") {
		t.Fatalf("expected example header in config file, got:\n%s", text)
	}
	if !strings.Contains(text, "clockify:") || !strings.Contains(text, `url: "https://api.clockify.me/api/v1"`) {
		t.Fatalf("expected clockify URL example in config file, got:\n%s", text)
	}
}

func TestSaveDefaultConfigDoesNotOverwriteExistingFile(t *testing.T) {
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})

	tmpConfig := filepath.Join(t.TempDir(), "existing.yaml")
	original := "clockify:\n  api_key: \"abc\"\n  workspace_id: \"ws\"\nproject_ids:\n  PROJ: \"p-1\"\n"
	if err := os.WriteFile(tmpConfig, []byte(original), 0o644); err != nil {
		t.Fatalf("failed writing initial config: %v", err)
	}

	cfgFile = tmpConfig
	viper.Reset()

	var out bytes.Buffer
	if err := saveDefaultConfig(&out); err != nil {
		t.Fatalf("unexpected error creating config: %v", err)
	}

	content, err := os.ReadFile(tmpConfig)
	if err != nil {
		t.Fatalf("failed reading existing config after init: %v", err)
	}
	if string(content) != original {
		t.Fatalf("expected existing config to remain unchanged")
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestDiscoverConfigFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.yml")
	second := filepath.Join(dir, "present.yaml")
	if err := os.WriteFile(second, []byte("clockify: {}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, found := discoverConfigFile([]string{first, dir, second})
	if !found || got != second {
		t.Fatalf("expected %q, got %q (found=%v)", second, got, found)
	}

	if _, found := discoverConfigFile([]string{first}); found {
		t.Fatalf("expected no config file")
	}
}
