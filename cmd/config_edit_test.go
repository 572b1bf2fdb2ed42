package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const editedConfig = `clockify:
  api_key: "abc"
  workspace_id: "ws-1"
project_map:
  PROJ: "Project One"
project_ids:
  OPS: "p-2"
  CAIC: "p-3"
`

// scriptedEditor writes the next version of the file on every call.
func scriptedEditor(t *testing.T, versions ...string) (editorFunc, *int) {
	t.Helper()
	calls := 0
	return func(editor, path string) error {
		if calls >= len(versions) {
			t.Fatalf("editor opened %d times, only %d versions scripted", calls+1, len(versions))
		}
		content := versions[calls]
		calls++
		return os.WriteFile(path, []byte(content), 0o600)
	}, &calls
}

func TestEditConfigFile_ValidOnFirstTry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	editor, calls := scriptedEditor(t, editedConfig)
	var out bytes.Buffer

	if err := editConfigFile(path, "vi", editor, strings.NewReader(""), &out); err != nil {
		t.Fatalf("edit config: %v", err)
	}
	if *calls != 1 {
		t.Fatalf("expected one editor run, got %d", *calls)
	}
	if !strings.Contains(out.String(), "(1 project names, 2 project IDs)") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestEditConfigFile_ReopensAfterValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	editor, calls := scriptedEditor(t, "clockify:\n  api_key: \"\"\n", editedConfig)
	var out bytes.Buffer

	if err := editConfigFile(path, "vi", editor, strings.NewReader("\n"), &out); err != nil {
		t.Fatalf("edit config: %v", err)
	}
	if *calls != 2 {
		t.Fatalf("expected two editor runs, got %d", *calls)
	}
	if !strings.Contains(out.String(), "Edit again? [Y/n]") {
		t.Fatalf("expected retry prompt, got %q", out.String())
	}
}

func TestEditConfigFile_GivesUpOnNo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	editor, _ := scriptedEditor(t, "clockify:\n  api_key: \"\"\n")

	err := editConfigFile(path, "vi", editor, strings.NewReader("n\n"), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "config validation failed in "+path) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEditConfigFile_EditorFailure(t *testing.T) {
	failing := func(string, string) error { return errors.New("exit status 1") }

	err := editConfigFile(filepath.Join(t.TempDir(), "config.yml"), "vi", failing, strings.NewReader(""), &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "opening editor failed") {
		t.Fatalf("expected editor error, got %v", err)
	}
}

func TestResolveEditorValue(t *testing.T) {
	tests := []struct {
		name   string
		visual string
		editor string
		goos   string
		want   string
	}{
		{name: "visual wins", visual: "code --wait", editor: "nano", goos: "linux", want: "code --wait"},
		{name: "editor fallback", editor: "nano", goos: "linux", want: "nano"},
		{name: "blank values ignored", visual: " ", editor: "\t", goos: "darwin", want: "vi"},
		{name: "windows default", goos: "windows", want: "notepad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEditorValue(tt.visual, tt.editor, tt.goos); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildEditorCommand(t *testing.T) {
	cmd, err := buildEditorCommand("  code --wait --new-window ", "/tmp/cfg.yml")
	if err != nil {
		t.Fatalf("build editor command: %v", err)
	}
	want := []string{"code", "--wait", "--new-window", "/tmp/cfg.yml"}
	if strings.Join(cmd.Args, " ") != strings.Join(want, " ") {
		t.Fatalf("unexpected args: %#v", cmd.Args)
	}

	if _, err := buildEditorCommand("   ", "/tmp/cfg.yml"); err == nil {
		t.Fatalf("expected error for empty editor")
	}
}
