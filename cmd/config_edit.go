package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clocktransfer/config"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active clocktransfer config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi (notepad on Windows)

If no config file exists yet, this command creates one with an example template first.
After the editor exits, the content is validated: API key, workspace ID and a
valid project mapping are required. On a validation error you can reopen the
editor to fix it.`,
	Example: `
  # Edit active config
  clocktransfer config edit

  # Use a specific editor once
  EDITOR="code --wait" clocktransfer config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if created {
			fmt.Fprintf(out, "No config file found. Created example config at: %s\n", configPath)
		}

		editor := resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR"), runtime.GOOS)
		return editConfigFile(configPath, editor, runEditor, cmd.InOrStdin(), out)
	},
}

// editorFunc opens path in editor and returns once the editor exits.
type editorFunc func(editor, path string) error

func editConfigFile(path, editor string, openEditor editorFunc, in io.Reader, out io.Writer) error {
	answers := bufio.NewReader(in)
	for {
		if err := openEditor(editor, path); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading edited config failed: %w", err)
		}

		cfg, validationErr := config.ValidateYAMLContent(content)
		if validationErr == nil {
			fmt.Fprintf(out, "Configuration saved and validated: %s (%d project names, %d project IDs)\n",
				path, len(cfg.ProjectMap), len(cfg.ProjectIDs))
			return nil
		}

		fmt.Fprintf(out, "Config validation failed: %v\nEdit again? [Y/n]: ", validationErr)
		if !wantsRetry(answers) {
			return fmt.Errorf("config validation failed in %s: %w", path, validationErr)
		}
	}
}

// wantsRetry treats an empty answer as yes and end of input as no.
func wantsRetry(answers *bufio.Reader) bool {
	line, err := answers.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

func resolveEditorValue(visual, editor, goos string) string {
	for _, candidate := range []string{visual, editor} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	if goos == "windows" {
		return "notepad"
	}
	return "vi"
}

func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	args := append(fields[1:], configPath)
	return exec.Command(fields[0], args...), nil
}

func runEditor(editor, path string) error {
	editorCommand, err := buildEditorCommand(editor, path)
	if err != nil {
		return err
	}
	editorCommand.Stdin = os.Stdin
	editorCommand.Stdout = os.Stdout
	editorCommand.Stderr = os.Stderr
	return editorCommand.Run()
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
