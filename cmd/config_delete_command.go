package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteYes bool

var (
	deletePromptInput  io.Reader = os.Stdin
	deletePromptOutput io.Writer = os.Stdout
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by clocktransfer.

Before deletion, an interactive prompt requires typing exactly "Y" unless
--yes is given. If no configuration file is active, the command returns an error.`,
	Example: `
  # Delete active config
  clocktransfer config delete

  # Delete config at a custom path without prompting
  clocktransfer --config ./custom-clocktransfer.yaml config delete --yes
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return fmt.Errorf("no configuration file found")
		}

		if !configDeleteYes {
			confirmed, err := confirmDeletePrompt(deletePromptInput, deletePromptOutput, configPath)
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("delete aborted: confirmation was not 'Y'")
			}
		}

		if err := removeConfigFile(configPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file successfully deleted: %s\n", configPath)
		return nil
	},
}

func confirmDeletePrompt(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("delete confirmation input is not available")
	}
	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete configuration file %q? Type Y to confirm: ", path); err != nil {
		return false, fmt.Errorf("write delete confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read delete confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}

func removeConfigFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("configuration file not found: %s", path)
		}
		return fmt.Errorf("stat configuration file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("configuration path is a directory: %s", path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("error deleting configuration file: %w", err)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
	configDeleteCmd.Flags().BoolVarP(&configDeleteYes, "yes", "y", false, "Delete without confirmation prompt")
}
