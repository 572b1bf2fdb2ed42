/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clocktransfer/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clocktransfer",
	Short: "Transfer Jira timesheet exports to Clockify time entries.",
	Long: `
**********************************************
*              CLOCK TRANSFER                *
**********************************************

This CLI reads a Jira timesheet export (CSV, Excel or SQLite), maps every
Jira project key to a Clockify project and creates one Clockify time entry
per row. Rows that could not be submitted are written next to the input as
<input>-unprocessed-issues so the run can be repeated for just those rows.

Required columns:
- Issue Key, Issue summary, Hours, Work date, Project Key, Work Description
`,
	Example: `
  # Create configuration file
  clocktransfer config init

  # Look up workspace and project IDs
  clocktransfer workspaces
  clocktransfer projects

  # Preview a transfer without creating entries
  clocktransfer transfer timesheet.csv --dry-run

  # Transfer an Excel export
  clocktransfer transfer timesheet.xlsx

  # Retry the rows that failed last time
  clocktransfer transfer timesheet.csv-unprocessed-issues --format csv

  # Read CSV from standard input
  cat timesheet.csv | clocktransfer transfer -
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()
	config.BindEnv()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file override (default discovery: $XDG_CONFIG_HOME/clocktransfer/config.yml, then ./.clocktransfer.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		path, found := discoverConfigFile(configCandidates())
		if !found {
			logger.Debug("no config file found; create one with: clocktransfer config init")
			return
		}
		viper.SetConfigFile(path)
	}
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("could not read config file", "path", viper.ConfigFileUsed(), "err", err)
		return
	}
	logger.Debug("config loaded", "path", viper.ConfigFileUsed())
}

// configCandidates lists config locations in lookup order. The first entry is
// also where "config init" writes a new file.
func configCandidates() []string {
	candidates := make([]string, 0, 2)
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "clocktransfer", "config.yml"))
	}
	return append(candidates, ".clocktransfer.yaml")
}

func discoverConfigFile(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
