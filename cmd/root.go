/*
Copyright © 2025 attendsheet authors

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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attendsheet/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "attendsheet",
	Short: "Reconcile fingerprint time-clock exports into a payroll-period template spreadsheet.",
	Long: `
**********************************************
*              ATTENDSHEET                   *
**********************************************

This CLI reads day files exported by a fingerprint time-clock system, matches
each record by employee ID and date against a payroll-period template, and
writes clock-in times or highlighted leave annotations into the template copy.
Late minutes accumulate per employee and leave summary columns are recomputed
from the final cell contents.

Supported day-file formats:
- Excel: .xlsx, .xlsm, .xls
- CSV: .csv
`,
	Example: `
  # Create configuration file
  attendsheet config create

  # Fill a template from one multi-day export
  attendsheet fill -t template.xlsx -i 26.11-25.12.2568.xlsx -o template_filled.xlsx

  # Fill from several per-period files named <day>.<month>.<yy>.<variant>.xlsx
  attendsheet fill -t template.xlsx -i 24.12.68.A.xlsx -i 25.12.68.A.xlsx -o filled.xlsx

  # Show the layout a template resolves to
  attendsheet inspect template ./template.xlsx

  # Preview how a day file parses
  attendsheet inspect dayfile ./26.11-25.12.2568.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.attendsheet.yaml, then ./.attendsheet.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd.Name() == "fill" || cmd.Name() == "inspect"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".attendsheet" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".attendsheet")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Defaults cover everything, so a
	// missing file only gets a hint, not an error.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: attendsheet config create")
	}
}
