package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage attendsheet configuration file values.",
	Long: `Create and display the attendsheet configuration file.

The configuration stores the template landmarks and day-file mapping:
- template.header_row / id_column / first_date_column
- import.layout (block|flat), import.date_strategy (cell|filename)
- import.columns.* day-file column indices
- fill.empty_reason_policy (absent|blank), fill.highlight_color`,
	Example: `
  # Create default config in $HOME/.attendsheet.yaml
  attendsheet config create

  # Show active config and source file
  attendsheet config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
