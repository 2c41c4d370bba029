package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"attendsheet/attendance"
	"attendsheet/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  attendsheet config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file in use, showing defaults.")
		}

		fmt.Println("Configuration:")
		fmt.Printf("template.header_row: %d\n", cfg.Template.HeaderRow)
		fmt.Printf("template.id_column: %d\n", cfg.Template.IDColumn)
		fmt.Printf("template.first_date_column: %d\n", cfg.Template.FirstDateColumn)
		fmt.Printf("import.layout: %s\n", cfg.Import.NormalizedLayout())
		fmt.Printf("import.date_strategy: %s\n", cfg.Import.NormalizedDateStrategy())
		fmt.Printf("import.strict_columns: %t\n", cfg.Import.StrictColumns)
		fmt.Printf("import.columns.id: %d\n", cfg.Import.Columns.ID)
		fmt.Printf("import.columns.name: %d\n", cfg.Import.Columns.Name)
		fmt.Printf("import.columns.date: %d\n", cfg.Import.Columns.Date)
		fmt.Printf("import.columns.clock_in: %d\n", cfg.Import.Columns.ClockIn)
		fmt.Printf("import.columns.clock_out: %d\n", cfg.Import.Columns.ClockOut)
		fmt.Printf("import.columns.late: %d\n", cfg.Import.Columns.Late)
		for _, category := range attendance.Categories() {
			fmt.Printf("import.columns.%s: %d\n", category, cfg.Import.Columns.LeaveColumn(category))
		}
		fmt.Printf("import.columns.comment: %d\n", cfg.Import.Columns.Comment)
		fmt.Printf("fill.empty_reason_policy: %s\n", cfg.Fill.NormalizedEmptyReasonPolicy())
		fmt.Printf("fill.highlight_color: %s\n", cfg.Fill.HighlightColor)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
