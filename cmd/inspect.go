package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"attendsheet/config"
	"attendsheet/filler"
	"attendsheet/importer"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect how a template or day file resolves under the active configuration",
	Long: `Print the layout a template resolves to, or a preview of the records a day
file parses into, without writing anything.

Useful to verify header-row and column-mapping configuration before a fill.`,
	Example: `
  # Show discovered date columns, late column, summary columns, employee rows
  attendsheet inspect template ./template.xlsx

  # Show parse counts and the first records of a day file
  attendsheet inspect dayfile ./26.11-25.12.2568.xlsx
`,
}

var inspectTemplateCmd = &cobra.Command{
	Use:   "template <path>",
	Short: "Show the layout discovered in a template file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		file, err := excelize.OpenFile(args[0])
		if err != nil {
			return fmt.Errorf("open template %s: %w", args[0], err)
		}
		defer file.Close()

		sheet := file.GetSheetName(0)
		if sheet == "" {
			return fmt.Errorf("template has no sheets: %s", args[0])
		}

		layout, err := filler.DiscoverLayout(file, sheet, *cfg)
		if err != nil {
			return err
		}

		columnsByKey := make(map[string]int, len(layout.DateColumns))
		keys := make([]string, 0, len(layout.DateColumns))
		for key, column := range layout.DateColumns {
			columnsByKey[string(key)] = column
			keys = append(keys, string(key))
		}
		sort.Strings(keys)

		fmt.Printf("Sheet: %s\n", sheet)
		fmt.Printf("Date columns: %d\n", len(layout.DateColumns))
		for _, key := range keys {
			fmt.Printf("  %s -> column %d\n", key, columnsByKey[key])
		}
		if layout.LateColumn > 0 {
			fmt.Printf("Late-minutes column: %d\n", layout.LateColumn)
		} else {
			fmt.Println("Late-minutes column: not found")
		}
		fmt.Printf("Summary columns: %d\n", len(layout.SummaryColumns))
		for category, column := range layout.SummaryColumns {
			fmt.Printf("  %s (%s) -> column %d\n", category, category.Label(), column)
		}
		fmt.Printf("Employees indexed: %d\n", len(layout.Rows))

		return nil
	},
}

var inspectDayfileCmd = &cobra.Command{
	Use:   "dayfile <path>",
	Short: "Show how a day file parses into attendance records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		result, err := importer.Run(args[0:1], *cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Rows read: %d, Records kept: %d, Rows dropped: %d\n",
			result.RowsRead, result.RowsKept, result.RowsDropped)

		const previewLimit = 10
		for i, record := range result.Records {
			if i >= previewLimit {
				fmt.Printf("... and %d more records\n", len(result.Records)-previewLimit)
				break
			}
			fmt.Printf("  %s %s date=%s clock_in=%q late=%v leave=%d comment=%q\n",
				record.EmployeeID,
				record.EmployeeName,
				record.Date,
				record.ClockIn,
				record.LateMinutes,
				len(record.Leave),
				record.Comment,
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.AddCommand(inspectTemplateCmd)
	inspectCmd.AddCommand(inspectDayfileCmd)
}
