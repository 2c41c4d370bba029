package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"attendsheet/config"
	"attendsheet/filler"
)

var (
	fillTemplate string
	fillInputs   []string
	fillOutput   string
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill a payroll-period template from time-clock day files",
	Long: `Copy the template to the output path and fill it from the given day files.

For every (employee, date) record the matching template cell receives either
the observed clock-in time or a highlighted leave annotation built from the
comment or leave-count columns. Late minutes accumulate across all day files
into the template's late column, and leave summary columns are recomputed from
the final cell contents.

Day files are processed strictly in the given order. Records whose date or
employee is not present in the template are skipped silently. The run fails
only when the template itself is unusable or an I/O error occurs; a failed run
leaves no output file behind.`,
	Example: `
  # Fill from one multi-day export (block layout, dates in a cell column)
  attendsheet fill -t template.xlsx -i 26.11-25.12.2568.xlsx -o template_filled.xlsx

  # Fill from several files, order matters for late-minute accumulation display only
  attendsheet fill -t template.xlsx -i 24.12.68.A.xlsx -i 25.12.68.A.xlsx -o filled.xlsx

  # Use a custom config (flat layout, filename-derived date keys)
  attendsheet --configFile ./flat.yaml fill -t template.xlsx -i 24.12.68.A.xlsx -o filled.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		result, err := filler.Run(fillTemplate, fillInputs, fillOutput, *cfg)
		if err != nil {
			return err
		}

		fmt.Printf("Fill completed. Files: %d, Rows read: %d, Clock-in cells: %d, Highlighted cells: %d, Records skipped: %d, Employees in template: %d\n",
			result.FilesProcessed,
			result.RowsRead,
			result.CellsFilled,
			result.CellsHighlight,
			result.RecordsSkipped,
			result.Employees,
		)
		if result.SummaryWritten {
			fmt.Println("Summary leave counts recomputed.")
		}
		fmt.Printf("Output written to: %s\n", fillOutput)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().StringVarP(&fillTemplate, "template", "t", "", "Payroll-period template file (.xlsx)")
	fillCmd.Flags().StringArrayVarP(&fillInputs, "input", "i", nil, "Day file path (repeatable)")
	fillCmd.Flags().StringVarP(&fillOutput, "output", "o", "", "Output file path")

	_ = fillCmd.MarkFlagRequired("template")
	_ = fillCmd.MarkFlagRequired("input")
	_ = fillCmd.MarkFlagRequired("output")
}
