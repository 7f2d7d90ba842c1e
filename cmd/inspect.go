package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/aquaprep-cli/internal/export"
	"github.com/KaramelBytes/aquaprep-cli/internal/load"
	"github.com/KaramelBytes/aquaprep-cli/internal/stats"
	"github.com/KaramelBytes/aquaprep-cli/internal/table"
)

var (
	inspectSummary  bool
	inspectDescribe bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Report per-column missingness and summary statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := loadOptions()
		if err != nil {
			return err
		}
		t, err := load.ReadTable(args[0], opt)
		if err != nil {
			return err
		}
		sums := stats.Summarize(t)

		tw := tablewriter.NewWriter(os.Stdout)
		tw.SetHeader([]string{"Column", "Kind", "Non-null", "Missing %", "Mean", "Std"})
		for _, s := range sums {
			mean, std := "-", "-"
			if s.Kind == table.Numeric {
				mean = fmt.Sprintf("%.4g", s.Mean)
				std = fmt.Sprintf("%.4g", s.Std)
			}
			tw.Append([]string{
				s.Name,
				s.Kind.String(),
				fmt.Sprintf("%d", s.NonNull),
				fmt.Sprintf("%.1f", s.MissingPct),
				mean,
				std,
			})
		}
		tw.Render()

		if inspectSummary {
			fmt.Println()
			fmt.Print(stats.Markdown(t, sums))
		}
		if inspectDescribe {
			fmt.Println()
			fmt.Println(export.Describe(t))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectSummary, "summary", false, "print a markdown dataset summary")
	inspectCmd.Flags().BoolVar(&inspectDescribe, "describe", false, "print a dataframe describe view")
	rootCmd.AddCommand(inspectCmd)
}
