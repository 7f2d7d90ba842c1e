package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/aquaprep-cli/internal/export"
	"github.com/KaramelBytes/aquaprep-cli/internal/load"
	"github.com/KaramelBytes/aquaprep-cli/internal/pipeline"
	"github.com/KaramelBytes/aquaprep-cli/internal/utils"
)

var (
	cleanThreshold float64
	cleanOut       string
	cleanDryRun    bool
	cleanScale     bool
	cleanScaledOut string
	cleanJSON      bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Drop high-missingness columns and persist the filtered table",
	Long: `Clean loads a tabular dataset, removes every column whose missing-value
percentage strictly exceeds the threshold, and overwrites the file in place
(or writes to --out). With --scale the filtered table is additionally
standard-scaled; the scaled table is derived data and is only written when
--scaled-out is given, never over the source.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt, err := loadOptions()
		if err != nil {
			return err
		}
		t, err := load.ReadTable(path, opt)
		if err != nil {
			return err
		}

		threshold := pipeline.DefaultThreshold
		if cfg != nil {
			threshold = cfg.MissingThreshold
		}
		if cmd.Flags().Changed("threshold") {
			threshold = cleanThreshold
		}

		drop := pipeline.NewDropMissing(threshold)
		filtered, rep, err := pipeline.New().Add(drop).Run(cmd.Context(), t)
		if err != nil {
			return err
		}
		reports := []*pipeline.Report{rep}

		for _, d := range drop.Dropped() {
			fmt.Printf("- dropping %s (%.1f%% missing > %.1f%%)\n", d.Name, d.MissingPct, threshold)
		}
		if len(drop.Dropped()) == 0 {
			fmt.Printf("- no columns exceed %.1f%% missing\n", threshold)
		}

		if cleanDryRun {
			fmt.Println("✓ Dry run: no files written")
			return printReports(reports, cleanJSON)
		}

		outPath := path
		if cleanOut != "" {
			outPath = cleanOut
		}
		if err := load.WriteTable(outPath, filtered); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote filtered table to %s (%d columns, %d rows)\n", outPath, len(filtered.Columns()), filtered.Rows())

		// Scaling runs after the filtered table is persisted: a scale
		// failure leaves the filtered file on disk and the run incomplete.
		if cleanScale {
			scale := pipeline.NewStandardScale()
			scaled, srep, err := pipeline.New().Add(scale).Run(cmd.Context(), filtered)
			if err != nil {
				return err
			}
			reports = append(reports, srep)
			if cleanScaledOut != "" {
				var buf bytes.Buffer
				if err := export.WriteCSV(&buf, scaled); err != nil {
					return fmt.Errorf("export scaled table: %w", err)
				}
				if err := utils.SafeWriteFile(cleanScaledOut, buf.Bytes()); err != nil {
					return err
				}
				fmt.Printf("✓ Wrote scaled table to %s\n", cleanScaledOut)
			} else {
				fmt.Printf("✓ Scaled %d numeric columns (use --scaled-out to write)\n", len(scale.Scaled()))
			}
		}
		return printReports(reports, cleanJSON)
	},
}

func printReports(reports []*pipeline.Report, asJSON bool) error {
	if !asJSON {
		return nil
	}
	b, err := utils.PrettyJSON(reports)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func init() {
	cleanCmd.Flags().Float64Var(&cleanThreshold, "threshold", pipeline.DefaultThreshold, "missing-percent cutoff; columns strictly above it are dropped")
	cleanCmd.Flags().StringVar(&cleanOut, "out", "", "write the filtered table here instead of overwriting the input")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "report what would be dropped without writing")
	cleanCmd.Flags().BoolVar(&cleanScale, "scale", false, "standard-scale numeric columns after filtering")
	cleanCmd.Flags().StringVar(&cleanScaledOut, "scaled-out", "", "write the scaled table as CSV to this path")
	cleanCmd.Flags().BoolVar(&cleanJSON, "json", false, "print the run report as JSON")
	rootCmd.AddCommand(cleanCmd)
}
