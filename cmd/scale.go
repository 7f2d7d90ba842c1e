package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/aquaprep-cli/internal/export"
	"github.com/KaramelBytes/aquaprep-cli/internal/load"
	"github.com/KaramelBytes/aquaprep-cli/internal/pipeline"
	"github.com/KaramelBytes/aquaprep-cli/internal/utils"
)

var scaleOut string

var scaleCmd = &cobra.Command{
	Use:   "scale <file>",
	Short: "Standard-scale numeric columns to zero mean and unit variance",
	Long: `Scale loads a tabular dataset and standardizes every numeric column
independently (subtract mean, divide by sample standard deviation).
Categorical columns pass through unchanged. The scaled table is written as
CSV to --out, or to stdout. A constant numeric column is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := loadOptions()
		if err != nil {
			return err
		}
		t, err := load.ReadTable(args[0], opt)
		if err != nil {
			return err
		}
		scale := pipeline.NewStandardScale()
		scaled, _, err := pipeline.New().Add(scale).Run(cmd.Context(), t)
		if err != nil {
			return err
		}
		if scaleOut == "" {
			return export.WriteCSV(os.Stdout, scaled)
		}
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, scaled); err != nil {
			return fmt.Errorf("export scaled table: %w", err)
		}
		if err := utils.SafeWriteFile(scaleOut, buf.Bytes()); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote scaled table to %s (%d numeric columns)\n", scaleOut, len(scale.Scaled()))
		return nil
	},
}

func init() {
	scaleCmd.Flags().StringVar(&scaleOut, "out", "", "write the scaled table as CSV here (default stdout)")
	rootCmd.AddCommand(scaleCmd)
}
