package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/aquaprep-cli/internal/config"
	"github.com/KaramelBytes/aquaprep-cli/internal/load"
)

var (
	// Global flags (wired to config via loadConfig)
	cfgFile string
	debug   bool
	// Load flags (override config if set)
	flagSheetName  string
	flagSheetIndex int
	flagDelimiter  string
	flagDecimal    string
	flagThousands  string
	flagMaxRows    int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "aquaprep",
	Short: "aquaprep: clean and standardize plant-operations datasets",
	Long:  `aquaprep is a CLI tool that loads a tabular operations dataset (XLSX or CSV), reports missingness, drops columns with excessive missing values, and standard-scales numeric columns.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.aquaprep/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagSheetName, "sheet-name", "", "worksheet name for XLSX input (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagSheetIndex, "sheet-index", 0, "1-based worksheet index for XLSX input (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ','|';'|'tab' (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDecimal, "decimal", "", "decimal separator: '.'|'comma' (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagThousands, "thousands", "", "thousands separator: ','|'.'|'space' (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "limit rows read (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("sheet-name") {
		cfg.SheetName = flagSheetName
	}
	if f.Changed("sheet-index") && flagSheetIndex > 0 {
		cfg.SheetIndex = flagSheetIndex
	}
	if f.Changed("delimiter") {
		cfg.Delimiter = flagDelimiter
	}
	if f.Changed("decimal") {
		cfg.Decimal = flagDecimal
	}
	if f.Changed("thousands") {
		cfg.Thousands = flagThousands
	}
	if f.Changed("max-rows") && flagMaxRows > 0 {
		cfg.MaxRows = flagMaxRows
	}
}

// loadOptions translates the effective configuration into load.Options.
func loadOptions() (load.Options, error) {
	opt := load.DefaultOptions()
	if cfg == nil {
		return opt, nil
	}
	opt.SheetName = cfg.SheetName
	if cfg.SheetIndex > 0 {
		opt.SheetIndex = cfg.SheetIndex
	}
	if cfg.MaxRows > 0 {
		opt.MaxRows = cfg.MaxRows
	}
	switch cfg.Delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return opt, fmt.Errorf("unsupported delimiter: %s", cfg.Delimiter)
	}
	switch cfg.Decimal {
	case "":
	case ".", "dot":
		opt.DecimalSeparator = '.'
	case ",", "comma":
		opt.DecimalSeparator = ','
	default:
		return opt, fmt.Errorf("unsupported decimal separator: %s (use '.'|'comma')", cfg.Decimal)
	}
	switch cfg.Thousands {
	case "":
	case ",":
		opt.ThousandsSeparator = ','
	case ".":
		opt.ThousandsSeparator = '.'
	case "space", " ":
		opt.ThousandsSeparator = ' '
	default:
		return opt, fmt.Errorf("unsupported thousands separator: %s (use ','|'.'|'space')", cfg.Thousands)
	}
	return opt, nil
}
