package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/aquaprep-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set aquaprep configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("missing_threshold: %.1f\n", cfg.MissingThreshold)
		if cfg.SheetName != "" {
			fmt.Printf("sheet_name: %s\n", cfg.SheetName)
		}
		fmt.Printf("sheet_index: %d\n", cfg.SheetIndex)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		}
		if cfg.Decimal != "" {
			fmt.Printf("decimal: %s\n", cfg.Decimal)
		}
		if cfg.Thousands != "" {
			fmt.Printf("thousands: %s\n", cfg.Thousands)
		}
		fmt.Printf("max_rows: %d\n", cfg.MaxRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "missing_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 100 {
				return fmt.Errorf("missing_threshold must be a percentage in [0,100]: %s", val)
			}
			cfg.MissingThreshold = f
		case "sheet_name":
			cfg.SheetName = val
		case "sheet_index":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("sheet_index must be a positive integer: %s", val)
			}
			cfg.SheetIndex = n
		case "delimiter":
			cfg.Delimiter = val
		case "decimal":
			cfg.Decimal = val
		case "thousands":
			cfg.Thousands = val
		case "max_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("max_rows must be a non-negative integer: %s", val)
			}
			cfg.MaxRows = n
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
