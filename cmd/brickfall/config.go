package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/registry"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print or check brickfall configuration",
	Long: `Print the built-in reference configuration as YAML, ready to copy to
~/.brickfall/configs/brickfall.yaml and edit. With --check, load the given
file the way play does and print the effective configuration instead.

Examples:
  brickfall config > ~/.brickfall/configs/brickfall.yaml
  brickfall config --check ./my-brickfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate this config file and print the effective values")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := "brickfall"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q", gameID)
	}

	if flagConfigCheck == "" {
		data := config.GetDefaultYAML(gameID)
		if data == nil {
			return fmt.Errorf("no default config for %q", gameID)
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	cfg, err := config.LoadBrickfall(flagConfigCheck)
	if err != nil {
		return err
	}
	if gameID == "brickfall_rush" {
		config.ApplyRush(&cfg)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
