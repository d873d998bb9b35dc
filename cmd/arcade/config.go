package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file search and the
difficulty preset are applied. The output is valid config YAML.

Examples:
  arcade config > ~/.matrix-arcade/config.yaml
  arcade config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
