package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pushout/internal/config"
	"github.com/vovakirdan/pushout/internal/games/pushout"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Prints the embedded default configuration as YAML. Save it to
~/.arcade/configs/pushout.yaml or ./configs/pushout.yaml and edit it to
change the tuning.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(pushout.ID))
		return err
	},
}

