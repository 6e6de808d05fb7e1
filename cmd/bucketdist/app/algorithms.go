package app

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/BucketDist/src/cfg"
	"github.com/Blackdeer1524/BucketDist/src/epoch"
)

func initAlgorithms() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "algorithms",
		Short: "Lists the hash algorithms that can be enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := cfg.LoadConfig(rootCmd.Options.ConfigPath)
			if err != nil {
				return err
			}

			for _, name := range epoch.Registered() {
				mark := " "
				if slices.Contains(config.Algorithms, name) {
					mark = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mark, name)
			}

			return nil
		},
	})
}
