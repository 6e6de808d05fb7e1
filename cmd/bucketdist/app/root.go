package app

import (
	"context"

	"github.com/spf13/cobra"

	srcapp "github.com/Blackdeer1524/BucketDist/src/app"
	"github.com/Blackdeer1524/BucketDist/src/cli"
)

var rootCmd = cli.Init("bucketdist", "Measures how evenly epoch-seeded hashes spread keys over buckets")

func MustExecute(ctx context.Context) {
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return srcapp.Run(cmd.Context(), &srcapp.AnalysisEntrypoint{
			ConfigPath: rootCmd.Options.ConfigPath,
		})
	}

	initAlgorithms()
	rootCmd.MustExecute(ctx)
}
