package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fedigo-io/mastodon-client/cmd/mstdngen/commands"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mstdngen",
	Short: "Capability matrix tooling for the Mastodon client",
	Long: `mstdngen maintains the generation-selection machinery of the client
library: it regenerates the per-generation target files in pkg/generation
and renders the capability matrix for review.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(commands.NewTargetsCommand())
	rootCmd.AddCommand(commands.NewMatrixCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(version))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
