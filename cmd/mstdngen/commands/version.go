package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedigo-io/mastodon-client/pkg/generation"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tool version and supported generations",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mstdngen %s\n", version)
			fmt.Printf("generations: %s through %s\n", generation.Oldest(), generation.Newest())
		},
	}
}
