package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fedigo-io/mastodon-client/pkg/generation"
)

// NewTargetsCommand creates the targets generation command.
func NewTargetsCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Regenerate the per-generation target files",
		Long: `Writes one target_X_Y_Z.go file per supported generation, each carrying
the build constraint that selects it, plus the default file that targets the
newest generation when no tag is given. Selecting two tags at once makes the
Target constant collide, which fails the build by construction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTargetFiles(outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "pkg/generation", "directory to write target files into")

	return cmd
}

const targetHeader = "// Code generated by mstdngen targets. DO NOT EDIT.\n\n"

func writeTargetFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	var negations []string
	for _, g := range generation.All() {
		negations = append(negations, "!"+g.BuildTag())
	}

	for _, g := range generation.All() {
		name := filepath.Join(dir, fmt.Sprintf("target_%s.go", strings.ReplaceAll(g.String(), ".", "_")))
		content := fmt.Sprintf("%s//go:build %s\n\npackage generation\n\n// Target is the server generation this build is specialized for.\nconst Target = V%s\n",
			targetHeader, g.BuildTag(), strings.ReplaceAll(g.String(), ".", "_"))
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}

	name := filepath.Join(dir, "target_default.go")
	content := fmt.Sprintf("%s//go:build %s\n\npackage generation\n\n// Target is the server generation this build is specialized for. No\n// mastodon_* build tag was given, so the newest tracked generation applies.\nconst Target = V%s\n",
		targetHeader, strings.Join(negations, " && "), strings.ReplaceAll(generation.Newest().String(), ".", "_"))
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	fmt.Printf("Wrote %d target files to %s\n", len(generation.All())+1, dir)

	return nil
}
