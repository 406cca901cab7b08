package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/repkg/cli/internal/output"
	"github.com/repkg/cli/internal/repo"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	var repoFlag string

	c := &cobra.Command{
		Use:   "export [output-path]",
		Short: "Generate the ReaPack XML index file",
		Long: `Read the repository tree and write the ReaPack XML index.

The output path defaults to index.xml in the current directory. If the
output path is an existing directory, index.xml is written inside it.

Examples:
  # Export the repository in the current directory
  repkg export

  # Export a specific repository to a specific file
  repkg export --repo ./my-repo ./dist/index.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(repoFlag, args)
		},
	}

	c.Flags().StringVarP(&repoFlag, "repo", "r", ".", "Path to the repository to export")

	return c
}

func runExport(repoDir string, args []string) error {
	outputPath := "index.xml"
	if len(args) == 1 {
		outputPath = args[0]
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, "index.xml")
	}

	r, err := repo.Read(repoDir, readOptions())
	if err != nil {
		return err
	}
	output.Debug("repository read", "identifier", r.Identifier, "packages", len(r.Packages))

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer f.Close()

	if err := r.GenerateIndex(f); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	output.Println(output.Checkmark("Wrote repository index to " + output.StyleNoun.Render(outputPath)))
	return nil
}
