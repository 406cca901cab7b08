package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/output"
	"github.com/repkg/cli/internal/repo"
	"github.com/repkg/cli/internal/templates"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a new package repository",
		Long: `Create a repository.toml marker in the given directory, making it the
root of a package repository. The directory is created if it does not
exist and its name becomes the default repository identifier.

Examples:
  # Initialize the current directory
  repkg init

  # Initialize a new directory
  repkg init ./my-repo`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir)
		},
	}

	return c
}

func runInit(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}

	configPath := filepath.Join(abs, repo.RepositoryConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return &oerrors.DetailError{
			Type:     "invalid argument",
			Message:  "a repository already exists here",
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", abs, err)
	}

	data := templates.DefaultRepositoryData()
	data.Identifier = filepath.Base(abs)
	configText, err := templates.Render(templates.Repository, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, []byte(configText), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	output.Println(output.Checkmark("Initialized repository " + output.StyleNoun.Render(data.Identifier)))
	output.Println(output.StyleDim.Render("Edit " + configPath + " to set the author and download URL pattern."))
	return nil
}
