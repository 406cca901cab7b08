package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/output"
	"github.com/repkg/cli/internal/templates"
)

// NewTemplateCmd creates the template command.
func NewTemplateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "template <name>",
		Short: "Print a marker config template",
		Long: fmt.Sprintf(`Print a commented template for one of the marker config files to
standard output. Valid names: %s.

Examples:
  repkg template package > my-package/package.toml`, strings.Join(templates.ValidNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTemplate(args[0])
		},
	}

	return c
}

func runTemplate(name string) error {
	if !templates.IsValidName(name) {
		return &oerrors.DetailError{
			Type:    "invalid argument",
			Message: fmt.Sprintf("unknown template name: %q", name),
			Hint:    "Valid names: " + strings.Join(templates.ValidNames(), ", "),
			Cause:   oerrors.ErrValidation,
		}
	}

	tmplName := templates.Name(name)
	out, err := templates.Render(tmplName, templates.DefaultData(tmplName))
	if err != nil {
		return err
	}
	output.Print(out)
	return nil
}
