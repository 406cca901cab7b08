package cmd

import (
	"github.com/spf13/cobra"

	"github.com/repkg/cli/internal/buildinfo"
	"github.com/repkg/cli/internal/output"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			info := buildinfo.Get()
			output.Println("repkg " + info.Version)
			output.Println("  commit: " + info.Commit)
			output.Println("  built:  " + info.Date)
		},
	}

	return c
}
