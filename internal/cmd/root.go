// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/repkg/cli/internal/config"
	"github.com/repkg/cli/internal/output"
	"github.com/repkg/cli/internal/repo"
	"github.com/repkg/cli/internal/richtext"
)

var (
	// Global flags
	configFlag     string
	pandocFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	toolConfig *config.Config
	pandocPath string
)

// NewRootCmd creates the root command for the repkg CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repkg",
		Short: "ReaPack repository manager",
		Long: `repkg compiles a directory tree of packages into a ReaPack XML index.

It provides commands to:
  - Export the XML index consumed by the ReaPack client
  - Publish new package versions by staging source folders
  - Initialize repositories and print config templates`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to tool config file (env: REPKG_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&pandocFlag, "pandoc", "", "Path to the pandoc executable (env: REPKG_PANDOC)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewPublishCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads the tool configuration.
func initializeGlobals(cmd *cobra.Command) error {
	configFile := configFlag
	if configFile == "" {
		configFile = os.Getenv("REPKG_CONFIG")
	}

	cfg, err := config.NewLoader().LoadWithDefaults(configFile)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - the repository commands work without tool config
	}
	toolConfig = cfg

	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if toolConfig != nil && toolConfig.Log.Timestamps != nil {
		logCfg.Timestamps = toolConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	pandocPath = config.ResolvePandoc(pandocFlag, toolConfig)
	output.Debug("initialized", "pandoc", pandocPath)

	return nil
}

// readOptions wires the resolved collaborators into a repository read.
func readOptions() repo.ReadOptions {
	return repo.ReadOptions{
		RichText: &richtext.Converter{Pandoc: pandocPath},
	}
}
