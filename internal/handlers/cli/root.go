package cli

import (
	"fmt"

	"github.com/dalia-sh/dalia/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	generationService ports.AliasGenerationService,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "dalia",
		Short: "dalia generates shell aliases for your favorite directories.",
		Long: `dalia reads a small configuration file listing directories and prints
shell alias statements that cd into them. Wrap the output in an eval to
load the aliases into your shell:

    eval "$(dalia aliases)"

The configuration lives in $DALIA_CONFIG_PATH/config, or $HOME/.dalia/config
when the environment variable is unset.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if generationService == nil && (cmd.Name() == "aliases" || cmd.Name() == "list") {
				return fmt.Errorf("alias generation service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewAliasesCommand(generationService))
	rootCmd.AddCommand(NewListCommand(generationService))

	return rootCmd
}
