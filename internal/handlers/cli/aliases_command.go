package cli

import (
	"fmt"
	"os"

	"github.com/dalia-sh/dalia/internal/core/domain/alias"
	"github.com/dalia-sh/dalia/internal/core/ports"
	"github.com/dalia-sh/dalia/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(generationService ports.AliasGenerationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "Print shell aliases for each configured directory.",
		Long: `Reads the configuration file and prints one alias statement per
configured directory, each of the form name='cd path'. Output goes to
stdout and nothing else does, so it is safe to eval:

    eval "$(dalia aliases)"

Invalid configuration lines are skipped and reported on stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesCmd(cmd, args, generationService)
		},
	}
	return cmd
}

// runAliasesCmd contains the core logic for the 'aliases' command.
func runAliasesCmd(
	_ *cobra.Command,
	_ []string,
	generationService ports.AliasGenerationService,
) error {
	result, err := generationService.GenerateAliases()
	if err != nil {
		return fmt.Errorf("could not generate aliases: %w", err)
	}

	// Warnings go to stderr so the stdout stream stays eval-safe.
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: skipped %s", w)))
	}

	fmt.Print(alias.Script(result.Aliases))
	return nil
}
