package cli

import (
	"fmt"
	"os"

	"github.com/dalia-sh/dalia/internal/core/ports"
	"github.com/dalia-sh/dalia/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(generationService ports.AliasGenerationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the directory aliases dalia would generate.",
		Long: `Displays the aliases derived from the configuration file as a table.
This output is meant for humans; use 'dalia aliases' for eval-safe output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, generationService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	_ *cobra.Command,
	_ []string,
	generationService ports.AliasGenerationService,
) error {
	result, err := generationService.GenerateAliases()
	if err != nil {
		return fmt.Errorf("could not list aliases: %w", err)
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, ui.WarningColor(fmt.Sprintf("Warning: skipped %s", w)))
	}

	if len(result.Aliases) == 0 {
		fmt.Println(ui.InfoColor("No aliases configured. Add a few directories to your configuration file."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Configured Directory Aliases:"))
	fmt.Println(ui.DetailColor("Duplicate names are shown in input order; the last definition wins in the shell."))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Alias Name", "Directory"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range result.Aliases {
		table.Append([]string{a.Name, a.Path})
	}
	table.Render()
	return nil
}
