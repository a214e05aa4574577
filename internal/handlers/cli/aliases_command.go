package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/argloc/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases [SUBCOMMAND...]",
		Short: "List every alias and the argument it resolves to.",
		Long: `Prints the alias table: every long and short alias, canonical names included,
with the argument definition it resolves to. Without --spec the table describes
argloc itself, or the given subcommand (aliases of subcommands are accepted).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesCmd(cmd, args, a)
		},
	}
	return cmd
}

func runAliasesCmd(cmd *cobra.Command, args []string, a *app) error {
	loc, source, err := a.locator(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	entries := loc.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", source)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases from %s:", source)))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "Alias", "Argument", "Takes Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		table.Append([]string{
			e.Alias.Kind.String(),
			e.Alias.String(),
			e.Definition.ID,
			strconv.FormatBool(e.Definition.TakesValue),
		})
	}
	table.Render()
	return nil
}
