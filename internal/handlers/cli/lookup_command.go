package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ErrAliasNotFound is returned by 'lookup' when nothing, not even a fallback, matched.
var ErrAliasNotFound = errors.New("alias not found")

// NewLookupCommand creates the 'lookup' subcommand.
func NewLookupCommand(a *app) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "lookup ALIAS",
		Short: "Show which argument a --long or -s alias resolves to.",
		Long: `Resolves a single alias such as --verbose or -v. With --fallback, unknown
aliases resolve to the argument with that ID (or a synthetic one when no
argument has it), the way a catch-all argument would.

Put the alias after -- so it is not read as a flag of argloc:

  argloc lookup --spec args.yaml -- -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookupCmd(cmd, args, a, fallback)
		},
	}
	cmd.Flags().StringVarP(&fallback, "fallback", "f", "", "Argument ID returned for unknown aliases.")
	return cmd
}

func runLookupCmd(cmd *cobra.Command, args []string, a *app, fallback string) error {
	alias, err := argalias.Parse(args[0])
	if err != nil {
		return fmt.Errorf("could not parse alias: %w", err)
	}
	loc, source, err := a.locator(nil)
	if err != nil {
		return err
	}
	if fallback != "" {
		def, ok := loc.Definition(fallback)
		if !ok {
			def = &argdef.Definition{ID: fallback}
		}
		loc.SetFallback(def)
	}

	out := cmd.OutOrStdout()
	def, res := loc.Lookup(alias)
	switch res {
	case argalias.Found:
		fmt.Fprintf(out, "%s %s %s\n", ui.AliasColor(alias.String()), ui.SuccessColor("resolves to"), ui.ArgumentColor(def.ID))
	case argalias.Fallback:
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%s is not declared; falling back to %s", alias, def.ID)))
	default:
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%s is not declared in %s.", alias, source)))
		return fmt.Errorf("%w: %s", ErrAliasNotFound, alias)
	}

	if names := aliasNames(loc.AliasesOf(def.ID)); names != "" {
		fmt.Fprintln(out, ui.DetailColor("  aliases: "+names))
	}
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("  takes value: %t", def.TakesValue)))
	return nil
}

func aliasNames(aliases []argalias.Alias) string {
	names := make([]string, len(aliases))
	for i, a := range aliases {
		names[i] = a.String()
	}
	return strings.Join(names, ", ")
}
