package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/argloc/internal/adapters/pflagsource"
	"github.com/AntonioJCosta/argloc/internal/core/services/arglocation"
	"github.com/AntonioJCosta/argloc/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	// ErrNoCommandLine is returned by 'locate' when neither --line nor argv was given.
	ErrNoCommandLine = errors.New("no command line to scan")
	// ErrNoSplitter is returned for --line when no command line splitter was wired.
	ErrNoSplitter = errors.New("command line splitter not initialized")
)

type locateCommandFlags struct {
	targets []string
	line    string
}

// NewLocateCommand creates the 'locate' subcommand.
func NewLocateCommand(a *app) *cobra.Command {
	var flags locateCommandFlags

	cmd := &cobra.Command{
		Use:   "locate [--target ID]... (--line 'COMMAND LINE' | -- ARGV...)",
		Short: "Show where arguments appear in a command line.",
		Long: `Scans a command line and marks every occurrence of the target arguments.
Offsets count from the start of argv joined by single spaces, program name
included. Without --target every resolved argument is reported.`,
		Example: `  argloc locate --spec args.yaml -t output -- tool -vo out.txt
  argloc locate --spec args.yaml --include-name --line 'tool --output="a b"'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocateCmd(cmd, args, a, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.targets, "target", "t", nil, "Argument ID to locate; repeatable. Also --arg.")
	cmd.Flags().StringVarP(&flags.line, "line", "l", "", "Command line to split with shell quoting rules.")
	cmd.Flags().IntP("limit", "n", 0, "Maximum occurrences per target, 0 for all.")
	cmd.Flags().Bool("include-name", false, "Underline the argument name together with its value.")
	cmd.Flags().String("unit", "bytes", "Offset unit: bytes or runes.")

	if err := pflagsource.SetAliases(cmd.Flags(), "target", "arg"); err != nil {
		panic(err)
	}
	pflagsource.NormalizeAliases(cmd.Flags())

	return cmd
}

func runLocateCmd(cmd *cobra.Command, args []string, a *app, flags locateCommandFlags) error {
	argv, err := commandLine(a, args, flags.line)
	if err != nil {
		return err
	}
	loc, source, err := a.locator(nil)
	if err != nil {
		return err
	}

	svc := arglocation.NewService(loc,
		arglocation.WithUnit(a.settings.Unit),
		arglocation.WithLogger(a.logger),
	)
	matches := svc.Locate(argv, flags.targets, a.settings.Limit)

	out := cmd.OutOrStdout()
	if len(matches) == 0 {
		what := "No arguments"
		if len(flags.targets) > 0 {
			what = "No occurrences of " + strings.Join(flags.targets, ", ")
		}
		fmt.Fprintln(out, ui.InfoColor(what+" found."))
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Definitions: %s)", source)))
		return nil
	}

	line := strings.Join(argv, " ")
	fmt.Fprintln(out, ui.CodeColor(line))
	for _, m := range matches {
		span := m.Location.Span(a.settings.IncludeName)
		fmt.Fprintf(out, "%s %s %s\n",
			ui.MarkerColor(markerLine(line, span, a.settings.Unit)),
			ui.ArgumentColor(m.Target),
			ui.DetailColor("("+m.Location.Kind.String()+")"))
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Target", "Kind", "Part", "Offset", "Length", "Text"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	for _, m := range matches {
		table.AppendBulk(partRows(line, m, a.settings.Unit))
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Definitions: %s)", source)))
	return nil
}

// commandLine picks argv from --line or from the positional arguments.
func commandLine(a *app, args []string, line string) ([]string, error) {
	switch {
	case line != "" && len(args) > 0:
		return nil, errors.New("use either --line or argv after --, not both")
	case line != "":
		if a.splitter == nil {
			return nil, ErrNoSplitter
		}
		argv, err := a.splitter.Split(line)
		if err != nil {
			return nil, fmt.Errorf("could not read --line: %w", err)
		}
		if len(argv) == 0 {
			return nil, ErrNoCommandLine
		}
		return argv, nil
	case len(args) > 0:
		return args, nil
	default:
		return nil, ErrNoCommandLine
	}
}
