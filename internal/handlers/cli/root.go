package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/argloc/internal/adapters/cobrasource"
	"github.com/AntonioJCosta/argloc/internal/adapters/yamlsource"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
	"github.com/AntonioJCosta/argloc/internal/core/services/aliaslocator"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what the subcommands share during one execution.
type app struct {
	root     *cobra.Command
	viper    *viper.Viper
	logger   *log.Logger
	splitter ports.CommandLineSplitter
	settings settings
}

func NewRootCommand(version string, splitter ports.CommandLineSplitter) *cobra.Command {
	a := &app{viper: newViper(), splitter: splitter}
	var configFile string

	a.root = &cobra.Command{
		Use:   "argloc",
		Short: "argloc finds which argument a flag alias belongs to and where it appears.",
		Long: `argloc builds an index of every long (--name) and short (-n) alias of a set of
argument definitions and uses it to locate arguments inside a command line.

Definitions come from a YAML file (--spec). Without one, argloc describes its
own command tree.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(a.viper, configFile); err != nil {
				return err
			}
			if err := bindFlags(a.viper, cmd.Flags()); err != nil {
				return err
			}
			s, err := loadSettings(a.viper)
			if err != nil {
				return err
			}
			a.settings = s
			a.logger = newLogger(cmd.ErrOrStderr(), s.Verbose)
			a.logger.Debug("settings loaded", "spec", s.Spec, "unit", s.Unit, "config", configFile)
			return nil
		},
	}

	a.root.PersistentFlags().String("spec", "", "YAML file with argument definitions (env ARGLOC_SPEC).")
	a.root.PersistentFlags().StringVar(&configFile, "config", "", "Settings file read by viper (yaml, json or toml).")
	a.root.PersistentFlags().BoolP("verbose", "V", false, "Log debug details to stderr.")

	a.root.AddCommand(NewAliasesCommand(a))
	a.root.AddCommand(NewLookupCommand(a))
	a.root.AddCommand(NewLocateCommand(a))

	return a.root
}

// locator builds the alias locator for this invocation. With a spec file the
// definitions come from it; otherwise from argloc's own command at path.
func (a *app) locator(path []string) (*aliaslocator.Locator, string, error) {
	opts := []aliaslocator.Option{aliaslocator.WithLogger(a.logger)}

	if a.settings.Spec == "" {
		src, err := cobrasource.NewCommandSource(a.root).Path(path...)
		if err != nil {
			return nil, "", fmt.Errorf("could not resolve command: %w", err)
		}
		return aliaslocator.FromSource(src, opts...), src.SourceIdentifier(), nil
	}

	if len(path) > 0 {
		return nil, "", errors.New("a subcommand path cannot be combined with --spec")
	}
	provider, err := yamlsource.NewYAMLProvider(a.settings.Spec)
	if err != nil {
		return nil, "", err
	}
	src := yamlsource.NewSource(provider)
	loc := aliaslocator.FromSource(src, opts...)
	loc.Len() // building the table reads the file
	if err := src.Err(); err != nil {
		return nil, "", fmt.Errorf("could not load definitions: %w", err)
	}
	return loc, src.SourceIdentifier(), nil
}
