/*
Package cobrasource exposes the flags of a cobra command, and of its
subcommands, as argument definitions.
*/
package cobrasource

import (
	"errors"
	"fmt"
	"iter"

	"github.com/AntonioJCosta/argloc/internal/adapters/pflagsource"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrUnknownSubcommand is returned when no child command has the requested name or alias.
var ErrUnknownSubcommand = errors.New("unknown subcommand")

// CommandSource implements ports.DefinitionSource over one cobra command.
type CommandSource struct {
	cmd *cobra.Command
}

// NewCommandSource creates a source over cmd. It panics if cmd is nil.
func NewCommandSource(cmd *cobra.Command) *CommandSource {
	if cmd == nil {
		panic("command cannot be nil")
	}
	return &CommandSource{cmd: cmd}
}

// Command returns the underlying cobra command.
func (s *CommandSource) Command() *cobra.Command {
	return s.cmd
}

// Definitions yields the local flags and then the inherited persistent flags.
// A local flag shadows an inherited one with the same name. The default
// help and version flags only exist once cobra has added them.
func (s *CommandSource) Definitions() iter.Seq[*argdef.Definition] {
	return func(yield func(*argdef.Definition) bool) {
		seen := make(map[string]bool)
		var defs []*argdef.Definition
		add := func(f *pflag.Flag) {
			if seen[f.Name] {
				return
			}
			seen[f.Name] = true
			defs = append(defs, pflagsource.FromFlag(f))
		}
		s.cmd.LocalFlags().VisitAll(add)
		s.cmd.InheritedFlags().VisitAll(add)

		for _, def := range defs {
			if !yield(def) {
				return
			}
		}
	}
}

func (s *CommandSource) SourceIdentifier() string {
	return fmt.Sprintf("command %q", s.cmd.CommandPath())
}

// Subcommand returns a source for the direct child matching name or one of
// its aliases.
func (s *CommandSource) Subcommand(name string) (*CommandSource, error) {
	for _, child := range s.cmd.Commands() {
		if child.Name() == name || child.HasAlias(name) {
			return &CommandSource{cmd: child}, nil
		}
	}
	return nil, fmt.Errorf("%w %q for %s", ErrUnknownSubcommand, name, s.cmd.CommandPath())
}

// Path walks several levels of subcommands.
func (s *CommandSource) Path(names ...string) (*CommandSource, error) {
	cur := s
	for _, name := range names {
		next, err := cur.Subcommand(name)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

var _ ports.DefinitionSource = (*CommandSource)(nil)
