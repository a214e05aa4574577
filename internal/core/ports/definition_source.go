package ports

import (
	"iter"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
)

/*
DefinitionSource yields the argument definitions of one command. This is a
driven port, implemented by adapters over flag sets, cobra commands or files.
Implementations should do their work lazily, when the sequence is iterated.
*/
type DefinitionSource interface {
	Definitions() iter.Seq[*argdef.Definition]
	// SourceIdentifier names where the definitions come from, for messages.
	SourceIdentifier() string
}
