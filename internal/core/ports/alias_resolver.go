package ports

import (
	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
)

// AliasResolver maps a typed alias to the definition that declared it.
type AliasResolver interface {
	// Lookup returns the matching definition, or the fallback, or nil with
	// argalias.Missing. A miss is not an error.
	Lookup(alias argalias.Alias) (*argdef.Definition, argalias.Resolution)
}
