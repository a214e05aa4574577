package testutil

import (
	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
)

// MockAliasResolver is a mock implementation of ports.AliasResolver.
type MockAliasResolver struct {
	// LookupFunc allows you to set a custom function for the Lookup method.
	LookupFunc func(alias argalias.Alias) (*argdef.Definition, argalias.Resolution)
	// LookupCalls keeps track of the aliases passed to Lookup.
	LookupCalls []argalias.Alias
}

// Lookup implements the ports.AliasResolver interface.
// Without LookupFunc every alias is missing.
func (m *MockAliasResolver) Lookup(alias argalias.Alias) (*argdef.Definition, argalias.Resolution) {
	m.LookupCalls = append(m.LookupCalls, alias)
	if m.LookupFunc != nil {
		return m.LookupFunc(alias)
	}
	return nil, argalias.Missing
}

var _ ports.AliasResolver = (*MockAliasResolver)(nil)
