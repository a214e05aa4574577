package testutil

import (
	"iter"
	"sync/atomic"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
)

// MockDefinitionSource is a mock implementation of ports.DefinitionSource.
// It counts how many times its sequence has been iterated.
type MockDefinitionSource struct {
	Defs       []*argdef.Definition
	Identifier string

	iterations atomic.Int32
}

// NewMockDefinitionSource creates a MockDefinitionSource yielding defs.
func NewMockDefinitionSource(defs ...*argdef.Definition) *MockDefinitionSource {
	return &MockDefinitionSource{Defs: defs, Identifier: "mock"}
}

// Definitions implements the ports.DefinitionSource interface.
func (m *MockDefinitionSource) Definitions() iter.Seq[*argdef.Definition] {
	return func(yield func(*argdef.Definition) bool) {
		m.iterations.Add(1)
		for _, def := range m.Defs {
			if !yield(def) {
				return
			}
		}
	}
}

// SourceIdentifier implements the ports.DefinitionSource interface.
func (m *MockDefinitionSource) SourceIdentifier() string {
	return m.Identifier
}

// Iterations reports how many times Definitions() has been ranged over.
func (m *MockDefinitionSource) Iterations() int {
	return int(m.iterations.Load())
}

// Ensure MockDefinitionSource satisfies the DefinitionSource interface.
var _ ports.DefinitionSource = (*MockDefinitionSource)(nil)
