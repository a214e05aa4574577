package testutil

import (
	"errors"

	"github.com/AntonioJCosta/argloc/internal/core/ports"
)

// MockCommandLineSplitter is a mock implementation of ports.CommandLineSplitter.
type MockCommandLineSplitter struct {
	SplitFunc func(line string) ([]string, error)
}

func (m *MockCommandLineSplitter) Split(line string) ([]string, error) {
	if m.SplitFunc != nil {
		return m.SplitFunc(line)
	}
	return nil, errors.New("MockCommandLineSplitter: SplitFunc not implemented")
}

var _ ports.CommandLineSplitter = (*MockCommandLineSplitter)(nil)
