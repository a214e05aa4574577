// Package shellsplit turns a typed command line into argv using POSIX shell
// quoting rules.
package shellsplit

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/argloc/internal/core/ports"
	"mvdan.cc/sh/v3/shell"
)

// Splitter implements ports.CommandLineSplitter with mvdan.cc/sh.
type Splitter struct {
	env func(string) string
}

// NewSplitter returns a splitter that expands variables from env.
// A nil env expands every variable to the empty string.
func NewSplitter(env map[string]string) ports.CommandLineSplitter {
	return &Splitter{env: func(name string) string { return env[name] }}
}

// Split implements ports.CommandLineSplitter. Quotes are removed and
// variables expanded; command substitution is rejected.
func (s *Splitter) Split(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return []string{}, nil
	}
	fields, err := shell.Fields(line, s.env)
	if err != nil {
		return nil, fmt.Errorf("failed to split command line: %w", err)
	}
	return fields, nil
}
