/*
Package aliaslocator resolves the aliases a user can type for an argument
("--verbose", "--debug", "-v") to the definition that declared them.

The alias table is built lazily: constructing a Locator stores the
definition sequence without reading it, and the first lookup consumes the
sequence once and caches the table for the life of the Locator.
*/
package aliaslocator

import (
	"io"
	"iter"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
	"github.com/charmbracelet/log"
)

// Entry is one row of the alias table.
type Entry struct {
	Alias      argalias.Alias
	Definition *argdef.Definition
}

type table struct {
	index   map[argalias.Alias]*argdef.Definition
	entries []Entry // sorted by argalias.Compare
}

// Locator is safe for concurrent use once its options are applied.
type Locator struct {
	table    func() *table
	fallback atomic.Pointer[argdef.Definition]
	logger   *log.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithLogger sets the logger that reports table construction and alias
// collisions. A nil logger is ignored.
func WithLogger(logger *log.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// FromArgs returns a Locator over args. The sequence is not read until the
// first lookup, and it is read at most once. Reentrant lookups from inside
// the sequence are not supported.
func FromArgs(args iter.Seq[*argdef.Definition], opts ...Option) *Locator {
	l := &Locator{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(l)
	}
	l.table = sync.OnceValue(func() *table {
		return buildTable(args, l.logger)
	})
	return l
}

// FromSource returns a Locator over the definitions of src.
// It panics if src is nil.
func FromSource(src ports.DefinitionSource, opts ...Option) *Locator {
	if src == nil {
		panic("definition source cannot be nil")
	}
	return FromArgs(src.Definitions(), opts...)
}

func buildTable(args iter.Seq[*argdef.Definition], logger *log.Logger) *table {
	index := make(map[argalias.Alias]*argdef.Definition)
	register := func(a argalias.Alias, def *argdef.Definition) {
		if prev, exists := index[a]; exists && prev != def {
			logger.Warn("alias declared twice, last definition wins",
				"alias", a.String(), "previous", prev.ID, "current", def.ID)
		}
		index[a] = def
	}

	count := 0
	if args != nil {
		for def := range args {
			if def == nil {
				continue
			}
			count++
			for _, name := range def.LongNames() {
				register(argalias.Long(name), def)
			}
			for _, c := range def.ShortNames() {
				register(argalias.Short(c), def)
			}
		}
	}

	entries := make([]Entry, 0, len(index))
	for a, def := range index {
		entries = append(entries, Entry{Alias: a, Definition: def})
	}
	slices.SortFunc(entries, func(x, y Entry) int {
		return argalias.Compare(x.Alias, y.Alias)
	})

	logger.Debug("alias table built", "definitions", count, "aliases", len(entries))
	return &table{index: index, entries: entries}
}

// Lookup implements ports.AliasResolver.
func (l *Locator) Lookup(alias argalias.Alias) (*argdef.Definition, argalias.Resolution) {
	if def, ok := l.table().index[alias]; ok {
		return def, argalias.Found
	}
	if fb := l.fallback.Load(); fb != nil {
		return fb, argalias.Fallback
	}
	return nil, argalias.Missing
}

// Get is Lookup without the resolution detail. The fallback counts as a hit.
func (l *Locator) Get(alias argalias.Alias) (*argdef.Definition, bool) {
	def, res := l.Lookup(alias)
	return def, res != argalias.Missing
}

// SetFallback sets the definition returned for unknown aliases. Nil clears it.
func (l *Locator) SetFallback(def *argdef.Definition) {
	l.fallback.Store(def)
}

// Fallback returns the current fallback definition, or nil.
func (l *Locator) Fallback() *argdef.Definition {
	return l.fallback.Load()
}

// Entries returns a copy of the alias table ordered by alias.
func (l *Locator) Entries() []Entry {
	return slices.Clone(l.table().entries)
}

// Len is the number of registered aliases.
func (l *Locator) Len() int {
	return len(l.table().entries)
}

// AliasesOf returns, in table order, every alias that resolves to the
// definition with the given ID.
func (l *Locator) AliasesOf(id string) []argalias.Alias {
	var aliases []argalias.Alias
	for _, e := range l.table().entries {
		if e.Definition.ID == id {
			aliases = append(aliases, e.Alias)
		}
	}
	return aliases
}

// Definition finds a registered definition by ID.
func (l *Locator) Definition(id string) (*argdef.Definition, bool) {
	for _, e := range l.table().entries {
		if e.Definition.ID == id {
			return e.Definition, true
		}
	}
	return nil, false
}

var _ ports.AliasResolver = (*Locator)(nil)
