/*
Package pflagsource exposes the flags of a *pflag.FlagSet as argument
definitions.

pflag has no notion of extra aliases, so they are carried in flag
annotations. Use SetAliases, SetShortAliases and AllowHyphenValues after
defining a flag.
*/
package pflagsource

import (
	"fmt"
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
	"github.com/spf13/pflag"
)

// Annotation keys read by this package.
const (
	AnnotationAliases           = "argloc.aliases"
	AnnotationShortAliases      = "argloc.short-aliases"
	AnnotationAllowHyphenValues = "argloc.allow-hyphen-values"
)

// FlagSetSource implements ports.DefinitionSource over a flag set.
type FlagSetSource struct {
	flags *pflag.FlagSet
	name  string
}

// NewFlagSetSource creates a source over fs. It panics if fs is nil.
func NewFlagSetSource(fs *pflag.FlagSet) ports.DefinitionSource {
	if fs == nil {
		panic("flag set cannot be nil")
	}
	return &FlagSetSource{flags: fs, name: fmt.Sprintf("flag set %q", fs.Name())}
}

// Definitions visits the flag set when iterated, in lexicographical order.
// Hidden flags are included.
func (s *FlagSetSource) Definitions() iter.Seq[*argdef.Definition] {
	return func(yield func(*argdef.Definition) bool) {
		for _, def := range collect(s.flags) {
			if !yield(def) {
				return
			}
		}
	}
}

func (s *FlagSetSource) SourceIdentifier() string {
	return s.name
}

func collect(fs *pflag.FlagSet) []*argdef.Definition {
	var defs []*argdef.Definition
	fs.VisitAll(func(f *pflag.Flag) {
		defs = append(defs, FromFlag(f))
	})
	return defs
}

// FromFlag converts a single pflag flag. Flags with an optional value
// (NoOptDefVal set, as for bools) only take a value after "=", so they are
// discrete.
func FromFlag(f *pflag.Flag) *argdef.Definition {
	def := &argdef.Definition{
		ID:         f.Name,
		Long:       f.Name,
		TakesValue: f.NoOptDefVal == "",
	}
	if r, size := utf8.DecodeRuneInString(f.Shorthand); size > 0 && size == len(f.Shorthand) {
		def.Short = r
	}
	if f.Annotations != nil {
		def.Aliases = append(def.Aliases, f.Annotations[AnnotationAliases]...)
		for _, s := range f.Annotations[AnnotationShortAliases] {
			if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) {
				def.ShortAliases = append(def.ShortAliases, r)
			}
		}
		_, def.AllowHyphenValues = f.Annotations[AnnotationAllowHyphenValues]
	}
	return def
}

// SetAliases records extra long aliases for the named flag.
func SetAliases(fs *pflag.FlagSet, name string, aliases ...string) error {
	return appendAnnotation(fs, name, AnnotationAliases, aliases)
}

// NormalizeAliases makes fs accept the long aliases recorded with SetAliases
// as spellings of their flag. Call it after the aliases are set; aliases
// added later are not picked up.
func NormalizeAliases(fs *pflag.FlagSet) {
	names := make(map[string]string)
	fs.VisitAll(func(f *pflag.Flag) {
		for _, alias := range f.Annotations[AnnotationAliases] {
			names[alias] = f.Name
		}
	})
	next := fs.GetNormalizeFunc()
	fs.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if target, ok := names[name]; ok {
			name = target
		}
		return next(f, name)
	})
}

// SetShortAliases records extra short aliases for the named flag.
func SetShortAliases(fs *pflag.FlagSet, name string, aliases ...rune) error {
	values := make([]string, len(aliases))
	for i, r := range aliases {
		values[i] = string(r)
	}
	return appendAnnotation(fs, name, AnnotationShortAliases, values)
}

// AllowHyphenValues lets the named flag take values that start with "-".
func AllowHyphenValues(fs *pflag.FlagSet, name string) error {
	return fs.SetAnnotation(name, AnnotationAllowHyphenValues, []string{"true"})
}

func appendAnnotation(fs *pflag.FlagSet, name, key string, values []string) error {
	f := fs.Lookup(name)
	if f == nil {
		return fmt.Errorf("flag %q does not exist", name)
	}
	var existing []string
	if f.Annotations != nil {
		existing = f.Annotations[key]
	}
	if err := fs.SetAnnotation(name, key, slices.Concat(existing, values)); err != nil {
		return fmt.Errorf("failed to annotate flag %q: %w", name, err)
	}
	return nil
}
