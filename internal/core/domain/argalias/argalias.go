/*
Package argalias defines the key used to look up an argument by one of the
names a user can type for it.
*/
package argalias

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidAlias is returned by Parse for text that is neither "--name" nor "-c".
var ErrInvalidAlias = errors.New("invalid alias")

// Kind distinguishes long aliases from short ones. A long alias may be a
// single character too, so the text alone is not enough.
type Kind int

const (
	// KindLong aliases are led by "--" in argv.
	KindLong Kind = iota
	// KindShort aliases are led by "-" and can be stuck together ("-abc").
	KindShort
)

func (k Kind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindShort:
		return "short"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Alias is a comparable lookup key. Only the field matching Kind is set,
// so two aliases are equal exactly when kind and value match.
type Alias struct {
	Kind  Kind
	Long  string
	Short rune
}

// Long builds a long alias. The name carries no leading dashes.
func Long(name string) Alias {
	return Alias{Kind: KindLong, Long: name}
}

// Short builds a short alias.
func Short(c rune) Alias {
	return Alias{Kind: KindShort, Short: c}
}

// Compare orders longs before shorts, longs by name and shorts by character.
func Compare(a, b Alias) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if a.Kind == KindLong {
		return strings.Compare(a.Long, b.Long)
	}
	return cmp.Compare(a.Short, b.Short)
}

// String renders the alias the way it is typed on a command line.
func (a Alias) String() string {
	if a.Kind == KindShort {
		return "-" + string(a.Short)
	}
	return "--" + a.Long
}

// Parse turns "--name" or "-c" into an Alias.
func Parse(s string) (Alias, error) {
	if name, ok := strings.CutPrefix(s, "--"); ok {
		if name == "" || strings.HasPrefix(name, "-") || strings.ContainsAny(name, "= ") {
			return Alias{}, fmt.Errorf("%w: %q", ErrInvalidAlias, s)
		}
		return Long(name), nil
	}
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || r == utf8.RuneError || size != len(rest) || r == '-' || r == '=' {
			return Alias{}, fmt.Errorf("%w: %q is not a single short character", ErrInvalidAlias, s)
		}
		return Short(r), nil
	}
	return Alias{}, fmt.Errorf("%w: %q must start with - or --", ErrInvalidAlias, s)
}

// Resolution tells how a lookup was satisfied.
type Resolution int

const (
	// Missing means no definition matched and no fallback was set.
	Missing Resolution = iota
	// Found means the alias itself is registered.
	Found
	// Fallback means the alias is unknown and the fallback definition was returned.
	Fallback
)

func (r Resolution) String() string {
	switch r {
	case Missing:
		return "missing"
	case Found:
		return "found"
	case Fallback:
		return "fallback"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}
