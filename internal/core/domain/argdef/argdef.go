/*
Package argdef defines the core domain entity for a command-line argument
definition: the record that declares an option's canonical names and aliases.
*/
package argdef

// Unbounded lets an argument consume every following value token.
const Unbounded = -1

/*
Definition describes one command-line option. Definitions are owned by
whatever produced them (a flag set, a YAML file, a cobra command) and are
treated as read-only once handed to the locator. Many alias entries share
the same *Definition.
*/
type Definition struct {
	ID                string
	Long              string // canonical long name, without leading dashes
	Short             rune   // canonical short character, 0 if none
	Aliases           []string
	ShortAliases      []rune
	TakesValue        bool
	MaxValues         int // <= 0 means one value; Unbounded means all of them
	AllowHyphenValues bool
}

// LongNames returns the canonical long name followed by the long aliases.
// Empty names are skipped.
func (d *Definition) LongNames() []string {
	names := make([]string, 0, len(d.Aliases)+1)
	if d.Long != "" {
		names = append(names, d.Long)
	}
	for _, a := range d.Aliases {
		if a != "" {
			names = append(names, a)
		}
	}
	return names
}

// ShortNames returns the canonical short character followed by the short aliases.
func (d *Definition) ShortNames() []rune {
	names := make([]rune, 0, len(d.ShortAliases)+1)
	if d.Short != 0 {
		names = append(names, d.Short)
	}
	for _, a := range d.ShortAliases {
		if a != 0 {
			names = append(names, a)
		}
	}
	return names
}

// Discrete reports whether the argument is a plain flag that never takes a value.
func (d *Definition) Discrete() bool {
	return !d.TakesValue
}

// ValueLimit is the number of following argv tokens the argument may consume.
// It returns -1 for Unbounded and 0 for discrete arguments.
func (d *Definition) ValueLimit() int {
	switch {
	case !d.TakesValue:
		return 0
	case d.MaxValues == Unbounded:
		return Unbounded
	case d.MaxValues <= 0:
		return 1
	default:
		return d.MaxValues
	}
}
