/*
Package location describes where an argument appears inside an argv string.

Offsets refer to the string obtained by joining argv with single spaces,
program name included:

	--abcdefg=...............
	^ ^      ^^
	| |      |content
	| |      delimiter
	| name
	declaration
*/
package location

import "fmt"

// Part is one contiguous region of the argv string.
type Part struct {
	Offset int
	Length int
}

// End is the offset just past the part.
func (p Part) End() int {
	return p.Offset + p.Length
}

// Kind classifies how an argument was written.
type Kind int

const (
	// Discrete is a flag without a value: "--flag", "-f".
	Discrete Kind = iota
	// Stuck is a short whose value is glued on: "-sValue".
	Stuck
	// Complete is an argument whose value follows a delimiter, "=" or a space.
	Complete
)

func (k Kind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case Stuck:
		return "stuck"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Location is how one occurrence of an argument appears in argv.
// Declaration covers the leading "--" or "-". For shorts inside a cluster
// ("-abc") the declaration is shared and need not touch Name.
// Delimiter is only set for Complete, Content only for Stuck and Complete.
type Location struct {
	Kind        Kind
	Declaration Part
	Name        Part
	Delimiter   Part
	Content     Part
}

// Span is the region a diagnostic should underline.
//
// With includeName the span starts at the declaration (or at the name, when
// the name is separated from its declaration by other shorts) and runs to the
// end of the content. Without it only the content is returned; arguments with
// no or empty content fall back to the full span.
func (l Location) Span(includeName bool) Part {
	start := l.Declaration.Offset
	if l.Declaration.End() != l.Name.Offset {
		start = l.Name.Offset
	}
	end := l.Name.End()
	if l.Kind != Discrete {
		end = l.Content.End()
	}

	if !includeName && l.Kind != Discrete && l.Content.Length > 0 {
		return l.Content
	}
	return Part{Offset: start, Length: end - start}
}

// Match pairs a located argument with the target it was requested as.
type Match struct {
	Target   string
	Location Location
}
