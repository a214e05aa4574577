package arglocation

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/domain/location"
)

const (
	longDeclarationLength  = 2
	shortDeclarationLength = 1
	delimiterLength        = 1
)

// scanner walks one argv. It is single use.
type scanner struct {
	svc     *Service
	args    []string
	starts  []int // offset of each token in the joined line
	next    int   // index of the next unread token
	targets []string
	limit   int
	counts  map[string]int
	matches []location.Match
}

func newScanner(svc *Service, args []string, targets []string, limit int) *scanner {
	starts := make([]int, len(args))
	for i := 1; i < len(args); i++ {
		starts[i] = starts[i-1] + svc.measure(args[i-1]) + delimiterLength
	}
	return &scanner{
		svc:     svc,
		args:    args,
		starts:  starts,
		next:    1, // argv[0] is the program name
		targets: targets,
		limit:   limit,
		counts:  make(map[string]int),
	}
}

func (sc *scanner) run() {
	escaped := false
	for sc.next < len(sc.args) {
		tok := sc.args[sc.next]
		start := sc.starts[sc.next]
		sc.next++

		var done bool
		switch {
		case escaped:
		case tok == "--":
			escaped = true
		case strings.HasPrefix(tok, "--"):
			done = sc.long(tok, start)
		case looksLikeFlag(tok):
			done = sc.shorts(tok, start)
		}
		if done {
			return
		}
	}
}

func looksLikeFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-'
}

func (sc *scanner) long(tok string, start int) bool {
	m := sc.svc.measure
	name, value, hasValue := strings.Cut(tok[longDeclarationLength:], "=")

	def, res := sc.svc.resolver.Lookup(argalias.Long(name))
	if res == argalias.Missing {
		sc.svc.logger.Debug("skipping unknown long alias", "alias", "--"+name)
		return false
	}

	decl := location.Part{Offset: start, Length: longDeclarationLength}
	namePart := location.Part{Offset: start + longDeclarationLength, Length: m(name)}

	switch {
	case hasValue:
		return sc.report(def, complete(decl, namePart, m(value)))
	case def.Discrete():
		return sc.report(def, location.Location{Kind: location.Discrete, Declaration: decl, Name: namePart})
	default:
		return sc.report(def, sc.consumeValues(def, decl, namePart))
	}
}

// shorts handles a cluster such as "-abc" or "-ovalue". A value-taking short
// ends the cluster: whatever follows it is its value.
func (sc *scanner) shorts(tok string, start int) bool {
	m := sc.svc.measure
	decl := location.Part{Offset: start, Length: shortDeclarationLength}

	for k := shortDeclarationLength; k < len(tok); {
		r, size := utf8.DecodeRuneInString(tok[k:])
		namePart := location.Part{Offset: start + m(tok[:k]), Length: m(tok[k : k+size])}
		k += size
		if r == utf8.RuneError && size == 1 {
			continue
		}

		def, res := sc.svc.resolver.Lookup(argalias.Short(r))
		if res == argalias.Missing {
			sc.svc.logger.Debug("skipping unknown short alias", "alias", "-"+string(r))
			continue
		}
		if def.Discrete() {
			if sc.report(def, location.Location{Kind: location.Discrete, Declaration: decl, Name: namePart}) {
				return true
			}
			continue
		}

		rest := tok[k:]
		var loc location.Location
		switch {
		case rest == "":
			loc = sc.consumeValues(def, decl, namePart)
		case rest[0] == '=':
			loc = complete(decl, namePart, m(rest[1:]))
		default:
			loc = location.Location{
				Kind:        location.Stuck,
				Declaration: decl,
				Name:        namePart,
				Content:     location.Part{Offset: namePart.End(), Length: m(rest)},
			}
		}
		return sc.report(def, loc)
	}
	return false
}

// consumeValues takes the tokens after a value-taking argument that was
// written without "=". The name must end its token, so the delimiter is the
// joining space.
func (sc *scanner) consumeValues(def *argdef.Definition, decl, name location.Part) location.Location {
	limit := def.ValueLimit()
	first := sc.next
	for sc.next < len(sc.args) && (limit == argdef.Unbounded || sc.next-first < limit) {
		tok := sc.args[sc.next]
		if tok == "--" || (looksLikeFlag(tok) && !def.AllowHyphenValues) {
			break
		}
		sc.next++
	}
	if sc.next == first {
		return location.Location{Kind: location.Discrete, Declaration: decl, Name: name}
	}

	last := sc.next - 1
	contentStart := sc.starts[first]
	contentEnd := sc.starts[last] + sc.svc.measure(sc.args[last])
	return location.Location{
		Kind:        location.Complete,
		Declaration: decl,
		Name:        name,
		Delimiter:   location.Part{Offset: name.End(), Length: delimiterLength},
		Content:     location.Part{Offset: contentStart, Length: contentEnd - contentStart},
	}
}

func complete(decl, name location.Part, contentLength int) location.Location {
	delim := location.Part{Offset: name.End(), Length: delimiterLength}
	return location.Location{
		Kind:        location.Complete,
		Declaration: decl,
		Name:        name,
		Delimiter:   delim,
		Content:     location.Part{Offset: delim.End(), Length: contentLength},
	}
}

// report records loc for def when it is wanted and reports whether the scan
// can stop.
func (sc *scanner) report(def *argdef.Definition, loc location.Location) bool {
	if len(sc.targets) > 0 && !slices.Contains(sc.targets, def.ID) {
		return false
	}
	if sc.limit > 0 && sc.counts[def.ID] >= sc.limit {
		return sc.satisfied()
	}
	sc.matches = append(sc.matches, location.Match{Target: def.ID, Location: loc})
	sc.counts[def.ID]++
	return sc.satisfied()
}

// satisfied reports whether every explicit target reached the limit.
func (sc *scanner) satisfied() bool {
	if sc.limit <= 0 || len(sc.targets) == 0 {
		return false
	}
	for _, t := range sc.targets {
		if sc.counts[t] < sc.limit {
			return false
		}
	}
	return true
}
