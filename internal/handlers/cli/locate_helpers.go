package cli

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/argloc/internal/core/domain/location"
	"github.com/AntonioJCosta/argloc/internal/core/services/arglocation"
)

// runeRange converts a part to rune indexes into line, clamped to its bounds.
func runeRange(line string, p location.Part, unit arglocation.Unit) (start, end int) {
	total := utf8.RuneCountInString(line)
	if unit == arglocation.Runes {
		start, end = p.Offset, p.End()
	} else {
		start = utf8.RuneCountInString(line[:min(max(p.Offset, 0), len(line))])
		end = utf8.RuneCountInString(line[:min(max(p.End(), 0), len(line))])
	}
	start = min(max(start, 0), total)
	end = min(max(end, start), total)
	return start, end
}

// markerLine returns carets under the part, at least one wide.
func markerLine(line string, p location.Part, unit arglocation.Unit) string {
	start, end := runeRange(line, p, unit)
	return strings.Repeat(" ", start) + strings.Repeat("^", max(end-start, 1))
}

func partText(line string, p location.Part, unit arglocation.Unit) string {
	start, end := runeRange(line, p, unit)
	runes := []rune(line)
	return string(runes[start:end])
}

// partRows lists the parts of one match for the table. Delimiter and content
// only appear for the kinds that have them.
func partRows(line string, m location.Match, unit arglocation.Unit) [][]string {
	type named struct {
		name string
		part location.Part
	}
	loc := m.Location
	parts := []named{{"declaration", loc.Declaration}, {"name", loc.Name}}
	if loc.Kind == location.Complete {
		parts = append(parts, named{"delimiter", loc.Delimiter})
	}
	if loc.Kind != location.Discrete {
		parts = append(parts, named{"content", loc.Content})
	}

	rows := make([][]string, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, []string{
			m.Target,
			loc.Kind.String(),
			p.name,
			strconv.Itoa(p.part.Offset),
			strconv.Itoa(p.part.Length),
			strconv.Quote(partText(line, p.part, unit)),
		})
	}
	return rows
}
