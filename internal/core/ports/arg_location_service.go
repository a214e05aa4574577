package ports

import "github.com/AntonioJCosta/argloc/internal/core/domain/location"

// ArgLocationService finds where arguments appear in an argv string.
type ArgLocationService interface {
	// Locate scans args (argv[0] included) and returns the occurrences of the
	// targets in order of appearance. An empty targets slice reports every
	// resolved argument. limitPerTarget <= 0 means no limit.
	Locate(args []string, targets []string, limitPerTarget int) []location.Match

	// LocateFirst returns the first occurrence of target, if any.
	LocateFirst(args []string, target string) (location.Location, bool)
}
