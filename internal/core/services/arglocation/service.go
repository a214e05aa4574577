/*
Package arglocation finds where arguments appear in an argv string so that
diagnostics can point at the exact part of a command line a user typed.

Offsets are relative to argv joined by single spaces, argv[0] included.
*/
package arglocation

import (
	"io"
	"unicode/utf8"

	"github.com/AntonioJCosta/argloc/internal/core/domain/location"
	"github.com/AntonioJCosta/argloc/internal/core/ports"
	"github.com/charmbracelet/log"
)

// Unit selects how offsets and lengths are counted.
type Unit int

const (
	// Bytes counts string bytes, matching Go string indexing.
	Bytes Unit = iota
	// Runes counts characters, which suits rendering markers under text.
	Runes
)

// Service implements ports.ArgLocationService on top of an alias resolver.
type Service struct {
	resolver ports.AliasResolver
	measure  func(string) int
	logger   *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithUnit sets the unit offsets are reported in.
func WithUnit(u Unit) Option {
	return func(s *Service) {
		if u == Runes {
			s.measure = utf8.RuneCountInString
		} else {
			s.measure = byteLen
		}
	}
}

// WithLogger sets the logger used for skipped tokens. A nil logger is ignored.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a location service. It panics if resolver is nil.
func NewService(resolver ports.AliasResolver, opts ...Option) ports.ArgLocationService {
	if resolver == nil {
		panic("alias resolver cannot be nil")
	}
	s := &Service{
		resolver: resolver,
		measure:  byteLen,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func byteLen(s string) int { return len(s) }

// Locate implements ports.ArgLocationService.
func (s *Service) Locate(args []string, targets []string, limitPerTarget int) []location.Match {
	if len(args) == 0 {
		return nil
	}
	sc := newScanner(s, args, targets, limitPerTarget)
	sc.run()
	return sc.matches
}

// LocateFirst implements ports.ArgLocationService.
func (s *Service) LocateFirst(args []string, target string) (location.Location, bool) {
	matches := s.Locate(args, []string{target}, 1)
	if len(matches) == 0 {
		return location.Location{}, false
	}
	return matches[0].Location, true
}

var _ ports.ArgLocationService = (*Service)(nil)
