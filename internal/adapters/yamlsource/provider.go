package yamlsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode/utf8"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is returned for records that cannot describe an argument.
var ErrInvalidDefinition = errors.New("invalid argument definition")

// record is the on-disk form of an argdef.Definition.
type record struct {
	ID                string   `yaml:"id"`
	Long              string   `yaml:"long"`
	Short             string   `yaml:"short"`
	Aliases           []string `yaml:"aliases"`
	ShortAliases      []string `yaml:"short_aliases"`
	TakesValue        bool     `yaml:"takes_value"`
	MaxValues         int      `yaml:"max_values"`
	AllowHyphenValues bool     `yaml:"allow_hyphen_values"`
}

// YAMLProvider reads argument definitions from a YAML file holding a list of
// records.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the definitions.
func NewYAMLProvider(filePath string) (*YAMLProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// Load reads and parses the file. If the file does not exist or is empty,
// it returns an empty list and no error.
func (p *YAMLProvider) Load() ([]*argdef.Definition, error) {
	data, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*argdef.Definition{}, nil
		}
		return nil, fmt.Errorf("failed to read definitions file %s: %w", p.filePath, err)
	}
	defs, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions from %s: %w", p.filePath, err)
	}
	return defs, nil
}

// Decode parses YAML definition records. Unknown fields are rejected.
func Decode(data []byte) ([]*argdef.Definition, error) {
	defs := []*argdef.Definition{}
	if len(data) == 0 {
		return defs, nil
	}

	var records []record
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil {
		// A document with only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	for i, rec := range records {
		def, err := rec.toDefinition()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (r record) toDefinition() (*argdef.Definition, error) {
	def := &argdef.Definition{
		ID:                r.ID,
		Long:              r.Long,
		Aliases:           r.Aliases,
		TakesValue:        r.TakesValue,
		MaxValues:         r.MaxValues,
		AllowHyphenValues: r.AllowHyphenValues,
	}
	if r.Short != "" {
		c, err := singleRune(r.Short)
		if err != nil {
			return nil, err
		}
		def.Short = c
	}
	for _, s := range r.ShortAliases {
		c, err := singleRune(s)
		if err != nil {
			return nil, err
		}
		def.ShortAliases = append(def.ShortAliases, c)
	}

	if def.ID == "" {
		switch {
		case def.Long != "":
			def.ID = def.Long
		case def.Short != 0:
			def.ID = string(def.Short)
		default:
			return nil, fmt.Errorf("%w: needs an id, a long or a short name", ErrInvalidDefinition)
		}
	}
	return def, nil
}

func singleRune(s string) (rune, error) {
	c, size := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError || size != len(s) || c == '-' {
		return 0, fmt.Errorf("%w: short name %q must be a single character", ErrInvalidDefinition, s)
	}
	return c, nil
}

// Source adapts a YAMLProvider to ports.DefinitionSource. The file is read
// when the sequence is first iterated; a read failure is kept in Err.
type Source struct {
	provider *YAMLProvider
	err      error
}

// NewSource wraps provider. It panics if provider is nil.
func NewSource(provider *YAMLProvider) *Source {
	if provider == nil {
		panic("yaml provider cannot be nil")
	}
	return &Source{provider: provider}
}

func (s *Source) Definitions() iter.Seq[*argdef.Definition] {
	return func(yield func(*argdef.Definition) bool) {
		defs, err := s.provider.Load()
		if err != nil {
			s.err = err
			return
		}
		for _, def := range defs {
			if !yield(def) {
				return
			}
		}
	}
}

func (s *Source) SourceIdentifier() string {
	return s.provider.filePath
}

// Err reports the error from the last Definitions iteration, if any.
func (s *Source) Err() error {
	return s.err
}
