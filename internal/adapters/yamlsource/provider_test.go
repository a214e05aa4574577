package yamlsource

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/services/aliaslocator"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "args.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestNewYAMLProvider(t *testing.T) {
	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected an error")
	}
	provider, err := NewYAMLProvider("args.yaml")
	if err != nil || provider == nil {
		t.Errorf("NewYAMLProvider() = %v, %v", provider, err)
	}
}

func TestYAMLProvider_Load(t *testing.T) {
	validYAML := `
- id: verbose
  long: verbose
  short: v
  aliases: [debug]
- long: output
  short: o
  short_aliases: [O]
  takes_value: true
- short: f
  takes_value: true
  max_values: -1
  allow_hyphen_values: true
`
	expectedValid := []*argdef.Definition{
		{ID: "verbose", Long: "verbose", Short: 'v', Aliases: []string{"debug"}},
		{ID: "output", Long: "output", Short: 'o', ShortAliases: []rune{'O'}, TakesValue: true},
		{ID: "f", Short: 'f', TakesValue: true, MaxValues: argdef.Unbounded, AllowHyphenValues: true},
	}

	tests := []struct {
		name                string
		content             string
		wantDefs            []*argdef.Definition
		wantErr             error
		wantErrorMsgSnippet string
	}{
		{name: "empty file", content: "", wantDefs: []*argdef.Definition{}},
		{name: "comments only", content: "# nothing here\n", wantDefs: []*argdef.Definition{}},
		{name: "empty list", content: "[]", wantDefs: []*argdef.Definition{}},
		{name: "valid definitions", content: validYAML, wantDefs: expectedValid},
		{
			name:                "unknown field",
			content:             "- long: x\n  colour: red\n",
			wantErrorMsgSnippet: "failed to unmarshal definitions",
		},
		{
			name:                "not a list",
			content:             "long: x short: y",
			wantErrorMsgSnippet: "failed to unmarshal definitions",
		},
		{
			name:    "short with two characters",
			content: "- long: x\n  short: xy\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "short alias with dash",
			content: "- long: x\n  short_aliases: ['-']\n",
			wantErr: ErrInvalidDefinition,
		},
		{
			name:    "record without any name",
			content: "- takes_value: true\n",
			wantErr: ErrInvalidDefinition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewYAMLProvider(writeFile(t, tt.content))
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			defs, err := provider.Load()
			wantAnyErr := tt.wantErr != nil || tt.wantErrorMsgSnippet != ""
			if (err != nil) != wantAnyErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, wantAnyErr)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErrorMsgSnippet != "" && !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
				t.Errorf("Load() error = %q, want it to contain %q", err.Error(), tt.wantErrorMsgSnippet)
			}
			if wantAnyErr {
				if defs != nil {
					t.Errorf("Load() expected nil definitions on error, got %#v", defs)
				}
				return
			}
			if !reflect.DeepEqual(defs, tt.wantDefs) {
				t.Errorf("Load() = %#v, want %#v", defs, tt.wantDefs)
			}
		})
	}
}

func TestYAMLProvider_LoadMissingFile(t *testing.T) {
	provider, _ := NewYAMLProvider(filepath.Join(t.TempDir(), "missing.yaml"))
	defs, err := provider.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for a missing file", err)
	}
	if len(defs) != 0 {
		t.Errorf("Load() = %v, want no definitions", defs)
	}
}

func TestSource(t *testing.T) {
	provider, _ := NewYAMLProvider(writeFile(t, "- long: verbose\n  short: v\n"))
	src := NewSource(provider)
	l := aliaslocator.FromSource(src)

	if def, res := l.Lookup(argalias.Short('v')); res != argalias.Found || def.ID != "verbose" {
		t.Errorf("Lookup(-v) = %+v, %v", def, res)
	}
	if src.Err() != nil {
		t.Errorf("Err() = %v, want nil", src.Err())
	}
}

func TestSource_KeepsLoadError(t *testing.T) {
	provider, _ := NewYAMLProvider(writeFile(t, "- short: too-long\n"))
	src := NewSource(provider)
	if got := aliaslocator.FromSource(src).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if !errors.Is(src.Err(), ErrInvalidDefinition) {
		t.Errorf("Err() = %v, want ErrInvalidDefinition", src.Err())
	}
}
