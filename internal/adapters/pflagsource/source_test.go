package pflagsource

import (
	"reflect"
	"slices"
	"testing"

	"github.com/AntonioJCosta/argloc/internal/core/domain/argalias"
	"github.com/AntonioJCosta/argloc/internal/core/domain/argdef"
	"github.com/AntonioJCosta/argloc/internal/core/services/aliaslocator"
	"github.com/spf13/pflag"
)

func newFlagSet(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.BoolP("verbose", "v", false, "verbose output")
	fs.StringP("output", "o", "", "output file")
	fs.Int("count", 0, "count")
	fs.String("hidden", "", "hidden flag")
	if err := fs.MarkHidden("hidden"); err != nil {
		t.Fatalf("MarkHidden() error = %v", err)
	}
	return fs
}

func TestNewFlagSetSource_PanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewFlagSetSource did not panic with nil flag set")
		}
	}()
	_ = NewFlagSetSource(nil)
}

func TestFlagSetSource_Definitions(t *testing.T) {
	fs := newFlagSet(t)
	if err := SetAliases(fs, "verbose", "debug"); err != nil {
		t.Fatalf("SetAliases() error = %v", err)
	}
	if err := SetAliases(fs, "verbose", "loud"); err != nil {
		t.Fatalf("SetAliases() error = %v", err)
	}
	if err := SetShortAliases(fs, "output", 'O'); err != nil {
		t.Fatalf("SetShortAliases() error = %v", err)
	}
	if err := AllowHyphenValues(fs, "count"); err != nil {
		t.Fatalf("AllowHyphenValues() error = %v", err)
	}

	src := NewFlagSetSource(fs)
	got := slices.Collect(src.Definitions())

	want := []*argdef.Definition{
		{ID: "count", Long: "count", TakesValue: true, AllowHyphenValues: true},
		{ID: "hidden", Long: "hidden", TakesValue: true},
		{ID: "output", Long: "output", Short: 'o', ShortAliases: []rune{'O'}, TakesValue: true},
		{ID: "verbose", Long: "verbose", Short: 'v', Aliases: []string{"debug", "loud"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Definitions() =")
		for _, d := range got {
			t.Errorf("  %+v", *d)
		}
	}
	if src.SourceIdentifier() != `flag set "test"` {
		t.Errorf("SourceIdentifier() = %q", src.SourceIdentifier())
	}
}

func TestFlagSetSource_IsLazy(t *testing.T) {
	fs := newFlagSet(t)
	l := aliaslocator.FromSource(NewFlagSetSource(fs))

	// Flags defined after the locator was created are still seen.
	fs.StringP("late", "l", "", "defined late")

	def, res := l.Lookup(argalias.Short('l'))
	if res != argalias.Found || def.ID != "late" {
		t.Errorf("Lookup(-l) = %+v, %v; want late flag", def, res)
	}
}

func TestNormalizeAliases(t *testing.T) {
	fs := newFlagSet(t)
	if err := SetAliases(fs, "output", "out", "dest"); err != nil {
		t.Fatalf("SetAliases() error = %v", err)
	}
	NormalizeAliases(fs)

	if err := fs.Parse([]string{"--dest", "a.txt", "--verbose"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, _ := fs.GetString("output"); got != "a.txt" {
		t.Errorf("output = %q, want value given through --dest", got)
	}
	if f := fs.Lookup("out"); f == nil || f.Name != "output" {
		t.Errorf("Lookup(out) = %v, want the output flag", f)
	}
	if v, _ := fs.GetBool("verbose"); !v {
		t.Error("verbose = false, want flags without aliases unaffected")
	}
}

func TestSetAliases_UnknownFlag(t *testing.T) {
	fs := newFlagSet(t)
	if err := SetAliases(fs, "nope", "x"); err == nil {
		t.Error("SetAliases() on unknown flag should fail")
	}
	if err := AllowHyphenValues(fs, "nope"); err == nil {
		t.Error("AllowHyphenValues() on unknown flag should fail")
	}
}
