package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/argloc/internal/core/services/arglocation"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidUnit is returned for an offset unit other than "bytes" or "runes".
var ErrInvalidUnit = errors.New("invalid unit")

const envPrefix = "ARGLOC"

// Settings keys. Flags with dashes are bound to the underscore form.
const (
	keySpec        = "spec"
	keyUnit        = "unit"
	keyIncludeName = "include_name"
	keyLimit       = "limit"
	keyVerbose     = "verbose"
)

// settings is the resolved configuration of one invocation.
type settings struct {
	Spec        string
	Unit        arglocation.Unit
	IncludeName bool
	Limit       int
	Verbose     bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keySpec, "")
	v.SetDefault(keyUnit, "bytes")
	v.SetDefault(keyIncludeName, false)
	v.SetDefault(keyLimit, 0)
	v.SetDefault(keyVerbose, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindFlags binds every flag of fs that has a settings key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{keySpec, keyUnit, keyIncludeName, keyLimit, keyVerbose} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
		}
	}
	return nil
}

// readConfigFile merges a settings file (any format viper reads) into v.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

func loadSettings(v *viper.Viper) (settings, error) {
	unit, err := parseUnit(v.GetString(keyUnit))
	if err != nil {
		return settings{}, err
	}
	return settings{
		Spec:        v.GetString(keySpec),
		Unit:        unit,
		IncludeName: v.GetBool(keyIncludeName),
		Limit:       v.GetInt(keyLimit),
		Verbose:     v.GetBool(keyVerbose),
	}, nil
}

func parseUnit(s string) (arglocation.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bytes", "byte":
		return arglocation.Bytes, nil
	case "runes", "rune", "chars":
		return arglocation.Runes, nil
	default:
		return arglocation.Bytes, fmt.Errorf("%w %q: use bytes or runes", ErrInvalidUnit, s)
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "argloc",
		Level:  level,
	})
}
